package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/ba-cay/internal/game"
	"github.com/palemoky/ba-cay/internal/ui/common"
	"github.com/palemoky/ba-cay/internal/ui/model"
)

// GameOverView renders the end-of-session screen.
func GameOverView(m model.Model) string {
	width := m.Width()

	headline := "Game Over"
	body := ""
	if sess := m.Session(); sess != nil {
		switch sess.Status() {
		case game.StatusPrimaryLost:
			headline = "💸 Game Over: you are out of money"
		case game.StatusSoleSurvivor:
			headline = "🏆 You are the last player standing!"
		}
		sum := sess.Summary()
		body = fmt.Sprintf("\n\nRounds played: %d\nRounds won:    %d\nFinal bankroll: %d\nBest bankroll:  %d",
			sum.Rounds, sum.RoundsWon, sum.FinalBankroll, sum.PeakBankroll)
	}

	msg := common.TitleStyle(headline) + body + "\n\n" + common.HintStyle.Render("Enter new game • q quit")

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center,
		common.BoxStyle.Padding(1, 3).Render(msg))
}

// ExitConfirmView renders the quit dialog.
func ExitConfirmView() string {
	return common.DialogStyle.Render("Quit the game? [Y/N]")
}
