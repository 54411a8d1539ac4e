package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/ba-cay/internal/game"
	"github.com/palemoky/ba-cay/internal/game/card"
	"github.com/palemoky/ba-cay/internal/ui/common"
	"github.com/palemoky/ba-cay/internal/ui/model"
)

// TableView renders the players, their hands and the stage prompt.
func TableView(m model.Model) string {
	width := m.Width()
	d := m.Driver()
	if d == nil {
		return ""
	}
	sess := d.Session()
	players := sess.Players()

	var sb strings.Builder

	title := common.TitleStyle(fmt.Sprintf("Round %d • Pot %d", max(sess.Rounds(), 1), game.Pot(players)))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	winner := -1
	if d.Stage() == game.StageShowResult {
		winner = d.Result().WinnerIndex
	}

	var rows []string
	for i, p := range players {
		rows = append(rows, renderSeat(i, p, d.Revealed(i), i == winner))
	}
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.BoxStyle.Render(strings.Join(rows, "\n"))))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.PromptStyle.Render(stagePrompt(d))))

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

func renderSeat(seat int, p *game.Player, revealed, winner bool) string {
	icon := common.BotIcon
	if seat == 0 {
		icon = common.PlayerIcon
	}
	if winner {
		icon = common.WinnerIcon
	}

	name := fmt.Sprintf("%s %-9s", icon, common.TruncateName(p.Name, game.MaxNameChars))
	money := fmt.Sprintf("bank %5d  bet %4d", p.Bankroll, p.Bet)

	hand := renderHand(p.Hand, revealed)
	points := ""
	if revealed && len(p.Hand) == game.HandSize {
		points = "= " + common.PointsLabel(p.TotalPoints())
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, name, "  ", money, "  ", hand, "  ", points)
	if winner {
		return common.WinnerStyle.Render(line)
	}
	return line
}

// renderHand shows face-up cards or backs for hands not yet revealed.
func renderHand(cards []card.Card, revealed bool) string {
	if len(cards) == 0 {
		return common.GrayStyle.Render(strings.Repeat(" "+common.CardBack+" ", game.HandSize))
	}

	parts := make([]string, len(cards))
	for i, c := range cards {
		switch {
		case !revealed:
			parts[i] = common.GrayStyle.Render(" " + common.CardBack + " ")
		case c.Color() == card.Red:
			parts[i] = common.RedStyle.Render(fmt.Sprintf(" %3s ", c.String()))
		default:
			parts[i] = common.BlackStyle.Render(fmt.Sprintf(" %3s ", c.String()))
		}
	}
	return strings.Join(parts, " ")
}

func stagePrompt(d *game.PhasedDriver) string {
	switch d.Stage() {
	case game.StageBetting:
		return fmt.Sprintf("Your bet: %d\n%s", d.PendingBet(), common.HintStyle.Render("↑/↓ change bet • Enter deal • Esc quit"))
	case game.StageDealing:
		return "Dealing..."
	case game.StageRevealing:
		return "Revealing hands..."
	case game.StageShowResult:
		res := d.Result()
		banner := fmt.Sprintf("%s %s wins %d!", common.WinnerIcon, res.Winner.Name, res.Pot)
		return common.WinnerStyle.Render(banner) + "\n" + common.HintStyle.Render("Press Enter to continue")
	default:
		return ""
	}
}
