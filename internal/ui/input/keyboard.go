// Package input handles keyboard input processing.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/ba-cay/internal/game"
	"github.com/palemoky/ba-cay/internal/sound"
	"github.com/palemoky/ba-cay/internal/ui/model"
)

// HandleKeyPress handles keyboard input and returns whether it was handled.
// Unhandled keys on the menu go to the focused text field.
func HandleKeyPress(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return true, m.Exit()
	}

	if m.ConfirmingExit() {
		return true, handleExitConfirm(m, msg)
	}

	if msg.Type == tea.KeyEsc {
		m.SetConfirmingExit(true)
		return true, nil
	}

	switch m.Screen() {
	case model.ScreenMenu:
		return handleMenuKeys(m, msg)
	case model.ScreenPlaying:
		return true, handlePlayingKeys(m, msg)
	case model.ScreenGameOver:
		return true, handleGameOverKeys(m, msg)
	}
	return false, nil
}

// handleExitConfirm 退出确认框: Y 退出, N 或 ESC 取消, 其余按键忽略
func handleExitConfirm(m model.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		m.PlaySound(sound.EffectButton)
		return m.Exit()
	case "n", "N", "esc":
		m.PlaySound(sound.EffectButton)
		m.SetConfirmingExit(false)
	}
	return nil
}

func handleMenuKeys(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		if m.Focus() == model.FieldName {
			m.SetFocus(model.FieldBots)
		} else {
			m.SetFocus(model.FieldName)
		}
		return true, nil
	case tea.KeyEnter:
		m.PlaySound(sound.EffectButton)
		return true, m.SubmitSetup()
	}
	return false, nil
}

func handlePlayingKeys(m model.Model, msg tea.KeyMsg) tea.Cmd {
	d := m.Driver()
	if d == nil {
		return nil
	}

	switch d.Stage() {
	case game.StageBetting:
		switch msg.String() {
		case "up", "k", "+":
			d.RaiseBet()
			m.PlaySound(sound.EffectButton)
		case "down", "j", "-":
			d.LowerBet()
			m.PlaySound(sound.EffectButton)
		case "enter", " ":
			if err := d.CommitBet(); err != nil {
				m.SetScreen(model.ScreenGameOver)
				return nil
			}
			m.PlaySound(sound.EffectDeal)
		}
	case game.StageShowResult:
		if msg.Type == tea.KeyEnter {
			m.PlaySound(sound.EffectButton)
			return m.ContinueRound()
		}
	}
	return nil
}

func handleGameOverKeys(m model.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.PlaySound(sound.EffectButton)
		m.Restart()
	case "q":
		return m.Exit()
	}
	return nil
}
