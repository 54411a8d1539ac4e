// Package view provides UI rendering functions.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/ba-cay/internal/ui/model"
)

// CreateViewRenderer creates a view renderer function that can be injected into AppModel.
func CreateViewRenderer() func(model.Model, model.Screen) string {
	return func(m model.Model, screen model.Screen) string {
		if m.ConfirmingExit() {
			return lipgloss.Place(m.Width(), m.Height(),
				lipgloss.Center, lipgloss.Center,
				ExitConfirmView(),
				lipgloss.WithWhitespaceChars(" "),
			)
		}

		switch screen {
		case model.ScreenMenu:
			return MenuView(m)
		case model.ScreenPlaying:
			return TableView(m)
		case model.ScreenGameOver:
			return GameOverView(m)
		default:
			return "Unknown screen"
		}
	}
}
