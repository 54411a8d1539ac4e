package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/ba-cay/internal/ui/common"
	"github.com/palemoky/ba-cay/internal/ui/model"
)

// MenuView renders the name and bot-count form.
func MenuView(m model.Model) string {
	width := m.Width()

	var sb strings.Builder

	title := common.TitleStyle("🃏 Ba Cây")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	nameField := renderField("Name", m.NameInput(), m.Focus() == model.FieldName, m.FieldError(model.FieldName))
	botsField := renderField(fmt.Sprintf("Bots (0-%d)", m.MaxBots()), m.BotsInput(), m.Focus() == model.FieldBots, m.FieldError(model.FieldBots))
	form := lipgloss.JoinVertical(lipgloss.Left, nameField, botsField)
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))
	sb.WriteString("\n")

	hint := common.HintStyle.Render("Tab switch field • Enter start • Esc quit")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.PromptStyle.Render(hint)))

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

func renderField(label string, input *textinput.Model, focused bool, errMsg string) string {
	box := common.BoxStyle
	if focused {
		box = common.FocusBoxStyle
	}

	field := lipgloss.JoinVertical(lipgloss.Left, label, box.Width(26).Render(input.View()))
	if errMsg != "" {
		field = lipgloss.JoinVertical(lipgloss.Left, field, common.ErrorStyle.Render("⚠ "+errMsg))
	}
	return field
}
