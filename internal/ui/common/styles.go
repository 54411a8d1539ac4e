// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	BotIcon    = "🤖"
	PlayerIcon = "🙂"
	WinnerIcon = "🏆"
	CardBack   = "░░░"
)

// Lipgloss Styles
var (
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	RedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	FocusBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39"))
	DialogStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 4)
	PromptStyle   = lipgloss.NewStyle().MarginTop(1)
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	WinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)
