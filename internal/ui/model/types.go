// Package model defines the core types and interfaces for the UI.
package model

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/ba-cay/internal/game"
	"github.com/palemoky/ba-cay/internal/sound"
)

// Screen is the top-level screen being shown.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Field identifies a menu input.
type Field int

const (
	FieldName Field = iota
	FieldBots
)

// --- Tea Messages ---

// FrameMsg drives the phased driver; At is the frame's wall time.
type FrameMsg struct {
	At time.Time
}

// ClearFieldErrorMsg clears a menu field error, unless a newer one replaced it.
type ClearFieldErrorMsg struct {
	Field Field
	Seq   int
}

// SessionRecordedMsg reports that a finished session was handed to OnSessionEnd.
type SessionRecordedMsg struct {
	Summary game.Summary
}

// --- Model Interface ---

// Model is what the view and input packages see of AppModel.
type Model interface {
	// Screen management
	Screen() Screen
	SetScreen(Screen)

	// Menu
	NameInput() *textinput.Model
	BotsInput() *textinput.Model
	Focus() Field
	SetFocus(Field)
	FieldError(Field) string
	SubmitSetup() tea.Cmd
	MaxBots() int

	// Game
	Driver() *game.PhasedDriver
	Session() *game.Session
	ContinueRound() tea.Cmd

	// Exit confirmation
	ConfirmingExit() bool
	SetConfirmingExit(bool)
	Exit() tea.Cmd

	// Back to the menu after a finished session
	Restart()

	// Sound
	PlaySound(e sound.Effect)

	// Dimensions
	Width() int
	Height() int
}

// Settings configures an AppModel.
type Settings struct {
	Pacing       game.Pacing
	Bankroll     int
	MaxBots      int
	Frame        time.Duration
	ErrorTimeout time.Duration

	// NewSession overrides how sessions are built; tests seed it.
	NewSession func(name string, bots int) *game.Session

	// OnSessionEnd runs off the update loop once per finished session.
	OnSessionEnd func(game.Summary)

	Sound sound.Player
}

// DefaultSettings mirrors the default configuration.
func DefaultSettings() Settings {
	return Settings{
		Pacing:       game.DefaultPacing(),
		Bankroll:     game.DefaultBankroll,
		MaxBots:      game.MaxBots,
		Frame:        time.Second / 30,
		ErrorTimeout: 2 * time.Second,
	}
}
