// Package model contains the UI model implementations.
package model

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/ba-cay/internal/game"
	"github.com/palemoky/ba-cay/internal/sound"
	"github.com/palemoky/ba-cay/internal/ui/common"
)

type fieldError struct {
	msg string
	seq int
}

// AppModel is the bubbletea model for the real-time game.
type AppModel struct {
	settings Settings
	screen   Screen

	// Menu
	name   *textinput.Model
	bots   *textinput.Model
	focus  Field
	errors map[Field]fieldError
	errSeq int

	// Game
	session   *game.Session
	driver    *game.PhasedDriver
	lastFrame time.Time
	recorded  bool

	confirmExit bool
	width       int
	height      int

	// View renderer (injected to break circular import)
	viewRenderer func(Model, Screen) string

	// Key handler (injected to break circular import)
	keyHandler func(Model, tea.KeyMsg) (bool, tea.Cmd)
}

type noSound struct{}

func (noSound) Play(sound.Effect) {}

// NewAppModel creates the model on the menu screen.
func NewAppModel(settings Settings) *AppModel {
	def := DefaultSettings()
	if settings.Frame <= 0 {
		settings.Frame = def.Frame
	}
	if settings.ErrorTimeout <= 0 {
		settings.ErrorTimeout = def.ErrorTimeout
	}
	if settings.Bankroll <= 0 {
		settings.Bankroll = def.Bankroll
	}
	if settings.MaxBots <= 0 || settings.MaxBots > game.MaxBots {
		settings.MaxBots = def.MaxBots
	}
	if settings.Pacing == (game.Pacing{}) {
		settings.Pacing = def.Pacing
	}
	if settings.Sound == nil {
		settings.Sound = noSound{}
	}

	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 20
	name.Width = 20
	name.Focus()

	bots := textinput.New()
	bots.Placeholder = fmt.Sprintf("0-%d", settings.MaxBots)
	bots.CharLimit = 3
	bots.Width = 20

	return &AppModel{
		settings: settings,
		screen:   ScreenMenu,
		name:     &name,
		bots:     &bots,
		focus:    FieldName,
		errors:   make(map[Field]fieldError),
	}
}

func (m *AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// --- Model interface implementation ---

func (m *AppModel) Screen() Screen                { return m.screen }
func (m *AppModel) SetScreen(s Screen)            { m.screen = s }
func (m *AppModel) NameInput() *textinput.Model   { return m.name }
func (m *AppModel) BotsInput() *textinput.Model   { return m.bots }
func (m *AppModel) Focus() Field                  { return m.focus }
func (m *AppModel) MaxBots() int                  { return m.settings.MaxBots }
func (m *AppModel) Driver() *game.PhasedDriver    { return m.driver }
func (m *AppModel) Session() *game.Session        { return m.session }
func (m *AppModel) ConfirmingExit() bool          { return m.confirmExit }
func (m *AppModel) SetConfirmingExit(v bool)      { m.confirmExit = v }
func (m *AppModel) PlaySound(e sound.Effect)      { m.settings.Sound.Play(e) }
func (m *AppModel) Width() int                    { return m.width }
func (m *AppModel) Height() int                   { return m.height }
func (m *AppModel) FieldError(f Field) string     { return m.errors[f].msg }
func (m *AppModel) activeInput() *textinput.Model { return m.inputFor(m.focus) }

func (m *AppModel) inputFor(f Field) *textinput.Model {
	if f == FieldBots {
		return m.bots
	}
	return m.name
}

func (m *AppModel) SetFocus(f Field) {
	m.focus = f
	if f == FieldName {
		m.name.Focus()
		m.bots.Blur()
		return
	}
	m.bots.Focus()
	m.name.Blur()
}

func (m *AppModel) setFieldError(f Field, err error) tea.Cmd {
	m.errSeq++
	seq := m.errSeq
	m.errors[f] = fieldError{msg: err.Error(), seq: seq}
	return tea.Tick(m.settings.ErrorTimeout, func(time.Time) tea.Msg {
		return ClearFieldErrorMsg{Field: f, Seq: seq}
	})
}

// SubmitSetup validates the menu and starts a session when both fields pass.
func (m *AppModel) SubmitSetup() tea.Cmd {
	check := game.CheckSetup(m.name.Value(), m.bots.Value(), m.settings.MaxBots)
	if !check.Valid() {
		var cmds []tea.Cmd
		if check.NameErr != nil {
			cmds = append(cmds, m.setFieldError(FieldName, check.NameErr))
		}
		if check.BotsErr != nil {
			cmds = append(cmds, m.setFieldError(FieldBots, check.BotsErr))
		}
		if check.NameErr != nil {
			m.SetFocus(FieldName)
		} else {
			m.SetFocus(FieldBots)
		}
		return tea.Batch(cmds...)
	}

	m.startSession(check.Name, check.Bots)
	return m.nextFrame()
}

func (m *AppModel) startSession(name string, bots int) {
	if m.settings.NewSession != nil {
		m.session = m.settings.NewSession(name, bots)
	} else {
		m.session = game.NewSession(name, bots, game.WithBankroll(m.settings.Bankroll), game.WithMinBet(m.settings.Pacing.MinBet))
	}
	m.driver = game.NewPhasedDriver(m.session, m.settings.Pacing)
	m.recorded = false
	m.lastFrame = time.Time{}
	clear(m.errors)
	m.screen = ScreenPlaying
	if m.driver.Stage() == game.StageOver {
		m.screen = ScreenGameOver
	}
}

func (m *AppModel) nextFrame() tea.Cmd {
	return tea.Tick(m.settings.Frame, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

// ContinueRound leaves the result screen.
func (m *AppModel) ContinueRound() tea.Cmd {
	if m.driver == nil {
		return nil
	}
	if m.driver.Continue() == game.StageOver {
		m.screen = ScreenGameOver
		return m.recordSession()
	}
	return nil
}

// recordSession hands the summary to OnSessionEnd once per session.
func (m *AppModel) recordSession() tea.Cmd {
	if m.session == nil || m.recorded || !m.session.Status().Over() {
		return nil
	}
	m.recorded = true
	sum := m.session.Summary()
	onEnd := m.settings.OnSessionEnd
	return func() tea.Msg {
		if onEnd != nil {
			onEnd(sum)
		}
		return SessionRecordedMsg{Summary: sum}
	}
}

// Exit ends any running session and quits the program.
func (m *AppModel) Exit() tea.Cmd {
	m.confirmExit = false
	if m.driver != nil {
		m.driver.Quit()
	}
	if rec := m.recordSession(); rec != nil {
		return tea.Sequence(rec, tea.Quit)
	}
	return tea.Quit
}

// Restart goes back to an empty menu.
func (m *AppModel) Restart() {
	m.session = nil
	m.driver = nil
	m.screen = ScreenMenu
	m.name.Reset()
	m.bots.Reset()
	m.SetFocus(FieldName)
}

func (m *AppModel) advance(msg FrameMsg) tea.Cmd {
	if m.screen != ScreenPlaying || m.driver == nil {
		return nil
	}

	dt := m.settings.Frame
	if !m.lastFrame.IsZero() {
		dt = msg.At.Sub(m.lastFrame)
	}
	m.lastFrame = msg.At

	// The exit dialog pauses the table.
	if m.confirmExit {
		return m.nextFrame()
	}

	before := m.driver.Stage()
	after, err := m.driver.Advance(dt)
	if err != nil {
		m.screen = ScreenGameOver
		return m.recordSession()
	}
	if before == game.StageRevealing && after == game.StageShowResult {
		if m.driver.Result().WinnerIndex == 0 {
			m.PlaySound(sound.EffectWin)
		} else {
			m.PlaySound(sound.EffectLose)
		}
	}
	return m.nextFrame()
}

// Update handles tea messages.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case FrameMsg:
		return m, m.advance(msg)

	case ClearFieldErrorMsg:
		if e, ok := m.errors[msg.Field]; ok && e.seq == msg.Seq {
			delete(m.errors, msg.Field)
		}
		return m, nil

	case tea.KeyMsg:
		if m.keyHandler != nil {
			handled, keyCmd := m.keyHandler(m, msg)
			if keyCmd != nil {
				cmds = append(cmds, keyCmd)
			}
			if handled {
				return m, tea.Batch(cmds...)
			}
		}
		if m.screen == ScreenMenu {
			// Editing a field clears its error.
			before := m.activeInput().Value()
			input, cmd := m.activeInput().Update(msg)
			*m.activeInput() = input
			if input.Value() != before {
				delete(m.errors, m.focus)
			}
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if m.screen == ScreenMenu {
		input, cmd := m.activeInput().Update(msg)
		*m.activeInput() = input
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View renders the model.
func (m *AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	content := "View renderer not initialized"
	if m.viewRenderer != nil {
		content = m.viewRenderer(m, m.screen)
	}
	return common.DocStyle.Render(content)
}

// SetViewRenderer sets the view rendering function.
func (m *AppModel) SetViewRenderer(fn func(Model, Screen) string) {
	m.viewRenderer = fn
}

// SetKeyHandler sets the keyboard event handler function.
func (m *AppModel) SetKeyHandler(fn func(Model, tea.KeyMsg) (bool, tea.Cmd)) {
	m.keyHandler = fn
}
