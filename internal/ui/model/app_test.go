package model

import (
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/ba-cay/internal/game"
)

func newTestModel(t *testing.T) *AppModel {
	t.Helper()
	s := DefaultSettings()
	s.Frame = 100 * time.Millisecond
	s.NewSession = func(name string, bots int) *game.Session {
		return game.NewSession(name, bots, game.WithRand(rand.New(rand.NewPCG(1, 2))))
	}
	return NewAppModel(s)
}

func TestNewAppModel(t *testing.T) {
	t.Parallel()

	m := NewAppModel(Settings{})

	assert.Equal(t, ScreenMenu, m.Screen())
	assert.Equal(t, FieldName, m.Focus())
	assert.True(t, m.NameInput().Focused())
	assert.False(t, m.BotsInput().Focused())
	assert.Equal(t, game.MaxBots, m.MaxBots())
	assert.Equal(t, game.DefaultPacing(), m.settings.Pacing)
	assert.Nil(t, m.Driver())
	assert.Nil(t, m.Session())
	assert.NotNil(t, m.Init())
}

func TestScreen_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		screen   Screen
		expected string
	}{
		{ScreenMenu, "menu"},
		{ScreenPlaying, "playing"},
		{ScreenGameOver, "game over"},
		{Screen(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.screen.String())
	}
}

func TestAppModel_SetFocus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.SetFocus(FieldBots)
	assert.Equal(t, FieldBots, m.Focus())
	assert.True(t, m.BotsInput().Focused())
	assert.False(t, m.NameInput().Focused())

	m.SetFocus(FieldName)
	assert.True(t, m.NameInput().Focused())
	assert.False(t, m.BotsInput().Focused())
}

func TestAppModel_FieldErrorsExpire(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.NotNil(t, m.SubmitSetup())
	require.NotEmpty(t, m.FieldError(FieldName))
	require.NotEmpty(t, m.FieldError(FieldBots))
	nameSeq := m.errors[FieldName].seq

	m.Update(ClearFieldErrorMsg{Field: FieldName, Seq: nameSeq})
	assert.Empty(t, m.FieldError(FieldName))
	assert.NotEmpty(t, m.FieldError(FieldBots))

	m.SubmitSetup()
	m.Update(ClearFieldErrorMsg{Field: FieldName, Seq: nameSeq})
	assert.NotEmpty(t, m.FieldError(FieldName), "an older timer does not clear a newer error")
}

func TestAppModel_TypingWithoutKeyHandler(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ann")})
	assert.Equal(t, "Ann", m.NameInput().Value())
	assert.Empty(t, m.BotsInput().Value())
}

func TestAppModel_SubmitStartsSession(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.NameInput().SetValue("  Ann ")
	m.BotsInput().SetValue("4")

	require.NotNil(t, m.SubmitSetup())
	assert.Equal(t, ScreenPlaying, m.Screen())
	require.NotNil(t, m.Session())
	assert.Equal(t, "Ann", m.Session().Primary().Name)
	assert.Len(t, m.Session().Players(), 5)
	assert.Equal(t, game.StageBetting, m.Driver().Stage())
}

func TestAppModel_FramesPauseDuringExitDialog(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.NameInput().SetValue("Ann")
	m.BotsInput().SetValue("1")
	m.SubmitSetup()
	require.NoError(t, m.Driver().CommitBet())

	now := time.Unix(0, 0)
	step := func(n int) {
		for range n {
			now = now.Add(100 * time.Millisecond)
			_, cmd := m.Update(FrameMsg{At: now})
			assert.NotNil(t, cmd, "frames keep ticking while playing")
		}
	}

	m.SetConfirmingExit(true)
	step(50)
	assert.Equal(t, game.StageDealing, m.Driver().Stage())

	m.SetConfirmingExit(false)
	step(21)
	assert.Equal(t, game.StageRevealing, m.Driver().Stage())
}

func TestAppModel_FramesStopOffTable(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := m.Update(FrameMsg{At: time.Now()})
	assert.Nil(t, cmd)
}

func TestAppModel_RecordsOnce(t *testing.T) {
	t.Parallel()

	var got []game.Summary
	m := newTestModel(t)
	m.settings.OnSessionEnd = func(s game.Summary) { got = append(got, s) }
	m.NameInput().SetValue("Ann")
	m.BotsInput().SetValue("2")
	m.SubmitSetup()

	assert.Nil(t, m.recordSession(), "nothing to record while the session runs")

	assert.NotNil(t, m.Exit())
	assert.True(t, m.recorded)
	assert.Equal(t, game.StatusQuit, m.Session().Status())
	assert.Nil(t, m.recordSession())

	m.recorded = false
	msg := m.recordSession()()
	assert.Equal(t, SessionRecordedMsg{Summary: m.Session().Summary()}, msg)
	require.Len(t, got, 1)
	assert.Equal(t, "quit", got[0].Outcome)
}

func TestAppModel_View(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 24, m.Height())
	assert.Contains(t, m.View(), "View renderer not initialized")

	m.SetViewRenderer(func(_ Model, s Screen) string { return "screen: " + s.String() })
	assert.Contains(t, m.View(), "screen: menu")
}
