package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/ba-cay/internal/game"
	"github.com/palemoky/ba-cay/internal/storage"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func seeded(t *testing.T) *storage.Leaderboard {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	lb := storage.NewLeaderboard(client)
	ctx := context.Background()
	for _, s := range []game.Summary{
		{SessionID: "a", PlayerName: "Lan", Bots: 3, Rounds: 12, RoundsWon: 5, FinalBankroll: 1800, PeakBankroll: 2100, Outcome: "quit"},
		{SessionID: "b", PlayerName: "Minh", Bots: 1, Rounds: 4, RoundsWon: 0, FinalBankroll: 0, PeakBankroll: 1000, Outcome: "lost"},
	} {
		require.NoError(t, lb.RecordSession(ctx, s))
	}
	return lb
}

func TestParseBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    storage.Board
		wantErr bool
	}{
		{"all", storage.BoardAllTime, false},
		{"all-time", storage.BoardAllTime, false},
		{"daily", storage.BoardDaily, false},
		{"weekly", storage.BoardWeekly, false},
		{"monthly", 0, true},
	}

	for _, tt := range tests {
		got, err := parseBoard(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestPrintBoard(t *testing.T) {
	t.Parallel()

	lb := seeded(t)
	var buf bytes.Buffer
	require.NoError(t, printBoard(context.Background(), &buf, lb, storage.BoardAllTime, 10))

	out := buf.String()
	assert.Contains(t, out, "Best bankrolls (all-time)")
	assert.Contains(t, out, "Lan")
	assert.Contains(t, out, "2100")
	assert.Contains(t, out, "41.7%")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Lan")), bytes.Index(buf.Bytes(), []byte("Minh")))
}

func TestPrintBoard_Empty(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	var buf bytes.Buffer
	require.NoError(t, printBoard(context.Background(), &buf, storage.NewLeaderboard(client), storage.BoardWeekly, 5))
	assert.Contains(t, buf.String(), "no finished sessions yet")
}

func TestPrintPlayer(t *testing.T) {
	t.Parallel()

	lb := seeded(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, printPlayer(ctx, &buf, lb, "minh"))
	out := buf.String()
	assert.Contains(t, out, "Minh")
	assert.Contains(t, out, "Rank:          2")
	assert.Contains(t, out, "bust 1")

	buf.Reset()
	require.NoError(t, printPlayer(ctx, &buf, lb, "Nobody"))
	assert.Contains(t, buf.String(), "Nobody has not finished a session")
}

func TestPrintRecent(t *testing.T) {
	t.Parallel()

	lb := seeded(t)
	var buf bytes.Buffer
	require.NoError(t, printRecent(context.Background(), &buf, lb, 1))

	out := buf.String()
	assert.Contains(t, out, "Recent sessions")
	assert.Contains(t, out, "Minh")
	assert.NotContains(t, out, "Lan", "only the newest session is listed")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("game:\n  starting_bankroll: 500\n"), 0o644))

	assert.ErrorIs(t, run(cfg, "all", 10, "", 0), errNoRedis)
	assert.ErrorContains(t, run(cfg, "yearly", 10, "", 0), "unknown board")
}
