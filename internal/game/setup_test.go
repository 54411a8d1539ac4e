package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/ba-cay/internal/apperrors"
)

func TestCheckSetup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		player   string
		bots     string
		wantName string
		wantBots int
		nameErr  error
		botsErr  error
	}{
		{"valid", "Alice", "3", "Alice", 3, nil, nil},
		{"zero bots", "Bob", "0", "Bob", 0, nil, nil},
		{"max bots", "Bob", "13", "Bob", 13, nil, nil},
		{"trimmed", "  Kim  ", " 2 ", "Kim", 2, nil, nil},
		{"nine chars", "Ngọc Trâm", "1", "Ngọc Trâm", 1, nil, nil},
		{"empty name", "", "1", "", 1, apperrors.ErrNameEmpty, nil},
		{"blank name", "   ", "1", "", 1, apperrors.ErrNameEmpty, nil},
		{"long name", "Alexandria", "1", "Alexandria", 1, apperrors.ErrNameTooLong, nil},
		{"control char", "Al\x07x", "1", "Al\x07x", 1, apperrors.ErrNameInvalid, nil},
		{"empty bots", "Alice", "", "Alice", 0, nil, apperrors.ErrBotsEmpty},
		{"letters", "Alice", "two", "Alice", 0, nil, apperrors.ErrBotsNotNumber},
		{"too many", "Alice", "14", "Alice", 0, nil, apperrors.ErrBotsOutOfRange},
		{"negative", "Alice", "-1", "Alice", 0, nil, apperrors.ErrBotsOutOfRange},
		{"both wrong", "", "x", "", 0, apperrors.ErrNameEmpty, apperrors.ErrBotsNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CheckSetup(tt.player, tt.bots, MaxBots)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantBots, got.Bots)
			assert.Equal(t, tt.nameErr, got.NameErr)
			assert.Equal(t, tt.botsErr, got.BotsErr)
			assert.Equal(t, tt.nameErr == nil && tt.botsErr == nil, got.Valid())
		})
	}
}

func TestCheckSetup_LowerBotLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, apperrors.ErrBotsOutOfRange, CheckSetup("Alice", "5", 4).BotsErr)
	assert.NoError(t, CheckSetup("Alice", "4", 4).BotsErr)
}

func TestParseBet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		bankroll int
		expected int
		err      error
	}{
		{"valid", "50", 1000, 50, nil},
		{"all in", "1000", 1000, 1000, nil},
		{"spaces", " 20\n", 100, 20, nil},
		{"not a number", "lots", 100, 0, apperrors.ErrBetNotNumber},
		{"empty", "", 100, 0, apperrors.ErrBetNotNumber},
		{"zero", "0", 100, 0, apperrors.ErrBetNotPositive},
		{"negative", "-10", 100, 0, apperrors.ErrBetNotPositive},
		{"too large", "101", 100, 0, apperrors.ErrBetTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseBet(tt.input, tt.bankroll)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.err, err)
		})
	}
}
