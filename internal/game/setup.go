package game

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/palemoky/ba-cay/internal/apperrors"
)

// MaxNameChars is the longest display name accepted.
const MaxNameChars = 9

// SetupCheck is the outcome of validating the menu fields. Both fields are
// checked so a form can flag every problem at once.
type SetupCheck struct {
	Name    string
	Bots    int
	NameErr error
	BotsErr error
}

func (c SetupCheck) Valid() bool {
	return c.NameErr == nil && c.BotsErr == nil
}

// CheckSetup validates the player's name and the requested bot count.
func CheckSetup(name, bots string, maxBots int) SetupCheck {
	c := SetupCheck{Name: strings.TrimSpace(name)}
	c.NameErr = checkName(c.Name)
	c.Bots, c.BotsErr = parseBots(bots, maxBots)
	return c
}

func checkName(name string) error {
	switch {
	case name == "":
		return apperrors.ErrNameEmpty
	case utf8.RuneCountInString(name) > MaxNameChars:
		return apperrors.ErrNameTooLong
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return apperrors.ErrNameInvalid
		}
	}
	return nil
}

func parseBots(input string, maxBots int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, apperrors.ErrBotsEmpty
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, apperrors.ErrBotsNotNumber
	}
	if n < 0 || n > min(maxBots, MaxBots) {
		return 0, apperrors.ErrBotsOutOfRange
	}
	return n, nil
}

// ParseBet validates a typed wager against the player's bankroll.
func ParseBet(input string, bankroll int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, apperrors.ErrBetNotNumber
	}
	if n <= 0 {
		return 0, apperrors.ErrBetNotPositive
	}
	if n > bankroll {
		return 0, apperrors.ErrBetTooLarge
	}
	return n, nil
}
