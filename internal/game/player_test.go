package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/ba-cay/internal/game/card"
)

func c(r card.Rank, s card.Suit) card.Card {
	return card.Card{Suit: s, Rank: r}
}

func playerWith(hand ...card.Card) *Player {
	p := NewPlayer("p", DefaultBankroll, false)
	for _, h := range hand {
		p.ReceiveCard(h)
	}
	return p
}

func TestPlayer_TotalPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hand     []card.Card
		expected int
	}{
		{"raw ten is ba la", []card.Card{c(card.RankA, card.Clubs), c(card.Rank4, card.Hearts), c(card.Rank5, card.Spades)}, 10},
		{"raw twenty is zero", []card.Card{c(card.Rank10, card.Clubs), c(card.Rank5, card.Hearts), c(card.Rank5, card.Spades)}, 0},
		{"raw thirty is zero", []card.Card{c(card.RankK, card.Clubs), c(card.RankQ, card.Hearts), c(card.RankJ, card.Spades)}, 0},
		{"nineteen is nine", []card.Card{c(card.Rank4, card.Hearts), c(card.Rank5, card.Diamonds), c(card.RankK, card.Clubs)}, 9},
		{"seven", []card.Card{c(card.RankA, card.Clubs), c(card.Rank2, card.Clubs), c(card.Rank4, card.Diamonds)}, 7},
		{"three aces", []card.Card{c(card.RankA, card.Clubs), c(card.RankA, card.Hearts), c(card.RankA, card.Spades)}, 3},
		{"twenty seven is seven", []card.Card{c(card.Rank9, card.Clubs), c(card.Rank9, card.Hearts), c(card.Rank9, card.Spades)}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, playerWith(tt.hand...).TotalPoints())
		})
	}
}

func TestPlayer_TotalPointsRange(t *testing.T) {
	t.Parallel()

	all := card.Canonical()
	for i := 0; i < len(all); i += 3 {
		for j := 1; j < len(all); j += 5 {
			for k := 2; k < len(all); k += 7 {
				got := playerWith(all[i], all[j], all[k]).TotalPoints()
				assert.True(t, got >= 0 && got <= 10, "total %d out of range", got)
			}
		}
	}
}

func TestPlayer_BestTiebreakCard(t *testing.T) {
	t.Parallel()

	p := playerWith(c(card.Rank4, card.Hearts), c(card.RankK, card.Spades), c(card.Rank2, card.Spades))
	assert.Equal(t, c(card.RankK, card.Spades), p.BestTiebreakCard(), "first spade wins a same-suit tie")

	p = playerWith(c(card.Rank9, card.Clubs), c(card.Rank3, card.Diamonds), c(card.Rank8, card.Clubs))
	assert.Equal(t, c(card.Rank3, card.Diamonds), p.BestTiebreakCard())
}

func TestPlayer_PlaceBet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		bankroll    int
		bet         int
		expectedBet int
		expectedBR  int
	}{
		{"normal bet", 1000, 50, 50, 950},
		{"all in", 120, 120, 120, 0},
		{"clamped to bankroll", 30, 50, 30, 0},
		{"negative becomes zero", 100, -5, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPlayer("p", tt.bankroll, false)
			got := p.PlaceBet(tt.bet)
			assert.Equal(t, tt.expectedBet, got)
			assert.Equal(t, tt.expectedBet, p.Bet)
			assert.Equal(t, tt.expectedBR, p.Bankroll)
		})
	}
}

func TestPlayer_ResetHandAndBankruptcy(t *testing.T) {
	t.Parallel()

	p := playerWith(c(card.Rank2, card.Clubs))
	p.ResetHand()
	assert.Empty(t, p.Hand)

	p.Bankroll = 0
	assert.True(t, p.IsBankrupt())
	p.AddWinnings(25)
	assert.Equal(t, 25, p.Bankroll)
	assert.False(t, p.IsBankrupt())
}

func TestBotWager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bankroll int
		lo, hi   int
	}{
		{"rich bot", 1000, 10, 500},
		{"just above floor", 25, 10, 12},
		{"below twice the floor", 15, 10, 10},
		{"below the floor", 5, 5, 5},
		{"single chip", 1, 1, 1},
		{"broke", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewPCG(uint64(tt.bankroll), 11))
			for range 500 {
				bet := BotWager(tt.bankroll, DefaultMinBet, rng)
				assert.GreaterOrEqual(t, bet, tt.lo)
				assert.LessOrEqual(t, bet, tt.hi)
				assert.LessOrEqual(t, bet, tt.bankroll)
			}
		})
	}
}
