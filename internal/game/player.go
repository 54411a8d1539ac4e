package game

import (
	"github.com/palemoky/ba-cay/internal/game/card"
)

// HandSize is the number of cards dealt to every player each round.
const HandSize = 3

const (
	// TopHandPoints is the score of the best hand, three cards summing to exactly ten.
	TopHandPoints = 10
	// TopHandLabel is how every front end shows that hand.
	TopHandLabel = "10 (ba lá)"
)

// Player 定义玩家
type Player struct {
	Name     string
	Bankroll int
	Bet      int
	Hand     []card.Card
	IsBot    bool
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(name string, bankroll int, isBot bool) *Player {
	return &Player{
		Name:     name,
		Bankroll: bankroll,
		IsBot:    isBot,
		Hand:     make([]card.Card, 0, HandSize),
	}
}

// ResetHand clears the hand for a new round.
func (p *Player) ResetHand() {
	p.Hand = make([]card.Card, 0, HandSize)
}

// ReceiveCard appends a dealt card to the hand.
func (p *Player) ReceiveCard(c card.Card) {
	p.Hand = append(p.Hand, c)
}

// PlaceBet commits a bet and takes it out of the bankroll.
// The amount is clamped to [0, Bankroll]; the committed bet is returned.
func (p *Player) PlaceBet(amount int) int {
	amount = max(0, min(amount, p.Bankroll))
	p.Bet = amount
	p.Bankroll -= amount
	return amount
}

// TotalPoints scores the hand: a raw sum of exactly 10 is the top hand,
// anything else counts modulo 10.
func (p *Player) TotalPoints() int {
	sum := 0
	for _, c := range p.Hand {
		sum += c.PointValue()
	}
	if sum == TopHandPoints {
		return TopHandPoints
	}
	return sum % 10
}

// BestTiebreakCard returns the first card holding the highest suit rank.
func (p *Player) BestTiebreakCard() card.Card {
	var best card.Card
	for i, c := range p.Hand {
		if i == 0 || c.SuitRank() > best.SuitRank() {
			best = c
		}
	}
	return best
}

func (p *Player) AddWinnings(amount int) {
	p.Bankroll += amount
}

func (p *Player) IsBankrupt() bool {
	return p.Bankroll <= 0
}

// Intn is the random source used for bot wagers.
type Intn interface {
	IntN(n int) int
}

// BotWager picks a bot's bet uniformly from [lo, hi] where
// lo = min(minBet, bankroll) and hi = min(bankroll, max(lo, bankroll/2)).
func BotWager(bankroll, minBet int, rng Intn) int {
	if bankroll <= 0 {
		return 0
	}
	lo := min(minBet, bankroll)
	hi := min(bankroll, max(lo, bankroll/2))
	return lo + rng.IntN(hi-lo+1)
}
