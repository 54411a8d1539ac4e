// Package game implements the Ba Cây rules: betting, dealing three cards,
// scoring, winner resolution and the session loop shared by every driver.
package game

import (
	"github.com/palemoky/ba-cay/internal/apperrors"
	"github.com/palemoky/ba-cay/internal/game/card"
)

// Phase is the state of the current round.
type Phase int

const (
	PhaseBetting Phase = iota
	PhaseDealt
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseDealt:
		return "dealt"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// RoundResult describes how a round was settled.
type RoundResult struct {
	Round       int
	WinnerIndex int
	Winner      *Player
	Pot         int
	Totals      []int
}

// RoundEngine 定义一局的发牌与结算
type RoundEngine struct {
	deck   *card.Deck
	rng    Intn
	minBet int

	phase  Phase
	round  int
	result RoundResult
}

// NewRoundEngine creates an engine drawing from deck; rng drives bot wagers.
func NewRoundEngine(deck *card.Deck, rng Intn, minBet int) *RoundEngine {
	return &RoundEngine{
		deck:   deck,
		rng:    rng,
		minBet: minBet,
		phase:  PhaseBetting,
	}
}

func (e *RoundEngine) Phase() Phase { return e.phase }
func (e *RoundEngine) Round() int   { return e.round }

// StartRound collects bets and deals three cards to every player, one card
// per player per pass. players[0] bets primaryBet, bots pick their own.
// A dealt round must be resolved before the next one starts.
func (e *RoundEngine) StartRound(players []*Player, primaryBet int) error {
	if e.phase == PhaseDealt {
		return apperrors.ErrRoundInProgress
	}
	e.round++
	e.phase = PhaseBetting
	e.result = RoundResult{}

	for i, p := range players {
		p.ResetHand()
		bet := primaryBet
		if i > 0 || p.IsBot {
			bet = BotWager(p.Bankroll, e.minBet, e.rng)
		}
		p.PlaceBet(bet)
	}

	for range HandSize {
		for _, p := range players {
			p.ReceiveCard(e.deck.Draw())
		}
	}
	e.phase = PhaseDealt
	return nil
}

// Resolve pays the pot to the winner. Calling it again in the same round
// returns the stored result without paying twice.
func (e *RoundEngine) Resolve(players []*Player) (RoundResult, error) {
	switch e.phase {
	case PhaseResolved:
		return e.result, nil
	case PhaseDealt:
	default:
		return RoundResult{}, apperrors.ErrRoundNotDealt
	}

	idx := Winner(players)
	pot := Pot(players)
	totals := make([]int, len(players))
	for i, p := range players {
		totals[i] = p.TotalPoints()
	}

	winner := players[idx]
	winner.AddWinnings(pot)

	e.result = RoundResult{
		Round:       e.round,
		WinnerIndex: idx,
		Winner:      winner,
		Pot:         pot,
		Totals:      totals,
	}
	e.phase = PhaseResolved
	return e.result, nil
}

// Result returns the last resolved round.
func (e *RoundEngine) Result() RoundResult { return e.result }

// Winner returns the index of the winning player. Higher points win; equal
// points go to the strictly higher best suit; a full tie keeps the earlier seat.
func Winner(players []*Player) int {
	if len(players) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(players); i++ {
		if beats(players[i], players[best]) {
			best = i
		}
	}
	return best
}

func beats(challenger, holder *Player) bool {
	cp, hp := challenger.TotalPoints(), holder.TotalPoints()
	if cp != hp {
		return cp > hp
	}
	return challenger.BestTiebreakCard().SuitRank() > holder.BestTiebreakCard().SuitRank()
}

// Pot sums the current bets.
func Pot(players []*Player) int {
	pot := 0
	for _, p := range players {
		pot += p.Bet
	}
	return pot
}
