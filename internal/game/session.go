package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/ba-cay/internal/apperrors"
	"github.com/palemoky/ba-cay/internal/game/card"
)

const (
	DefaultBankroll = 1000
	DefaultMinBet   = 10
	MaxBots         = 13
)

// Status is the session's lifecycle state.
type Status int

const (
	StatusActive       Status = iota // still playing
	StatusPrimaryLost                // primary player went bankrupt
	StatusSoleSurvivor               // every bot went bankrupt
	StatusQuit                       // primary player chose to stop
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPrimaryLost:
		return "lost"
	case StatusSoleSurvivor:
		return "survivor"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Over reports whether the session has reached a terminal state.
func (s Status) Over() bool {
	return s != StatusActive
}

// Summary is the end-of-session record handed to the leaderboard.
type Summary struct {
	SessionID     string `json:"session_id"`
	PlayerName    string `json:"player_name"`
	Bots          int    `json:"bots"`
	Rounds        int    `json:"rounds"`
	RoundsWon     int    `json:"rounds_won"`
	FinalBankroll int    `json:"final_bankroll"`
	PeakBankroll  int    `json:"peak_bankroll"`
	Outcome       string `json:"outcome"`
}

// Session 定义一场游戏. Index 0 is always the human player.
type Session struct {
	id      string
	players []*Player
	engine  *RoundEngine
	status  Status
	log     logrus.FieldLogger

	bots      int
	roundsWon int
	peak      int
}

type sessionOptions struct {
	id       string
	bankroll int
	minBet   int
	rng      *rand.Rand
	log      logrus.FieldLogger
}

// Option customises a new session.
type Option func(*sessionOptions)

// WithBankroll sets the starting bankroll of every player.
func WithBankroll(n int) Option {
	return func(o *sessionOptions) { o.bankroll = n }
}

// WithMinBet sets the floor of bot wagers.
func WithMinBet(n int) Option {
	return func(o *sessionOptions) { o.minBet = n }
}

// WithRand drives both the shuffle and bot wagers from r.
func WithRand(r *rand.Rand) Option {
	return func(o *sessionOptions) { o.rng = r }
}

// WithLogger routes session events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *sessionOptions) { o.log = l }
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(o *sessionOptions) { o.id = id }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewSession seats the primary player and botCount bots named "Bot 1".."Bot n".
// botCount is clamped to [0, MaxBots].
func NewSession(primaryName string, botCount int, opts ...Option) *Session {
	o := sessionOptions{
		bankroll: DefaultBankroll,
		minBet:   DefaultMinBet,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	botCount = max(0, min(botCount, MaxBots))
	players := make([]*Player, 0, botCount+1)
	players = append(players, NewPlayer(primaryName, o.bankroll, false))
	for i := range botCount {
		players = append(players, NewPlayer(fmt.Sprintf("Bot %d", i+1), o.bankroll, true))
	}

	deck := card.NewDeckWithSource(pcgFrom(o.rng))
	s := &Session{
		id:      o.id,
		players: players,
		engine:  NewRoundEngine(deck, o.rng, o.minBet),
		status:  StatusActive,
		log:     o.log.WithField("session", o.id),
		bots:    botCount,
		peak:    o.bankroll,
	}
	s.log.WithFields(logrus.Fields{
		"player": primaryName,
		"bots":   botCount,
	}).Info("session started")
	return s
}

func pcgFrom(r *rand.Rand) rand.Source {
	return rand.NewPCG(r.Uint64(), r.Uint64())
}

func (s *Session) ID() string       { return s.id }
func (s *Session) Status() Status   { return s.status }
func (s *Session) Phase() Phase     { return s.engine.Phase() }
func (s *Session) Rounds() int      { return s.engine.Round() }
func (s *Session) Primary() *Player { return s.players[0] }

// Players returns the seated players in seat order.
func (s *Session) Players() []*Player {
	return slices.Clone(s.players)
}

// Result returns the last resolved round.
func (s *Session) Result() RoundResult { return s.engine.Result() }

// StartRound places bets and deals. bet is the primary player's wager.
func (s *Session) StartRound(bet int) error {
	if s.status.Over() {
		return apperrors.ErrSessionOver
	}
	if err := s.engine.StartRound(s.players, bet); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"round": s.engine.Round(),
		"bet":   s.Primary().Bet,
	}).Debug("round dealt")
	return nil
}

// Resolve finds the winner and pays out the pot.
func (s *Session) Resolve() (RoundResult, error) {
	alreadyPaid := s.engine.Phase() == PhaseResolved
	res, err := s.engine.Resolve(s.players)
	if err != nil || alreadyPaid {
		return res, err
	}

	if res.WinnerIndex == 0 {
		s.roundsWon++
	}
	s.peak = max(s.peak, s.Primary().Bankroll)
	s.log.WithFields(logrus.Fields{
		"round":  res.Round,
		"winner": res.Winner.Name,
		"points": res.Totals[res.WinnerIndex],
		"pot":    res.Pot,
	}).Info("round resolved")
	return res, nil
}

// CheckElimination ends the session if the primary player is bankrupt,
// otherwise removes bankrupt bots and ends it when nobody else is left.
func (s *Session) CheckElimination() Status {
	if s.status.Over() {
		return s.status
	}
	if s.Primary().IsBankrupt() {
		return s.end(StatusPrimaryLost)
	}

	kept := s.players[:1]
	for _, p := range s.players[1:] {
		if p.IsBankrupt() {
			s.log.WithField("player", p.Name).Info("player eliminated")
			continue
		}
		kept = append(kept, p)
	}
	clear(s.players[len(kept):])
	s.players = kept

	if len(s.players) == 1 {
		return s.end(StatusSoleSurvivor)
	}
	return s.status
}

// Quit ends an active session on the primary player's request.
func (s *Session) Quit() Status {
	if s.status.Over() {
		return s.status
	}
	return s.end(StatusQuit)
}

func (s *Session) end(status Status) Status {
	s.status = status
	s.log.WithFields(logrus.Fields{
		"status":   status.String(),
		"rounds":   s.engine.Round(),
		"bankroll": s.Primary().Bankroll,
	}).Info("session ended")
	return status
}

// Summary reports the primary player's results so far.
func (s *Session) Summary() Summary {
	return Summary{
		SessionID:     s.id,
		PlayerName:    s.Primary().Name,
		Bots:          s.bots,
		Rounds:        s.engine.Round(),
		RoundsWon:     s.roundsWon,
		FinalBankroll: s.Primary().Bankroll,
		PeakBankroll:  s.peak,
		Outcome:       s.status.String(),
	}
}
