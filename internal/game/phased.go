package game

import (
	"time"
)

// Stage is a step of the real-time table.
type Stage int

const (
	StageBetting Stage = iota
	StageDealing
	StageRevealing
	StageShowResult
	StageOver
)

func (s Stage) String() string {
	switch s {
	case StageBetting:
		return "betting"
	case StageDealing:
		return "dealing"
	case StageRevealing:
		return "revealing"
	case StageShowResult:
		return "result"
	case StageOver:
		return "over"
	default:
		return "unknown"
	}
}

// Pacing holds the presentation delays of the real-time table.
type Pacing struct {
	DealDelay   time.Duration
	RevealDelay time.Duration
	BetStep     int
	MinBet      int
	DefaultBet  int
}

// DefaultPacing mirrors the desktop table: a two second deal, one hand
// revealed per second, bets moved in tens starting at 50.
func DefaultPacing() Pacing {
	return Pacing{
		DealDelay:   2 * time.Second,
		RevealDelay: time.Second,
		BetStep:     10,
		MinBet:      DefaultMinBet,
		DefaultBet:  50,
	}
}

// PhasedDriver advances a session frame by frame. It never blocks: input
// arrives through RaiseBet/LowerBet/CommitBet/Continue and time through Advance.
type PhasedDriver struct {
	sess   *Session
	pacing Pacing

	stage       Stage
	bet         int
	dealTimer   time.Duration
	revealTimer time.Duration
	revealed    int
	result      RoundResult
}

func NewPhasedDriver(sess *Session, pacing Pacing) *PhasedDriver {
	d := &PhasedDriver{
		sess:   sess,
		pacing: pacing,
		stage:  StageBetting,
		bet:    max(pacing.DefaultBet, pacing.MinBet),
	}
	if sess.Status().Over() {
		d.stage = StageOver
	}
	return d
}

func (d *PhasedDriver) Session() *Session   { return d.sess }
func (d *PhasedDriver) Stage() Stage        { return d.stage }
func (d *PhasedDriver) PendingBet() int     { return d.bet }
func (d *PhasedDriver) Result() RoundResult { return d.result }

// Revealed reports whether seat i's hand is face up.
func (d *PhasedDriver) Revealed(i int) bool {
	return d.stage != StageBetting && i < d.revealed
}

func (d *PhasedDriver) RaiseBet() {
	if d.stage == StageBetting {
		d.bet += d.pacing.BetStep
	}
}

func (d *PhasedDriver) LowerBet() {
	if d.stage == StageBetting {
		d.bet = max(d.pacing.MinBet, d.bet-d.pacing.BetStep)
	}
}

// CommitBet clamps the pending bet to the bankroll, deals the round and
// turns the primary player's cards face up.
func (d *PhasedDriver) CommitBet() error {
	if d.stage != StageBetting {
		return nil
	}
	bet := min(d.bet, d.sess.Primary().Bankroll)
	if err := d.sess.StartRound(bet); err != nil {
		return err
	}
	d.dealTimer = 0
	d.revealTimer = 0
	d.revealed = 1
	d.result = RoundResult{}
	d.stage = StageDealing
	return nil
}

// Advance moves the timers forward by dt and returns the stage afterwards.
func (d *PhasedDriver) Advance(dt time.Duration) (Stage, error) {
	switch d.stage {
	case StageDealing:
		d.dealTimer += dt
		if d.dealTimer > d.pacing.DealDelay {
			d.stage = StageRevealing
		}
	case StageRevealing:
		d.revealTimer += dt
		if d.revealTimer <= d.pacing.RevealDelay {
			break
		}
		if d.revealed < len(d.sess.players) {
			d.revealed++
			d.revealTimer = 0
			break
		}
		res, err := d.sess.Resolve()
		if err != nil {
			return d.stage, err
		}
		d.result = res
		d.stage = StageShowResult
	}
	return d.stage, nil
}

// Continue leaves the result screen: bankrupt bots are removed and the
// next round starts unless the session has ended.
func (d *PhasedDriver) Continue() Stage {
	if d.stage != StageShowResult {
		return d.stage
	}
	if d.sess.CheckElimination().Over() {
		d.stage = StageOver
		return d.stage
	}
	d.revealed = 0
	d.stage = StageBetting
	return d.stage
}

// Quit ends the session from any stage.
func (d *PhasedDriver) Quit() {
	d.sess.Quit()
	d.stage = StageOver
}
