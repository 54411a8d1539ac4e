package game

import (
	"context"
	"fmt"
	"time"
)

// TurnIO is what the sequential driver needs from a text front end.
// AskBet and AskContinue are the only calls allowed to block on the user.
type TurnIO interface {
	AskBet(p *Player) (int, error)
	RoundStarted(round int, players []*Player)
	RevealHand(seat int, p *Player)
	Announce(res RoundResult, players []*Player)
	SessionEnded(status Status, summary Summary)
	AskContinue() (bool, error)
}

// TurnDriver plays a session one blocking step at a time.
type TurnDriver struct {
	sess        *Session
	io          TurnIO
	revealDelay time.Duration
	sleep       func(time.Duration)
}

func NewTurnDriver(sess *Session, io TurnIO, revealDelay time.Duration) *TurnDriver {
	return &TurnDriver{
		sess:        sess,
		io:          io,
		revealDelay: revealDelay,
		sleep:       time.Sleep,
	}
}

// Run plays rounds until the session ends, the player stops, or ctx is done.
// ctx is only consulted between rounds; a dealt round always resolves.
func (d *TurnDriver) Run(ctx context.Context) (Status, error) {
	for !d.sess.Status().Over() {
		if err := ctx.Err(); err != nil {
			return d.finish(d.sess.Quit()), err
		}

		status, err := d.playRound()
		if err != nil {
			return d.finish(d.sess.Quit()), err
		}
		if status.Over() {
			return d.finish(status), nil
		}

		more, err := d.io.AskContinue()
		if err != nil {
			return d.finish(d.sess.Quit()), fmt.Errorf("read continue choice: %w", err)
		}
		if !more {
			return d.finish(d.sess.Quit()), nil
		}
	}
	return d.finish(d.sess.Status()), nil
}

func (d *TurnDriver) playRound() (Status, error) {
	primary := d.sess.Primary()
	bet, err := d.io.AskBet(primary)
	if err != nil {
		return d.sess.Status(), fmt.Errorf("read bet: %w", err)
	}
	if err := d.sess.StartRound(bet); err != nil {
		return d.sess.Status(), err
	}

	players := d.sess.Players()
	d.io.RoundStarted(d.sess.Rounds(), players)
	for i, p := range players {
		if i > 0 && d.revealDelay > 0 {
			d.sleep(d.revealDelay)
		}
		d.io.RevealHand(i, p)
	}

	res, err := d.sess.Resolve()
	if err != nil {
		return d.sess.Status(), err
	}
	d.io.Announce(res, players)
	return d.sess.CheckElimination(), nil
}

func (d *TurnDriver) finish(status Status) Status {
	d.io.SessionEnded(status, d.sess.Summary())
	return status
}
