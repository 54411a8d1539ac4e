// Package console is the line-oriented front end: pterm output, blocking reads.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/palemoky/ba-cay/internal/game"
	"github.com/palemoky/ba-cay/internal/game/card"
)

// Console implements game.TurnIO over a reader and a writer.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	maxBots int
}

var _ game.TurnIO = (*Console)(nil)

func New(in io.Reader, out io.Writer, maxBots int) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		maxBots: min(maxBots, game.MaxBots),
	}
}

// readLine returns one line without its newline. A last line without a
// newline is still returned; EOF is reported only when nothing was read.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, pterm.LightCyan(label), " ")
	return c.readLine()
}

func (c *Console) printError(err error) {
	fmt.Fprint(c.out, pterm.Error.Sprintln(err.Error()))
}

// Banner prints the title.
func (c *Console) Banner() {
	logo, err := pterm.DefaultBigText.WithLetters(putils.LettersFromString("BA CAY")).Srender()
	if err != nil {
		logo = "BA CAY\n"
	}
	fmt.Fprint(c.out, logo)
	fmt.Fprintln(c.out, pterm.Gray("Three cards each, highest point total takes the pot."))
}

// AskSetup reads the player name and the bot count, re-asking each field
// until it passes validation.
func (c *Console) AskSetup() (name string, bots int, err error) {
	for {
		name, err = c.prompt("Your name:")
		if err != nil {
			return "", 0, fmt.Errorf("read name: %w", err)
		}
		check := game.CheckSetup(name, "0", c.maxBots)
		if check.NameErr == nil {
			name = check.Name
			break
		}
		c.printError(check.NameErr)
	}

	for {
		raw, err := c.prompt(fmt.Sprintf("Number of bots (0-%d):", c.maxBots))
		if err != nil {
			return "", 0, fmt.Errorf("read bot count: %w", err)
		}
		check := game.CheckSetup(name, raw, c.maxBots)
		if check.BotsErr == nil {
			return name, check.Bots, nil
		}
		c.printError(check.BotsErr)
	}
}

// AskBet keeps asking until the input is a whole number in (0, bankroll].
func (c *Console) AskBet(p *game.Player) (int, error) {
	for {
		raw, err := c.prompt(fmt.Sprintf("%s, you have %d. Your bet:", p.Name, p.Bankroll))
		if err != nil {
			return 0, err
		}
		bet, err := game.ParseBet(raw, p.Bankroll)
		if err == nil {
			return bet, nil
		}
		c.printError(err)
	}
}

func (c *Console) RoundStarted(round int, players []*game.Player) {
	fmt.Fprint(c.out, pterm.DefaultSection.Sprintf("Round %d", round))

	data := pterm.TableData{{"Seat", "Player", "Bet", "Bankroll"}}
	for i, p := range players {
		data = append(data, []string{strconv.Itoa(i + 1), displayName(i, p), strconv.Itoa(p.Bet), strconv.Itoa(p.Bankroll)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return
	}
	fmt.Fprintln(c.out, table)
	fmt.Fprintf(c.out, "Pot: %s\n\n", pterm.LightYellow(game.Pot(players)))
}

func (c *Console) RevealHand(seat int, p *game.Player) {
	fmt.Fprintf(c.out, "%-12s %s  %s\n", displayName(seat, p), renderCards(p.Hand), pointsLabel(p.TotalPoints()))
}

func (c *Console) Announce(res game.RoundResult, players []*game.Player) {
	points := res.Totals[res.WinnerIndex]
	msg := fmt.Sprintf("%s wins %d with %s", displayName(res.WinnerIndex, res.Winner), res.Pot, pointsLabel(points))
	if tiedOnPoints(res.Totals, points) {
		best := res.Winner.BestTiebreakCard()
		msg += fmt.Sprintf(", best suit %s %s", best.Suit.Label(), best.Suit)
	}
	if res.WinnerIndex == 0 {
		fmt.Fprint(c.out, pterm.Success.Sprintln(msg))
	} else {
		fmt.Fprint(c.out, pterm.Info.Sprintln(msg))
	}
	for i, p := range players {
		if i > 0 && p.IsBankrupt() {
			fmt.Fprint(c.out, pterm.Warning.Sprintf("%s is out of money\n", p.Name))
		}
	}
}

func (c *Console) SessionEnded(status game.Status, summary game.Summary) {
	var headline string
	switch status {
	case game.StatusPrimaryLost:
		headline = pterm.Red("You are out of money. Game over.")
	case game.StatusSoleSurvivor:
		headline = pterm.Green("You are the last player standing!")
	default:
		headline = "Thanks for playing."
	}

	body := fmt.Sprintf("%s\n\nRounds played: %d\nRounds won:    %d\nFinal bankroll: %d\nBest bankroll:  %d",
		headline, summary.Rounds, summary.RoundsWon, summary.FinalBankroll, summary.PeakBankroll)
	fmt.Fprintln(c.out, pterm.DefaultBox.WithTitle("Game Over").WithTitleTopCenter().Sprint(body))
}

// AskContinue treats an empty answer as yes.
func (c *Console) AskContinue() (bool, error) {
	for {
		raw, err := c.prompt("Play another round? [Y/n]")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no", "q", "quit":
			return false, nil
		}
		fmt.Fprintln(c.out, pterm.Gray("Please answer y or n."))
	}
}

func tiedOnPoints(totals []int, points int) bool {
	n := 0
	for _, t := range totals {
		if t == points {
			n++
		}
	}
	return n > 1
}

func displayName(seat int, p *game.Player) string {
	if seat == 0 {
		return p.Name + " (you)"
	}
	return p.Name
}

// renderCards 把一手牌渲染成带颜色的字符串
func renderCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, cd := range cards {
		if cd.Color() == card.Red {
			parts[i] = pterm.Red(cd.String())
		} else {
			parts[i] = cd.String()
		}
	}
	return strings.Join(parts, " ")
}

func pointsLabel(points int) string {
	if points == game.TopHandPoints {
		return game.TopHandLabel
	}
	if points == 1 {
		return "1 point"
	}
	return fmt.Sprintf("%d points", points)
}
