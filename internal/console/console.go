// Package console is the terminal side of a round: it renders what the engine
// reports and reads the player's answers line by line.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"blackjack/internal/engine"
)

type Console struct {
	in  *bufio.Scanner
	out io.Writer

	info    *pterm.PrefixPrinter
	warn    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	fail    *pterm.PrefixPrinter
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		info:    pterm.Info.WithWriter(out),
		warn:    pterm.Warning.WithWriter(out),
		success: pterm.Success.WithWriter(out),
		fail:    pterm.Error.WithWriter(out),
	}
}

var _ engine.Interaction = (*Console)(nil)

// readLine prompts and returns the next trimmed line, or io.EOF.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// AskAceValue accepts any integer; 1 and 11 are what the prompt suggests.
func (c *Console) AskAceValue(player string, card engine.Card) (int, error) {
	for {
		line, err := c.readLine(fmt.Sprintf("%s drew %s. 1 or 11? ", player, Card(card)))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			c.warn.Printfln("%q is not a number", line)
			continue
		}
		return v, nil
	}
}

func (c *Console) AskDrawOrStand(player string) (bool, error) {
	for {
		line, err := c.readLine(fmt.Sprintf("%s: (d)raw or (s)tand? ", player))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "d", "draw", "h", "hit", "y", "yes":
			return true, nil
		case "s", "stand", "n", "no":
			return false, nil
		default:
			c.warn.Printfln("unknown answer %q; type d or s", line)
		}
	}
}

// PlayAgain asks whether to deal another round.
func (c *Console) PlayAgain() (bool, error) {
	for {
		line, err := c.readLine("another round? [y/n] ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes", "":
			return true, nil
		case "n", "no", "q", "quit", "exit":
			return false, nil
		default:
			c.warn.Printfln("unknown answer %q; type y or n", line)
		}
	}
}

func (c *Console) CardReceived(player string, card engine.Card) {
	fmt.Fprintf(c.out, "%s receives %s\n", player, Card(card))
}

func (c *Console) Score(player string, score int) {
	fmt.Fprintf(c.out, "%s score is now %s\n", player, pterm.Bold.Sprint(score))
}

func (c *Console) RoundOutcome(o engine.Outcome) {
	switch o {
	case engine.OutcomePlayerBlackjack:
		c.success.Println("blackjack! player wins")
	case engine.OutcomeDealerBust:
		c.success.Println("dealer busts, player wins")
	case engine.OutcomePlayerBust:
		c.fail.Println("player busts, dealer wins")
	case engine.OutcomeStandOff:
		c.info.Println("stand-off: nobody draws any more")
	default:
		c.info.Println("round ended:", o)
	}
}

func (c *Console) Diagnostic(err error) {
	c.warn.Println(err)
}

// RoundSummary prints both hands once a round is over.
func (c *Console) RoundSummary(s engine.Summary) {
	for _, sv := range s.Seats {
		fmt.Fprintf(c.out, " - %-6s %-20s (%d)\n", sv.Name, Hand(sv.Cards), sv.Score)
	}
}

// Infof prints a prefixed informational line.
func (c *Console) Infof(format string, a ...any) {
	c.info.Printfln(format, a...)
}

// Card renders a card with red suits highlighted.
func Card(card engine.Card) string {
	switch card.Suit {
	case engine.SuitHeart, engine.SuitDiamond:
		return pterm.LightRed(card.String())
	default:
		return card.String()
	}
}

func Hand(cards []engine.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, Card(c))
	}
	return strings.Join(parts, " ")
}
