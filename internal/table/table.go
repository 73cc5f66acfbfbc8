package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"blackjack/internal/engine"
	"blackjack/internal/protocol"
	"blackjack/pkg/types"
)

// Table runs consecutive rounds against one UI and keeps the score.
//
// Dependencies:
//   - engine: deck and round state machine
//   - protocol: round ids and recorded events
//   - types: GameConfig
//
// One round at a time, all on the caller's goroutine.
type Table struct {
	cfg   types.GameConfig
	rng   *rand.Rand
	ui    UI
	stack []engine.Card

	tally Tally
}

// UI is the console side of a session.
type UI interface {
	engine.Interaction
	PlayAgain() (bool, error)
	RoundSummary(s engine.Summary)
}

// RoundResult is what a finished round leaves behind.
type RoundResult struct {
	ID       protocol.RoundID
	Outcome  engine.Outcome
	Snapshot engine.RoundSnapshot
	Events   []protocol.Event
}

func New(cfg types.GameConfig, rng *rand.Rand, ui UI) (*Table, error) {
	if rng == nil {
		return nil, errors.New("table: nil random source")
	}
	t := &Table{cfg: cfg, rng: rng, ui: ui}
	if cfg.Stack != "" {
		cards, err := engine.ParseCards(cfg.Stack)
		if err != nil {
			return nil, fmt.Errorf("table: stack: %w", err)
		}
		t.stack = cards
	}
	return t, nil
}

func (t *Table) Tally() Tally { return t.tally }

// newDeck shuffles a fresh deck from the shared source, or copies the rigged
// stack when one is configured.
func (t *Table) newDeck() *engine.Deck {
	if len(t.stack) > 0 {
		return engine.NewStackedDeck(t.stack...)
	}
	return engine.NewDeck(t.rng)
}

// PlayRound plays a single round to its end. The error is non-nil only when
// the UI gave up mid-round (for example on EOF).
func (t *Table) PlayRound() (RoundResult, error) {
	id := protocol.NewRoundID()
	deck := t.newDeck()
	log.Printf("round %s: deck constructed (%d cards)", id.Short(), deck.Size())
	if t.cfg.Verbose {
		log.Printf("round %s: deck order %v", id.Short(), deck.Cards())
	}

	rec := NewRecorder(id, t.ui, t.cfg.Verbose)
	rd := engine.NewRound(deck, rec)
	outcome, err := rd.Play()

	res := RoundResult{ID: id, Outcome: outcome, Snapshot: rd.Snapshot(), Events: rec.Events()}
	if err != nil {
		log.Printf("round %s: aborted: %v", id.Short(), err)
		return res, err
	}

	t.tally.Add(outcome)
	t.ui.RoundSummary(rd.Summary())
	log.Printf("round %s: finished: %s dealer=%d player=%d aces=%d",
		id.Short(), outcome, rd.DealerScore(), rd.PlayerScore(), rec.AcesAsked())
	if t.cfg.Verbose {
		if js, err := json.Marshal(res.Snapshot); err == nil {
			log.Printf("round %s: snapshot %s", id.Short(), js)
		}
	}
	return res, nil
}

// Run plays rounds until cfg.Rounds is reached, the user declines another
// round, or input ends. Closed input is a normal way out, not an error.
func (t *Table) Run() (Tally, error) {
	for {
		if _, err := t.PlayRound(); err != nil {
			if errors.Is(err, io.EOF) {
				return t.tally, nil
			}
			return t.tally, err
		}
		if t.cfg.Rounds > 0 {
			if t.tally.Rounds >= t.cfg.Rounds {
				return t.tally, nil
			}
			continue
		}
		again, err := t.ui.PlayAgain()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return t.tally, nil
			}
			return t.tally, err
		}
		if !again {
			return t.tally, nil
		}
	}
}
