package table

import (
	"log"

	"blackjack/internal/engine"
	"blackjack/internal/protocol"
)

// Recorder sits between a round and the real UI. It stamps every
// notification as a protocol.Event and forwards everything unchanged.
type Recorder struct {
	round   protocol.RoundID
	next    engine.Interaction
	verbose bool

	seq    uint64
	events []protocol.Event
	aces   int
}

func NewRecorder(id protocol.RoundID, next engine.Interaction, verbose bool) *Recorder {
	return &Recorder{round: id, next: next, verbose: verbose, events: make([]protocol.Event, 0, 32)}
}

var _ engine.Interaction = (*Recorder)(nil)

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []protocol.Event { return append([]protocol.Event{}, r.events...) }

// AcesAsked counts ace prompts answered.
func (r *Recorder) AcesAsked() int { return r.aces }

func (r *Recorder) record(ev protocol.Event) {
	r.seq++
	ev.Round = r.round
	ev.Seq = r.seq
	r.events = append(r.events, ev)
	if r.verbose {
		if js, err := ev.JSON(); err == nil {
			log.Printf("round %s: event %s", r.round.Short(), js)
		} else {
			log.Printf("round %s: event encode error: %v", r.round.Short(), err)
		}
	}
}

func (r *Recorder) AskAceValue(player string, c engine.Card) (int, error) {
	v, err := r.next.AskAceValue(player, c)
	if err == nil {
		r.aces++
	}
	return v, err
}

func (r *Recorder) AskDrawOrStand(player string) (bool, error) {
	return r.next.AskDrawOrStand(player)
}

func (r *Recorder) CardReceived(player string, c engine.Card) {
	card := c
	r.record(protocol.Event{Type: protocol.EvCard, Player: player, Card: &card})
	r.next.CardReceived(player, c)
}

func (r *Recorder) Score(player string, score int) {
	r.record(protocol.Event{Type: protocol.EvScore, Player: player, Score: score})
	r.next.Score(player, score)
}

func (r *Recorder) RoundOutcome(o engine.Outcome) {
	out := o
	r.record(protocol.Event{Type: protocol.EvOutcome, Outcome: &out})
	r.next.RoundOutcome(o)
}

func (r *Recorder) Diagnostic(err error) {
	r.record(protocol.Event{Type: protocol.EvDiagnostic, Message: err.Error()})
	r.next.Diagnostic(err)
}
