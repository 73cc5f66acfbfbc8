package engine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDeck     = errors.New("deck is empty")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrInvalidRank   = errors.New("invalid rank")
	ErrAborted       = errors.New("round aborted")
	ErrRoundOver     = errors.New("round is over")
	ErrNotStarted    = errors.New("round not started")
	ErrStarted       = errors.New("round already started")
)

// Interaction is the boundary the round talks to. Ask* calls block until the
// user answers; the rest are one-way notifications.
type Interaction interface {
	// AskAceValue is called once per ace received by anyone. Whatever
	// integer comes back becomes the ace's value for the rest of the round.
	AskAceValue(player string, c Card) (int, error)
	// AskDrawOrStand returns true to draw.
	AskDrawOrStand(player string) (bool, error)

	CardReceived(player string, c Card)
	Score(player string, score int)
	RoundOutcome(o Outcome)
	Diagnostic(err error)
}

// Round is one game of blackjack between the dealer and the player.
type Round struct {
	deck     *Deck
	ui       Interaction
	seats    [numSeats]*Player
	phase    Phase
	outcome  Outcome
	started  bool
	standing bool // sticky once the player stands
}

func NewRound(deck *Deck, ui Interaction) *Round {
	rd := &Round{deck: deck, ui: ui, phase: PhaseDealing}
	for s := SeatDealer; s < numSeats; s++ {
		rd.seats[s] = NewPlayer(s.Name())
	}
	return rd
}

func (rd *Round) Phase() Phase     { return rd.phase }
func (rd *Round) Outcome() Outcome { return rd.outcome }
func (rd *Round) Standing() bool   { return rd.standing }
func (rd *Round) Deck() *Deck      { return rd.deck }
func (rd *Round) Over() bool       { return rd.phase == PhaseTerminal }

// Players returns the participants, dealer first.
func (rd *Round) Players() []*Player {
	return []*Player{rd.seats[SeatDealer], rd.seats[SeatPlayer]}
}

// Player looks a participant up by name.
func (rd *Round) Player(name string) (*Player, error) {
	for _, p := range rd.seats {
		if p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
}

func (rd *Round) PlayerScore() int { return rd.seats[SeatPlayer].score }
func (rd *Round) DealerScore() int { return rd.seats[SeatDealer].score }

// DealCard draws one card for the named player. An unknown name or an empty
// deck leaves everything untouched, reports a diagnostic and returns the
// cause. A failed ace prompt returns ErrAborted, also without mutation.
func (rd *Round) DealCard(name string) error {
	p, err := rd.Player(name)
	if err != nil {
		rd.ui.Diagnostic(fmt.Errorf("deal: %w", err))
		return err
	}
	c, err := rd.deck.Draw()
	if err != nil {
		err = fmt.Errorf("deal to %s: %w", name, err)
		rd.ui.Diagnostic(err)
		return err
	}
	v, err := rd.resolveValue(name, c)
	if err != nil {
		return fmt.Errorf("%w: ace value for %s: %w", ErrAborted, name, err)
	}
	p.receive(c, v)
	rd.ui.CardReceived(name, c)
	rd.ui.Score(name, p.score)
	return nil
}

// deal reports whether a card actually landed. Only aborts are returned as
// errors; empty-deck and unknown-player were already surfaced by DealCard.
func (rd *Round) deal(s Seat) (bool, error) {
	err := rd.DealCard(s.Name())
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrAborted):
		return false, err
	default:
		return false, nil
	}
}

// Start performs the opening deal: one card to the dealer, two to the player.
// A player 21 ends the round on the spot.
func (rd *Round) Start() error {
	if rd.started {
		return ErrStarted
	}
	rd.started = true
	for _, s := range []Seat{SeatDealer, SeatPlayer, SeatPlayer} {
		if _, err := rd.deal(s); err != nil {
			return rd.abort(err)
		}
	}
	if rd.PlayerScore() == Blackjack {
		rd.finish(OutcomePlayerBlackjack)
		return nil
	}
	rd.phase = PhasePlayerTurn
	return nil
}

// Step runs one iteration of the turn loop.
func (rd *Round) Step() error {
	if !rd.started {
		return ErrNotStarted
	}
	if rd.phase == PhaseTerminal {
		return ErrRoundOver
	}
	dealer, player := rd.seats[SeatDealer], rd.seats[SeatPlayer]
	rd.ui.Score(DealerName, dealer.score)
	rd.ui.Score(PlayerName, player.score)

	if !rd.standing {
		draw, err := rd.ui.AskDrawOrStand(PlayerName)
		if err != nil {
			return rd.abort(fmt.Errorf("%w: draw or stand: %w", ErrAborted, err))
		}
		if draw {
			if _, err := rd.deal(SeatPlayer); err != nil {
				return rd.abort(err)
			}
			if busted(player.score) {
				rd.finish(OutcomePlayerBust)
				return nil
			}
		} else {
			rd.standing = true
			rd.phase = PhaseDealerTurn
		}
	}

	drew := false
	if dealerShouldDraw(dealer.score, player.score) {
		var err error
		if drew, err = rd.deal(SeatDealer); err != nil {
			return rd.abort(err)
		}
		if drew && busted(dealer.score) {
			rd.finish(OutcomeDealerBust)
			return nil
		}
	}
	if !drew && rd.standing {
		rd.finish(OutcomeStandOff)
	}
	return nil
}

// Play deals and loops until the round ends or the boundary gives up.
func (rd *Round) Play() (Outcome, error) {
	if err := rd.Start(); err != nil {
		return OutcomeNone, err
	}
	for !rd.Over() {
		if err := rd.Step(); err != nil {
			return rd.outcome, err
		}
	}
	return rd.outcome, nil
}

func (rd *Round) finish(o Outcome) {
	rd.phase = PhaseTerminal
	rd.outcome = o
	rd.ui.RoundOutcome(o)
}

// abort ends the round with no outcome.
func (rd *Round) abort(err error) error {
	rd.phase = PhaseTerminal
	rd.outcome = OutcomeNone
	return err
}

// Summary returns a UI-friendly summary of the current state.
func (rd *Round) Summary() Summary {
	views := make([]SeatView, 0, len(rd.seats))
	for _, p := range rd.seats {
		views = append(views, p.view())
	}
	return Summary{
		Phase:    rd.phase.String(),
		Outcome:  rd.outcome.String(),
		Standing: rd.standing,
		DeckLeft: rd.deck.Size(),
		Seats:    views,
	}
}

// Snapshot produces a serializable copy of the current round state.
func (rd *Round) Snapshot() RoundSnapshot {
	return RoundSnapshot{
		Phase:    rd.phase,
		Outcome:  rd.outcome,
		Standing: rd.standing,
		DeckLeft: rd.deck.Size(),
		Dealer:   rd.seats[SeatDealer].snap(),
		Player:   rd.seats[SeatPlayer].snap(),
	}
}
