package engine

import (
	"fmt"
)

type Suit byte

const (
	SuitClover Suit = iota
	SuitDiamond
	SuitHeart
	SuitSpade
)

type Rank byte

const (
	RankAce Rank = iota
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
)

// Suits returns every suit in deck construction order.
func Suits() []Suit {
	return []Suit{SuitClover, SuitDiamond, SuitHeart, SuitSpade}
}

// Ranks returns every rank in deck construction order.
func Ranks() []Rank {
	out := make([]Rank, 0, 13)
	for r := RankAce; r <= RankKing; r++ {
		out = append(out, r)
	}
	return out
}

// Display literals, indexed by the enum value. Parsing reads the same tables.
var (
	rankLit = [...]byte{
		RankAce: 'A', RankTwo: '2', RankThree: '3', RankFour: '4', RankFive: '5',
		RankSix: '6', RankSeven: '7', RankEight: '8', RankNine: '9',
		RankTen: 'T', RankJack: 'J', RankQueen: 'Q', RankKing: 'K',
	}
	suitLit = [...]byte{SuitClover: 'C', SuitDiamond: 'D', SuitHeart: 'H', SuitSpade: 'S'}
)

func (r Rank) lit() (byte, bool) {
	if int(r) < len(rankLit) {
		return rankLit[r], true
	}
	return 0, false
}

func (s Suit) lit() (byte, bool) {
	if int(s) < len(suitLit) {
		return suitLit[s], true
	}
	return 0, false
}

func (s Suit) String() string {
	if ch, ok := s.lit(); ok {
		return string(ch)
	}
	return "?"
}

func (r Rank) String() string {
	if ch, ok := r.lit(); ok {
		return string(ch)
	}
	return "?"
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	r, ok1 := c.Rank.lit()
	s, ok2 := c.Suit.lit()
	if !ok1 || !ok2 {
		return "??"
	}
	return string([]byte{r, s})
}

func (c Card) Valid() bool {
	_, ok1 := c.Rank.lit()
	_, ok2 := c.Suit.lit()
	return ok1 && ok2
}

type Phase int

const (
	PhaseDealing Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "player-turn"
	case PhaseDealerTurn:
		return "dealer-turn"
	case PhaseTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Outcome is how a round ended. OutcomeNone while the round is live.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerBlackjack
	OutcomePlayerBust
	OutcomeDealerBust
	OutcomeStandOff
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePlayerBlackjack:
		return "player-blackjack"
	case OutcomePlayerBust:
		return "player-bust"
	case OutcomeDealerBust:
		return "dealer-bust"
	case OutcomeStandOff:
		return "stand-off"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText lets snapshots and events carry "dealer-bust" instead of 3.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Seat is a fixed slot in the two-participant registry.
type Seat int

const (
	SeatDealer Seat = iota
	SeatPlayer
	numSeats
)

const (
	DealerName = "dealer"
	PlayerName = "player"
)

func (s Seat) Name() string {
	switch s {
	case SeatDealer:
		return DealerName
	case SeatPlayer:
		return PlayerName
	default:
		return ""
	}
}

// SeatView is a read-only view for UIs/CLIs.
type SeatView struct {
	Name  string
	Cards []Card
	Score int
}

// Summary is a compact snapshot of user-facing state.
type Summary struct {
	Phase    string
	Outcome  string
	Standing bool
	DeckLeft int
	Seats    []SeatView // dealer first
}

// Serializable round state, cards encoded as "AS", "TD" literals.
type RoundSnapshot struct {
	Phase    Phase    `json:"phase"`
	Outcome  Outcome  `json:"outcome"`
	Standing bool     `json:"standing"`
	DeckLeft int      `json:"deck_left"`
	Dealer   SeatSnap `json:"dealer"`
	Player   SeatSnap `json:"player"`
}

type SeatSnap struct {
	Cards []Card `json:"cards"`
	Score int    `json:"score"`
}
