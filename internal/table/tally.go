package table

import "blackjack/internal/engine"

// Tally counts finished rounds by who came out ahead.
type Tally struct {
	Rounds     int
	PlayerWins int // blackjack or dealer bust
	DealerWins int // player bust
	StandOffs  int
}

func (t *Tally) Add(o engine.Outcome) {
	switch o {
	case engine.OutcomePlayerBlackjack, engine.OutcomeDealerBust:
		t.PlayerWins++
	case engine.OutcomePlayerBust:
		t.DealerWins++
	case engine.OutcomeStandOff:
		t.StandOffs++
	default:
		return
	}
	t.Rounds++
}
