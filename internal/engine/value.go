package engine

import "fmt"

// Value returns the intrinsic blackjack points of a rank. Aces have none:
// ok is false and the value must come from the player's choice.
func (r Rank) Value() (v int, ok bool) {
	switch r {
	case RankTwo, RankThree, RankFour, RankFive,
		RankSix, RankSeven, RankEight, RankNine:
		return int(r) + 1, true
	case RankTen, RankJack, RankQueen, RankKing:
		return 10, true
	case RankAce:
		return 0, false
	default:
		panic(fmt.Errorf("%w: %d", ErrInvalidRank, r))
	}
}

// resolveValue fixes the points a card adds to a hand at the moment it is
// received. An ace asks the boundary once; the answer is stored unchecked.
func (rd *Round) resolveValue(name string, c Card) (int, error) {
	if v, ok := c.Rank.Value(); ok {
		return v, nil
	}
	return rd.ui.AskAceValue(name, c)
}
