package engine

// Rule helpers live here, so round.go remains uncluttered.

const (
	// Blackjack is the target score; anything above it busts.
	Blackjack = 21
	// DealerStandsOn is the score from which the dealer stops drawing,
	// unless it still trails the player.
	DealerStandsOn = 17
)

func busted(score int) bool { return score > Blackjack }

// dealerShouldDraw reports whether the dealer takes another card this tick.
func dealerShouldDraw(dealer, player int) bool {
	return dealer < player || dealer < DealerStandsOn
}
