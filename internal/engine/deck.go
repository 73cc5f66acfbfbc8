package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Deck is the single 52-card pool of a round. Cards are drawn from the tail
// of the shuffled order and never come back.
type Deck struct {
	cards []Card
}

func NewDeck(r *rand.Rand) *Deck {
	cards := make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, rnk := range Ranks() {
			cards = append(cards, Card{Rank: rnk, Suit: s})
		}
	}
	// Fisher-Yates
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return &Deck{cards: cards}
}

// NewStackedDeck builds a deck in the given order. The last card is drawn first.
func NewStackedDeck(cards ...Card) *Deck {
	return &Deck{cards: append([]Card{}, cards...)}
}

// Draw removes and returns the tail card, or ErrEmptyDeck.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	last := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return last, nil
}

func (d *Deck) Size() int { return len(d.cards) }

// Cards returns the remaining cards, next draw last.
func (d *Deck) Cards() []Card { return append([]Card{}, d.cards...) }

// NewEntropySource returns a generator seeded from crypto/rand. Build it once
// per process and share it across rounds.
func NewEntropySource() (*rand.Rand, error) {
	seed, err := EntropySeed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(seed)), nil
}

func EntropySeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
