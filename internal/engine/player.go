package engine

// Player owns one hand for the round. The score is the running sum of the
// values resolved at receipt; it is never recomputed from the cards.
type Player struct {
	name  string
	cards []Card
	score int
}

func NewPlayer(name string) *Player {
	return &Player{name: name, cards: make([]Card, 0, 8)}
}

func (p *Player) Name() string { return p.name }
func (p *Player) Score() int   { return p.score }

// Cards returns a copy of the hand in receipt order.
func (p *Player) Cards() []Card { return append([]Card{}, p.cards...) }

func (p *Player) receive(c Card, value int) {
	p.cards = append(p.cards, c)
	p.score += value
}

func (p *Player) view() SeatView {
	return SeatView{Name: p.name, Cards: p.Cards(), Score: p.score}
}

func (p *Player) snap() SeatSnap {
	return SeatSnap{Cards: p.Cards(), Score: p.score}
}
