package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MarshalJSON encodes a Card as "AS", "TH", "2C", etc.
func (c Card) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid card: rank=%d suit=%d", c.Rank, c.Suit)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes "AS", "th", "2c", etc. into a Card.
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	card, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// ParseCard reads a two-character literal: rank (A,2-9,T,J,Q,K) then suit
// (C,D,H,S). Case-insensitive. Ten must be 'T' (not "10").
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card literal %q (want 2 chars like AS, TD)", s)
	}
	r := bytes.IndexByte(rankLit[:], s[0])
	if r < 0 {
		return Card{}, fmt.Errorf("invalid rank char %q", s[0])
	}
	u := bytes.IndexByte(suitLit[:], s[1])
	if u < 0 {
		return Card{}, fmt.Errorf("invalid suit char %q (use c/d/h/s)", s[1])
	}
	return Card{Rank: Rank(r), Suit: Suit(u)}, nil
}

// ParseCards splits a comma or space separated list of card literals.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
