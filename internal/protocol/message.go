package protocol

import (
	"encoding/json"

	"blackjack/internal/engine"
)

type EventType string

const (
	EvCard       EventType = "CARD"
	EvScore      EventType = "SCORE"
	EvOutcome    EventType = "OUTCOME"
	EvDiagnostic EventType = "DIAGNOSTIC"
)

// Event is one observable thing that happened in a round, in the order the
// engine reported it.
type Event struct {
	Round   RoundID         `json:"round"`
	Seq     uint64          `json:"seq"`
	Type    EventType       `json:"type"`
	Player  string          `json:"player,omitempty"`
	Card    *engine.Card    `json:"card,omitempty"`
	Score   int             `json:"score"`
	Outcome *engine.Outcome `json:"outcome,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (e Event) JSON() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
