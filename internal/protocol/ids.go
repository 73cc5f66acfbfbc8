package protocol

import "github.com/google/uuid"

type RoundID string

func NewRoundID() RoundID { return RoundID(uuid.NewString()) }

// Short is the first uuid group, enough to tell rounds apart in logs.
func (id RoundID) Short() string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}
