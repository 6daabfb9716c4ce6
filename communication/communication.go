package communication

import (
	"context"
	"rpsplus/game"
)

// Communicator abstracts where a match is played: in process or on a remote
// match server.
type Communicator interface {
	PlayRound(ctx context.Context, input string) (string, error)
	State(ctx context.Context) (game.Snapshot, error)
}

// RoundRequest is the body of a round submission.
type RoundRequest struct {
	Input string `json:"input"`
}

// RoundResponse carries the judge's reply and the state after the round.
type RoundResponse struct {
	Reply string        `json:"reply"`
	State game.Snapshot `json:"state"`
}

// MatchResponse describes a match.
type MatchResponse struct {
	ID    string        `json:"id"`
	State game.Snapshot `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
