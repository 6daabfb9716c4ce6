package judge

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the judge cannot be reached at all, for
// example because no credentials are configured.
var ErrUnavailable = errors.New("judge unavailable")

// Oracle adjudicates a round. It receives the fixed system instruction and the
// per-round instruction and returns the judge's free-form reply.
type Oracle interface {
	Judge(ctx context.Context, system, instruction string) (string, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(ctx context.Context, system, instruction string) (string, error)

func (f OracleFunc) Judge(ctx context.Context, system, instruction string) (string, error) {
	return f(ctx, system, instruction)
}
