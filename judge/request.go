package judge

import (
	"fmt"
	"rpsplus/game"
	"rpsplus/meta"
	"strings"
)

// Request is the per-round context sent to the judge. It is built fresh for
// every round and never modified afterwards.
type Request struct {
	Round           int
	UserScore       int
	BotScore        int
	UserSpecialUsed bool
	BotSpecialUsed  bool
	BotMove         game.Move
	UserInput       string
}

// NewRequest captures the match state, the bot's move and the raw user input.
// The input is passed through untouched, whatever it contains.
func NewRequest(state game.Snapshot, botMove game.Move, userInput string) Request {
	return Request{
		Round:           state.Round,
		UserScore:       state.UserScore,
		BotScore:        state.BotScore,
		UserSpecialUsed: state.UserSpecialUsed,
		BotSpecialUsed:  state.BotSpecialUsed,
		BotMove:         botMove,
		UserInput:       userInput,
	}
}

// String renders the request as one "Label: value" line per field, in a
// fixed order. The user input is always the last line.
func (r Request) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d\n", meta.FieldRound, r.Round)
	fmt.Fprintf(&b, "%s: %d\n", meta.FieldUserScore, r.UserScore)
	fmt.Fprintf(&b, "%s: %d\n", meta.FieldBotScore, r.BotScore)
	fmt.Fprintf(&b, "%s: %t\n", meta.FieldUserBombUsed, r.UserSpecialUsed)
	fmt.Fprintf(&b, "%s: %t\n", meta.FieldBotBombUsed, r.BotSpecialUsed)
	fmt.Fprintf(&b, "%s: %s\n", meta.FieldBotMove, r.BotMove)
	fmt.Fprintf(&b, "%s: %s", meta.FieldUserInput, r.UserInput)
	return b.String()
}

// Instruction puts the configured header in front of the state block.
func Instruction(header string, r Request) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return r.String()
	}
	return header + "\n\n" + r.String()
}
