package game

import (
	"rpsplus/meta"
	"strings"
)

// Winner is the side the judge awarded a round to.
type Winner int

const (
	WinnerUnknown Winner = iota // draw, wasted turn or no result line
	WinnerUser
	WinnerBot
)

func (w Winner) String() string {
	switch w {
	case WinnerUser:
		return "user"
	case WinnerBot:
		return "bot"
	default:
		return "none"
	}
}

// Scores is an authoritative score pair reported by the judge.
type Scores struct {
	User int `json:"user"`
	Bot  int `json:"bot"`
}

// ParsedJudgeFields holds what could be extracted from one judge reply.
// Every field is optional: the zero value of a field means "no update".
type ParsedJudgeFields struct {
	Winner     Winner
	MoveStatus string  // upper-cased, e.g. VALID or INVALID
	UserMove   string  // lower-cased interpreted user move
	Scores     *Scores // nil unless both numbers were found
}

// UserUsedSpecial reports whether the judge accepted the user's special move.
func (p ParsedJudgeFields) UserUsedSpecial() bool {
	if !strings.EqualFold(p.MoveStatus, meta.StatusValid) {
		return false
	}
	m, ok := ParseMove(p.UserMove)
	return ok && m.IsSpecial()
}

// Empty reports whether nothing at all was extracted.
func (p ParsedJudgeFields) Empty() bool {
	return p.Winner == WinnerUnknown && p.MoveStatus == "" && p.UserMove == "" && p.Scores == nil
}
