package game

import "strings"

// Move represents a hand a player can show in a round.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
	Bomb // the special move, usable once per player per match
)

// Moves lists every move a side may pick while its special is still available.
var Moves = []Move{Rock, Paper, Scissors, Bomb}

// BasicMoves lists the moves left once the special has been spent.
var BasicMoves = []Move{Rock, Paper, Scissors}

var moveNames = map[Move]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
	Bomb:     "bomb",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return "unknown"
}

func (m Move) IsSpecial() bool {
	return m == Bomb
}

// ParseMove maps a move name to its Move, ignoring case and surrounding space.
func ParseMove(s string) (Move, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range moveNames {
		if name == s {
			return m, true
		}
	}
	return 0, false
}
