package game

// MatchState is the authoritative record of one match. Fields are only
// changed through ApplyRoundResult; reads go through the getters or Snapshot.
type MatchState struct {
	round           int
	userScore       int
	botScore        int
	userSpecialUsed bool
	botSpecialUsed  bool
}

// Snapshot is a read-only copy of a MatchState.
type Snapshot struct {
	Round           int  `json:"round"`
	UserScore       int  `json:"user_score"`
	BotScore        int  `json:"bot_score"`
	UserSpecialUsed bool `json:"user_bomb_used"`
	BotSpecialUsed  bool `json:"bot_bomb_used"`
}

// NewMatchState returns the state of a match that has not played a round yet.
func NewMatchState() *MatchState {
	return &MatchState{round: 1}
}

func (s *MatchState) Round() int            { return s.round }
func (s *MatchState) UserScore() int        { return s.userScore }
func (s *MatchState) BotScore() int         { return s.botScore }
func (s *MatchState) UserSpecialUsed() bool { return s.userSpecialUsed }
func (s *MatchState) BotSpecialUsed() bool  { return s.botSpecialUsed }

func (s *MatchState) Snapshot() Snapshot {
	return Snapshot{
		Round:           s.round,
		UserScore:       s.userScore,
		BotScore:        s.botScore,
		UserSpecialUsed: s.userSpecialUsed,
		BotSpecialUsed:  s.botSpecialUsed,
	}
}

// ApplyRoundResult folds one parsed judge reply into the state and advances
// the round. The judge's score pair, when present, replaces the local
// increment. Special-use flags are only ever set, never cleared.
func (s *MatchState) ApplyRoundResult(parsed ParsedJudgeFields, botMoveWasSpecial bool) {
	if parsed.Scores == nil {
		switch parsed.Winner {
		case WinnerUser:
			s.userScore++
		case WinnerBot:
			s.botScore++
		}
	} else {
		s.userScore = parsed.Scores.User
		s.botScore = parsed.Scores.Bot
	}

	if parsed.UserUsedSpecial() {
		s.userSpecialUsed = true
	}
	if botMoveWasSpecial {
		s.botSpecialUsed = true
	}

	s.round++
}
