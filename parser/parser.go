// Package parser extracts state updates from the judge's free-form reply.
//
// Each field has its own extractor working over the reply's lines. An
// extractor that cannot find its label returns the zero value, which callers
// treat as "no update". Nothing in this package returns an error.
package parser

import (
	"regexp"
	"rpsplus/game"
	"rpsplus/meta"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	userScorePattern = regexp.MustCompile(regexp.QuoteMeta(meta.LabelScoreUser) + `\s*:\s*(\d+)`)
	botScorePattern  = regexp.MustCompile(regexp.QuoteMeta(meta.LabelScoreBot) + `\s*:\s*(\d+)`)
)

// Parse runs every extractor over reply.
func Parse(reply string) game.ParsedJudgeFields {
	lines := Lines(reply)
	parsed := game.ParsedJudgeFields{
		Winner:     RoundResult(lines),
		MoveStatus: MoveStatus(lines),
		UserMove:   UserMove(lines),
		Scores:     UpdatedScore(lines),
	}
	if parsed.Empty() {
		log.Debug().Int("lines", len(lines)).Msg("judge reply carried no recognisable fields")
	}
	return parsed
}

// Lines trims the reply and splits it into lines.
func Lines(reply string) []string {
	lines := strings.Split(strings.TrimSpace(reply), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// RoundResult looks only at the first line carrying the round result label.
func RoundResult(lines []string) game.Winner {
	for _, line := range lines {
		if !strings.Contains(line, meta.LabelRoundResult) {
			continue
		}
		switch {
		case strings.Contains(line, meta.ResultUserWins):
			return game.WinnerUser
		case strings.Contains(line, meta.ResultBotWins):
			return game.WinnerBot
		}
		return game.WinnerUnknown
	}
	return game.WinnerUnknown
}

// MoveStatus returns the upper-cased validity verdict. The last labelled line
// wins.
func MoveStatus(lines []string) string {
	return strings.ToUpper(lastValue(lines, meta.LabelMoveStatus))
}

// UserMove returns the lower-cased move the judge read from the user's input.
// The last labelled line wins.
func UserMove(lines []string) string {
	return strings.ToLower(lastValue(lines, meta.LabelUserMove))
}

// lastValue returns the text after the final colon of the last line that
// contains label.
func lastValue(lines []string, label string) string {
	value := ""
	for _, line := range lines {
		if strings.Contains(line, label) {
			value = strings.TrimSpace(line[strings.LastIndex(line, ":")+1:])
		}
	}
	return value
}

// UpdatedScore reads the judge's score pair. Only the first score label
// counts, and only if at least two lines follow it. Both numbers must be
// present; a lone number yields nil and the caller keeps its own tally.
func UpdatedScore(lines []string) *game.Scores {
	for i, line := range lines {
		if !strings.Contains(line, meta.LabelUpdatedScore) {
			continue
		}
		if i+2 >= len(lines) {
			return nil
		}
		rest := strings.Join(lines[i:], "\n")
		user, okUser := firstNumber(userScorePattern, rest)
		bot, okBot := firstNumber(botScorePattern, rest)
		if !okUser || !okBot {
			return nil
		}
		return &game.Scores{User: user, Bot: bot}
	}
	return nil
}

func firstNumber(pattern *regexp.Regexp, text string) (int, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
