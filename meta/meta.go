// meta/meta.go
package meta

// Labels the judge is instructed to use in its reply. The parser anchors on
// these exact strings.
const (
	LabelRoundResult  = "Round Result:"
	LabelMoveStatus   = "Move Status:"
	LabelUserMove     = "User Move:"
	LabelUpdatedScore = "Updated Score:"
	LabelScoreUser    = "User"
	LabelScoreBot     = "Bot"

	ResultUserWins = "User wins"
	ResultBotWins  = "Bot wins"
	StatusValid    = "VALID"
)

// Labels of the state block sent to the judge each round.
const (
	FieldRound        = "Round"
	FieldUserScore    = "User Score"
	FieldBotScore     = "Bot Score"
	FieldUserBombUsed = "User Bomb Used"
	FieldBotBombUsed  = "Bot Bomb Used"
	FieldBotMove      = "Bot Move"
	FieldUserInput    = "User Input"
)

// NO_TEXT_REPLY replaces an empty completion.
const NO_TEXT_REPLY = "(No text in response)"

// DEFAULT_MODEL is the judge model used when none is configured.
const DEFAULT_MODEL = "gemini-2.5-flash"

// DEFAULT_BASE_URL is Gemini's OpenAI-compatible endpoint.
const DEFAULT_BASE_URL = "https://generativelanguage.googleapis.com/v1beta/openai/"

const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
)
