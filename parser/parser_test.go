package parser

import (
	"rpsplus/game"
	"testing"

	"github.com/stretchr/testify/require"
)

const wellFormed = `Round: 2
User Move: bomb
Move Status: VALID
Bot Move: rock
Round Result: User wins
Updated Score:
User: 3
Bot: 2`

func TestParse(t *testing.T) {
	t.Run("well formed reply", func(t *testing.T) {
		got := Parse(wellFormed)

		require.Equal(t, game.WinnerUser, got.Winner)
		require.Equal(t, "VALID", got.MoveStatus)
		require.Equal(t, "bomb", got.UserMove)
		require.Equal(t, &game.Scores{User: 3, Bot: 2}, got.Scores)
		require.True(t, got.UserUsedSpecial())
	})

	t.Run("empty reply yields nothing", func(t *testing.T) {
		require.True(t, Parse("").Empty(), "Empty reply should produce no fields")
		require.True(t, Parse("   \n\n  ").Empty(), "Blank reply should produce no fields")
	})

	t.Run("free text yields nothing", func(t *testing.T) {
		require.True(t, Parse("I'm sorry, I can't judge that round.").Empty())
	})

	t.Run("windows line endings", func(t *testing.T) {
		got := Parse("Move Status: valid\r\nUser Move: BOMB\r\nRound Result: Bot wins\r\n")

		require.Equal(t, game.WinnerBot, got.Winner)
		require.Equal(t, "VALID", got.MoveStatus)
		require.Equal(t, "bomb", got.UserMove)
	})
}

func TestRoundResult(t *testing.T) {
	t.Run("user wins", func(t *testing.T) {
		require.Equal(t, game.WinnerUser, RoundResult(Lines("Round Result: User wins!")))
	})

	t.Run("bot wins", func(t *testing.T) {
		require.Equal(t, game.WinnerBot, RoundResult(Lines("**Round Result:** Bot wins (paper covers rock)")))
	})

	t.Run("draw has no winner", func(t *testing.T) {
		require.Equal(t, game.WinnerUnknown, RoundResult(Lines("Round Result: Draw")))
	})

	t.Run("only the first result line counts", func(t *testing.T) {
		lines := Lines("Round Result: Draw\nRound Result: User wins")
		require.Equal(t, game.WinnerUnknown, RoundResult(lines), "Later result lines should be ignored")
	})

	t.Run("winner text without the label is ignored", func(t *testing.T) {
		require.Equal(t, game.WinnerUnknown, RoundResult(Lines("User wins")))
	})

	t.Run("label is case sensitive", func(t *testing.T) {
		require.Equal(t, game.WinnerUnknown, RoundResult(Lines("round result: User wins")))
	})
}

func TestMoveFields(t *testing.T) {
	t.Run("values are trimmed and normalised", func(t *testing.T) {
		lines := Lines("Move Status:   invalid  \nUser Move:  Paper ")
		require.Equal(t, "INVALID", MoveStatus(lines))
		require.Equal(t, "paper", UserMove(lines))
	})

	t.Run("value is taken after the last colon", func(t *testing.T) {
		lines := Lines("User Move: interpreted: scissors")
		require.Equal(t, "scissors", UserMove(lines))
	})

	t.Run("last labelled line wins", func(t *testing.T) {
		lines := Lines("Move Status: INVALID\nMove Status: VALID")
		require.Equal(t, "VALID", MoveStatus(lines))
	})

	t.Run("fields are independent", func(t *testing.T) {
		lines := Lines("User Move: bomb")
		require.Equal(t, "", MoveStatus(lines))
		require.Equal(t, "bomb", UserMove(lines))
	})

	t.Run("invalid bomb does not count as used", func(t *testing.T) {
		got := Parse("Move Status: INVALID\nUser Move: bomb")
		require.False(t, got.UserUsedSpecial())
	})
}

func TestUpdatedScore(t *testing.T) {
	t.Run("reads both numbers", func(t *testing.T) {
		require.Equal(t, &game.Scores{User: 3, Bot: 2}, UpdatedScore(Lines(wellFormed)))
	})

	t.Run("tolerates spacing and decoration", func(t *testing.T) {
		lines := Lines("Updated Score:\n- User : 10\n- Bot:7\n")
		require.Equal(t, &game.Scores{User: 10, Bot: 7}, UpdatedScore(lines))
	})

	t.Run("numbers on the label line count", func(t *testing.T) {
		lines := Lines("Updated Score: User: 1, Bot: 4\n\nGood game!\nNext round?")
		require.Equal(t, &game.Scores{User: 1, Bot: 4}, UpdatedScore(lines))
	})

	t.Run("needs two lines after the label", func(t *testing.T) {
		require.Nil(t, UpdatedScore(Lines("Updated Score:\nUser: 3, Bot: 2")))
	})

	t.Run("one missing number drops the pair", func(t *testing.T) {
		require.Nil(t, UpdatedScore(Lines("Updated Score:\nUser: 3\nBot: ?")))
	})

	t.Run("numbers before the label are ignored", func(t *testing.T) {
		lines := Lines("User: 9\nBot: 9\nUpdated Score:\nUser: 1\nBot: 0")
		require.Equal(t, &game.Scores{User: 1, Bot: 0}, UpdatedScore(lines))
	})

	t.Run("move lines do not look like scores", func(t *testing.T) {
		lines := Lines("Updated Score:\nUser Move: rock\nBot Move: paper")
		require.Nil(t, UpdatedScore(lines))
	})

	t.Run("overflowing number is treated as missing", func(t *testing.T) {
		lines := Lines("Updated Score:\nUser: 99999999999999999999999\nBot: 1")
		require.Nil(t, UpdatedScore(lines))
	})

	t.Run("no label", func(t *testing.T) {
		require.Nil(t, UpdatedScore(Lines("User: 3\nBot: 2\nmore")))
	})
}
