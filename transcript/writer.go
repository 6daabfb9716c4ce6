package transcript

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current UTC timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRounds(records []RoundRecord) error {
	path := filepath.Join(w.baseDir, "rounds.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create rounds file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"match", "round", "bot_move", "user_input", "winner", "user_score", "bot_score", "user_bomb_used", "bot_bomb_used", "duration", "time"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write rounds header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Match,
			strconv.Itoa(record.Round),
			record.BotMove,
			record.UserInput,
			record.Winner,
			strconv.Itoa(record.UserScore),
			strconv.Itoa(record.BotScore),
			strconv.FormatBool(record.UserSpecialUsed),
			strconv.FormatBool(record.BotSpecialUsed),
			record.Duration.String(),
			record.Time.UTC().Format(time.RFC3339),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write round row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush rounds file: %w", err)
	}
	return nil
}
