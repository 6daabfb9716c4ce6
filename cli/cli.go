package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"rpsplus/communication"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
	promptStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Run reads one move per line from in and prints the judge's reply to out. It
// stops on an empty line, at end of input, or when ctx is cancelled. A failed
// round is reported and the loop goes on.
func Run(ctx context.Context, in io.Reader, out io.Writer, comm communication.Communicator) error {
	fmt.Fprintln(out, titleStyle.Render("Rock-Paper-Scissors Plus — AI Judge"))
	fmt.Fprintln(out, hintStyle.Render("Valid moves: rock, paper, scissors, bomb (bomb once per player)."))
	fmt.Fprintln(out, hintStyle.Render("Type your move and press Enter. Empty input to quit."))
	fmt.Fprintln(out)

	lines, readErr := readLines(ctx, in)
	for {
		fmt.Fprint(out, promptStyle.Render("Your move:")+" ")
		if ctx.Err() != nil {
			fmt.Fprintln(out, "\nBye.")
			return nil
		}

		var input string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nBye.")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, "\nBye.")
				return <-readErr
			}
			input = strings.TrimSpace(line)
		}
		// a line and a cancellation can arrive together
		if ctx.Err() != nil {
			fmt.Fprintln(out, "\nBye.")
			return nil
		}
		if input == "" {
			fmt.Fprintln(out, "Bye.")
			return nil
		}

		fmt.Fprintln(out)
		reply, err := comm.PlayRound(ctx, input)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("Error: "+err.Error()))
		} else {
			fmt.Fprintln(out, reply)
		}
		fmt.Fprintln(out)
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The scanner error, possibly nil, is sent once lines closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Summary renders the final score line of a match.
func Summary(ctx context.Context, comm communication.Communicator) (string, error) {
	s, err := comm.State(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Final score after %d round(s): You %d - Bot %d", s.Round-1, s.UserScore, s.BotScore), nil
}
