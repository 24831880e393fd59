package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Chat runs the interactive loop: read a question, answer it, repeat until
// the user quits or the context is cancelled. Per-turn errors are printed and
// the loop resumes; nothing is retried automatically.
func (b *Bot) Chat(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	const maxLineSize = 1024 * 1024
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	fmt.Fprintln(out, "Tour Guide Bot - ask me anything about your destination!")
	fmt.Fprintln(out, "Type 'quit' to exit, 'clear' to start a new conversation.")
	fmt.Fprintln(out)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nBot: Goodbye!")
			return nil
		default:
		}

		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("stdin error: %w", err)
			}
			// EOF
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit", "bye":
			fmt.Fprintln(out, "\nBot: Have a great trip! Goodbye!")
			return nil
		case "clear":
			b.ClearHistory()
			fmt.Fprintln(out, "\nBot: Starting fresh! What would you like to know?")
			fmt.Fprintln(out)
			continue
		}

		answer, err := b.Ask(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "\nBot: Sorry, I ran into a problem: %v\n\n", err)
			continue
		}

		fmt.Fprintf(out, "\nBot: %s\n\n", answer)
	}
}
