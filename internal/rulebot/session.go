package rulebot

import (
	"errors"
	"fmt"
	"io"

	"console-chat/internal/console"
	"console-chat/internal/transcript"
)

// Run drives one chat session until the exit command or end of input.
// The returned transcript belongs to this run only.
func Run(in io.Reader, out io.Writer, d *Dispatcher) (*transcript.Transcript, error) {
	console.Banner(out, "💬 CHAT STARTED!", "Type 'exit' to quit")

	tr := transcript.New()
	reader := console.NewReader(in)
	for {
		line, err := console.Ask(out, reader)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return tr, nil
		}
		if err != nil {
			return tr, fmt.Errorf("read input: %w", err)
		}

		if IsExit(line) {
			console.Reply(out, "Goodbye! 👋")
			return tr, nil
		}

		response := d.Respond(line)
		console.Reply(out, response)

		tr.AppendUser(line)
		tr.AppendAssistant(response)
	}
}
