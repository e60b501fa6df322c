package genchat

import (
	"context"
	"errors"
	"fmt"
	"io"

	"console-chat/internal/console"
	"console-chat/internal/llm"
	"console-chat/internal/rulebot"
)

// Session runs the generative chat loop against a loaded model.
type Session struct {
	Model        llm.Model
	SystemPrompt string
	Sampling     llm.SamplingConfig
}

func NewSession(model llm.Model, systemPrompt string) *Session {
	if systemPrompt == "" {
		systemPrompt = llm.DefaultSystemPrompt
	}
	return &Session{
		Model:        model,
		SystemPrompt: systemPrompt,
		Sampling:     llm.DefaultSamplingConfig(),
	}
}

// Run loops until the exit command or end of input. Generation errors are not recovered:
// the first one ends the session and is returned.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	console.Banner(out, "AI Assistant Ready! (Type 'exit' to quit)")

	reader := console.NewReader(in)
	for {
		line, err := console.Ask(out, reader)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if rulebot.IsExit(line) {
			return nil
		}

		if _, err := s.Turn(ctx, line, out); err != nil {
			return err
		}
	}
}

// Turn sends one user line to the model and streams the answer to out.
func (s *Session) Turn(ctx context.Context, line string, out io.Writer) (llm.Response, error) {
	prompt := llm.BuildChatMLPrompt(s.SystemPrompt, line)

	fmt.Fprint(out, "\n"+console.AssistantPrefix)
	resp, err := s.Model.Generate(ctx, prompt, s.Sampling, func(chunk string) error {
		_, err := io.WriteString(out, chunk)
		return err
	})
	fmt.Fprintln(out)
	if err != nil {
		return llm.Response{}, fmt.Errorf("generate with %s: %w", s.Model.Identifier(), err)
	}
	return resp, nil
}
