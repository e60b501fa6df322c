package genchat

import (
	"context"
	"errors"
	"fmt"
	"io"

	"console-chat/internal/llm"
)

var ErrNoModel = errors.New("no model could be loaded")

// Acquire loads the primary model and, if that fails, makes exactly one attempt with the secondary.
// Progress is reported to w.
func Acquire(ctx context.Context, w io.Writer, p llm.Provider, cfg llm.LoadConfig, primary, secondary string) (llm.Model, error) {
	fmt.Fprintln(w, "Loading AI model...")

	model, err := p.Load(ctx, primary, cfg)
	if err == nil {
		fmt.Fprintln(w, "✅ Model loaded successfully!")
		return model, nil
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	fmt.Fprintln(w, "\nTrying smaller model...")

	model, err2 := p.Load(ctx, secondary, cfg)
	if err2 == nil {
		fmt.Fprintln(w, "✅ Smaller model loaded successfully!")
		return model, nil
	}
	fmt.Fprintf(w, "Final error: %v\n", err2)
	return nil, fmt.Errorf("%w: %w", ErrNoModel, errors.Join(err, err2))
}
