package llm

import (
	"context"
	"fmt"
)

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// SamplingConfig holds the generation parameters sent with every prompt.
type SamplingConfig struct {
	MaxNewTokens      int
	Temperature       float32
	DoSample          bool
	TopP              float32
	RepetitionPenalty float32
	Stop              []string
}

func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		MaxNewTokens:      500,
		Temperature:       0.7,
		DoSample:          true,
		TopP:              0.9,
		RepetitionPenalty: 1.1,
		Stop:              []string{ChatMLEnd, ChatMLStart},
	}
}

// LoadConfig describes how a model should be placed once acquired.
type LoadConfig struct {
	Precision string
	DeviceMap string
	Pull      bool
}

func DefaultLoadConfig() LoadConfig {
	return LoadConfig{Precision: "float16", DeviceMap: "auto", Pull: true}
}

// StreamFunc receives generated text as it arrives. Returning an error aborts generation.
type StreamFunc func(chunk string) error

// Model is a loaded causal language model.
type Model interface {
	Identifier() string
	Generate(ctx context.Context, prompt string, cfg SamplingConfig, onChunk StreamFunc) (Response, error)
}

// Provider acquires models by identifier. Load failures are reported as *LoadError.
type Provider interface {
	Name() string
	Load(ctx context.Context, identifier string, cfg LoadConfig) (Model, error)
}

type LoadError struct {
	Provider   string
	Identifier string
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: failed to load model %q: %v", e.Provider, e.Identifier, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
