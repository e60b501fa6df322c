package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider talks to any OpenAI-compatible server through the raw completions endpoint.
type OpenAIProvider struct {
	client *openai.Client
}

type OpenAIModel struct {
	client *openai.Client
	model  string
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid mutating the original
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

func NewOpenAI(apiKey, baseURL, referrer, title string) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	// Inject optional headers (useful for OpenRouter)
	if referrer != "" || title != "" {
		h := http.Header{}
		if referrer != "" {
			h.Set("HTTP-Referer", referrer)
		}
		if title != "" {
			h.Set("X-Title", title)
		}
		base := http.DefaultTransport
		config.HTTPClient = &http.Client{Transport: headerTransport{rt: base, headers: h}}
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(config)}
}

func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

// Load checks that the server knows the model. Precision and placement are owned by the server.
func (p *OpenAIProvider) Load(ctx context.Context, identifier string, _ LoadConfig) (Model, error) {
	if identifier == "" {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: errors.New("empty model identifier")}
	}
	if _, err := p.client.GetModel(ctx, identifier); err != nil {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: err}
	}
	return &OpenAIModel{client: p.client, model: identifier}, nil
}

func (m *OpenAIModel) Identifier() string { return m.model }

func (m *OpenAIModel) Generate(ctx context.Context, prompt string, cfg SamplingConfig, onChunk StreamFunc) (Response, error) {
	req := openai.CompletionRequest{
		Model:     m.model,
		Prompt:    prompt,
		MaxTokens: cfg.MaxNewTokens,
		TopP:      cfg.TopP,
		Stop:      cfg.Stop,
		Stream:    true,
	}
	if cfg.DoSample {
		req.Temperature = cfg.Temperature
	}

	stream, err := m.client.CreateCompletionStream(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create completion stream: %w", err)
	}
	defer stream.Close()

	out := Response{Model: m.model}
	var content []byte
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Response{}, fmt.Errorf("completion stream failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		chunk := StripSpecialTokens(resp.Choices[0].Text)
		if chunk == "" {
			continue
		}
		content = append(content, chunk...)
		if onChunk != nil {
			if err := onChunk(chunk); err != nil {
				return Response{}, err
			}
		}
	}
	out.Content = string(content)
	return out, nil
}
