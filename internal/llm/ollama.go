package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/ollama/ollama/api"
)

type OllamaProvider struct {
	client *api.Client
}

type OllamaModel struct {
	client  *api.Client
	name    string
	options map[string]any
}

func NewOllama() (*OllamaProvider, error) {
	// Honors OLLAMA_HOST
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to init ollama client: %w", err)
	}
	return &OllamaProvider{client: client}, nil
}

func NewOllamaWithClient(client *api.Client) *OllamaProvider {
	return &OllamaProvider{client: client}
}

func (p *OllamaProvider) Name() string { return ProviderOllama }

// Heartbeat reports whether the ollama server is reachable.
func (p *OllamaProvider) Heartbeat(ctx context.Context) error {
	return p.client.Heartbeat(ctx)
}

func (p *OllamaProvider) Load(ctx context.Context, identifier string, cfg LoadConfig) (Model, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: errors.New("empty model identifier")}
	}

	_, err := p.client.Show(ctx, &api.ShowRequest{Model: identifier})
	if err != nil && cfg.Pull && isNotFound(err) {
		log.Printf("📥 Model %s not found locally, pulling...", identifier)
		if err = p.pull(ctx, identifier); err == nil {
			_, err = p.client.Show(ctx, &api.ShowRequest{Model: identifier})
		}
	}
	if err != nil {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: err}
	}

	options := map[string]any{}
	if cfg.DeviceMap == "cpu" {
		options["num_gpu"] = 0
	}
	return &OllamaModel{client: p.client, name: identifier, options: options}, nil
}

func (p *OllamaProvider) pull(ctx context.Context, identifier string) error {
	lastStatus := ""
	return p.client.Pull(ctx, &api.PullRequest{Model: identifier}, func(resp api.ProgressResponse) error {
		if resp.Status != lastStatus {
			lastStatus = resp.Status
			log.Printf("📥 %s: %s", identifier, resp.Status)
		}
		return nil
	})
}

func isNotFound(err error) bool {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound
	}
	return strings.Contains(err.Error(), "not found")
}

func (m *OllamaModel) Identifier() string { return m.name }

func (m *OllamaModel) Generate(ctx context.Context, prompt string, cfg SamplingConfig, onChunk StreamFunc) (Response, error) {
	options := make(map[string]any, len(m.options)+5)
	for k, v := range m.options {
		options[k] = v
	}
	options["num_predict"] = cfg.MaxNewTokens
	options["top_p"] = cfg.TopP
	options["repeat_penalty"] = cfg.RepetitionPenalty
	if cfg.DoSample {
		options["temperature"] = cfg.Temperature
	} else {
		options["temperature"] = 0
	}
	if len(cfg.Stop) > 0 {
		options["stop"] = cfg.Stop
	}

	// Raw: the prompt already carries the chat template
	req := &api.GenerateRequest{
		Model:   m.name,
		Prompt:  prompt,
		Raw:     true,
		Options: options,
	}

	var sb strings.Builder
	out := Response{Model: m.name}
	err := m.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		chunk := StripSpecialTokens(resp.Response)
		if chunk != "" {
			sb.WriteString(chunk)
			if onChunk != nil {
				if err := onChunk(chunk); err != nil {
					return err
				}
			}
		}
		if resp.Done {
			out.PromptTokens = resp.PromptEvalCount
			out.CompletionTokens = resp.EvalCount
			out.TotalTokens = resp.PromptEvalCount + resp.EvalCount
		}
		return nil
	})
	if err != nil {
		return Response{}, fmt.Errorf("ollama generate failed: %w", err)
	}
	out.Content = sb.String()
	return out, nil
}
