package llm

import (
	"fmt"
	"strings"

	"console-chat/internal/config"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
)

// Factory creates model providers with consistent logic
type Factory struct {
	OpenaiAPIKey       string
	OpenaiBaseURL      string
	OpenRouterReferrer string
	OpenRouterTitle    string
	YandexOAuthToken   string
	YandexFolderID     string
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		OpenaiAPIKey:       cfg.OpenAIAPIKey,
		OpenaiBaseURL:      cfg.OpenAIBaseURL,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		YandexOAuthToken:   cfg.YandexOAuthToken,
		YandexFolderID:     cfg.YandexFolderID,
	}
}

func (f *Factory) CreateProvider(provider string) (Provider, error) {
	switch strings.ToLower(provider) {
	case ProviderOllama:
		return NewOllama()
	case ProviderOpenAI:
		return NewOpenAI(f.OpenaiAPIKey, f.OpenaiBaseURL, f.OpenRouterReferrer, f.OpenRouterTitle), nil
	case ProviderYandex:
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}

func SupportedProviders() []string {
	return []string{ProviderOllama, ProviderOpenAI, ProviderYandex}
}
