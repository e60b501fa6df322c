package llm

import (
	"context"
	"testing"

	"console-chat/internal/config"
)

func TestFactoryCreateProvider(t *testing.T) {
	f := NewFactory(&config.Config{OpenAIAPIKey: "k", YandexOAuthToken: "t", YandexFolderID: "f"})

	for _, name := range []string{ProviderOpenAI, ProviderYandex, "OpenAI"} {
		p, err := f.CreateProvider(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if p == nil {
			t.Fatalf("nil provider for %s", name)
		}
	}

	if _, err := f.CreateProvider("llamacpp"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestFactoryCreateOllama(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "127.0.0.1:11434")
	p, err := NewFactory(&config.Config{}).CreateProvider(ProviderOllama)
	if err != nil {
		t.Fatalf("create ollama: %v", err)
	}
	if p.Name() != ProviderOllama {
		t.Fatalf("unexpected name: %s", p.Name())
	}
}

func TestYandexLoadValidation(t *testing.T) {
	p := NewYandex("", "")
	if _, err := p.Load(context.Background(), "", DefaultLoadConfig()); err == nil {
		t.Fatalf("expected error without credentials")
	}
	if _, err := NewYandex("t", "f").Load(context.Background(), "gpt-4", DefaultLoadConfig()); err == nil {
		t.Fatalf("expected error for unsupported model")
	}
}
