package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

const (
	DefaultPrimaryModel  = "hf.co/NousResearch/Hermes-2-Pro-Llama-3-8B-GGUF"
	DefaultFallbackModel = "hf.co/microsoft/Phi-3-mini-4k-instruct-gguf"
)

type Config struct {
	// Rule-based responder
	RulebotSeed int64 `env:"RULEBOT_SEED" envDefault:"0"`

	// LLM settings
	LLMProvider    string `env:"LLM_PROVIDER" envDefault:"ollama"`
	PrimaryModel   string `env:"PRIMARY_MODEL" envDefault:"hf.co/NousResearch/Hermes-2-Pro-Llama-3-8B-GGUF"`
	FallbackModel  string `env:"FALLBACK_MODEL" envDefault:"hf.co/microsoft/Phi-3-mini-4k-instruct-gguf"`
	ModelPrecision string `env:"MODEL_PRECISION" envDefault:"float16"`
	ModelDeviceMap string `env:"MODEL_DEVICE_MAP" envDefault:"auto"`
	ModelPull      bool   `env:"MODEL_PULL" envDefault:"true"`

	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
	YandexOAuthToken string `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Prompts
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
