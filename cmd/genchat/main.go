package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"console-chat/internal/config"
	"console-chat/internal/genchat"
	"console-chat/internal/llm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewFactory(cfg).CreateProvider(cfg.LLMProvider)
	if err != nil {
		log.Fatalf("failed to create llm provider: %v", err)
	}
	log.Printf("🔗 Using %s provider (primary=%s, fallback=%s)", provider.Name(), cfg.PrimaryModel, cfg.FallbackModel)

	loadCfg := llm.LoadConfig{
		Precision: cfg.ModelPrecision,
		DeviceMap: cfg.ModelDeviceMap,
		Pull:      cfg.ModelPull,
	}
	model, err := genchat.Acquire(ctx, os.Stdout, provider, loadCfg, cfg.PrimaryModel, cfg.FallbackModel)
	if err != nil {
		// Already reported by Acquire
		log.Printf("❌ %v", err)
		os.Exit(1)
	}

	session := genchat.NewSession(model, readSystemPrompt(cfg.SystemPromptPath))
	if err := session.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func readSystemPrompt(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("system prompt file not found or unreadable at %s: %v", path, err)
		return ""
	}
	return strings.TrimSpace(string(data))
}
