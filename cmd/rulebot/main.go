package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"console-chat/internal/config"
	"console-chat/internal/console"
	"console-chat/internal/envcheck"
	"console-chat/internal/llm"
	"console-chat/internal/rulebot"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("🎯 AI CHAT PROGRAM STARTING...")
	fmt.Println(console.Separator)

	// Probe failures are informational only
	var pinger envcheck.Pinger
	if p, err := llm.NewOllama(); err != nil {
		log.Printf("⚠️ ollama client unavailable: %v", err)
	} else {
		pinger = p
	}
	envcheck.Run(ctx, os.Stdout, envcheck.GoRuntime(), envcheck.Backend("Ollama", pinger))

	fmt.Printf("\n%s Loading AI...\n", envcheck.Number(3))

	var opts []rulebot.Option
	if cfg.RulebotSeed != 0 {
		opts = append(opts, rulebot.WithSeed(cfg.RulebotSeed))
	}
	dispatcher := rulebot.New(opts...)

	in := console.NewReader(os.Stdin)
	tr, err := rulebot.Run(in, os.Stdout, dispatcher)
	if err != nil {
		log.Fatalf("❌ chat failed: %v", err)
	}
	log.Printf("📋 Session finished with %d transcript entries", tr.Len())

	console.Banner(os.Stdout, "📊 Program finished successfully!")
	fmt.Print("Press Enter to exit...")
	_, _ = in.ReadLine()
}
