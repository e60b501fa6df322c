package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"console-chat/internal/config"
	"console-chat/internal/rulebot"
)

// RespondParams is the input of the rulebot_respond tool
type RespondParams struct {
	Message string `json:"message" mcp:"user message to answer"`
}

type RulebotMCPServer struct {
	dispatcher *rulebot.Dispatcher
}

func NewRulebotMCPServer(d *rulebot.Dispatcher) *RulebotMCPServer {
	return &RulebotMCPServer{dispatcher: d}
}

// Respond answers a single message with the keyword dispatcher. The exit command has no meaning here.
func (s *RulebotMCPServer) Respond(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[RespondParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	log.Printf("📨 rulebot_respond: %q", args.Message)

	reply := s.dispatcher.Respond(args.Message)
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: reply},
		},
	}, nil
}

func main() {
	// stdout is the MCP transport; diagnostics go to stderr
	log.SetOutput(os.Stderr)

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	cfg := config.New()

	var opts []rulebot.Option
	if cfg.RulebotSeed != 0 {
		opts = append(opts, rulebot.WithSeed(cfg.RulebotSeed))
	}
	rb := NewRulebotMCPServer(rulebot.New(opts...))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "console-chat-rulebot-mcp",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rulebot_respond",
		Description: "Answers a message using fixed keyword rules (greeting, name, mood, weather, current time) or a random filler",
	}, rb.Respond)

	tools := []string{"rulebot_respond"}
	log.Printf("📋 Registered rulebot MCP tools: %s", strings.Join(tools, ", "))
	log.Printf("🔗 Starting rulebot MCP server on stdin/stdout...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport := mcp.NewStdioTransport()
	if err := server.Run(ctx, transport); err != nil {
		log.Fatalf("❌ Rulebot MCP Server failed: %v", err)
	}
}
