package main

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"console-chat/internal/rulebot"
)

func TestRespondTool(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 5, 6, 1, 2, 3, 0, time.Local) }
	s := NewRulebotMCPServer(rulebot.New(rulebot.WithClock(clock), rulebot.WithSeed(1)))

	tests := []struct{ msg, want string }{
		{"Hello!", "Hello! How can I help you today?"},
		{"what time", "Current time is 01:02:03"},
		{"your name?", "I'm AI Assistant. What's your name?"},
	}
	for _, tt := range tests {
		msg, want := tt.msg, tt.want
		res, err := s.Respond(context.Background(), nil, &mcp.CallToolParamsFor[RespondParams]{
			Arguments: RespondParams{Message: msg},
		})
		if err != nil {
			t.Fatalf("respond %q: %v", msg, err)
		}
		if len(res.Content) != 1 {
			t.Fatalf("want one content block, got %d", len(res.Content))
		}
		text, ok := res.Content[0].(*mcp.TextContent)
		if !ok {
			t.Fatalf("unexpected content type %T", res.Content[0])
		}
		if text.Text != want {
			t.Fatalf("respond %q = %q, want %q", msg, text.Text, want)
		}
	}
}
