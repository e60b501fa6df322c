package rulebot

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"console-chat/internal/transcript"
)

func TestRunTwoTurnsThenExit(t *testing.T) {
	d := New(WithClock(func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local) }))
	in := strings.NewReader("hello\nwhat time is it\nexit\nnever read\n")
	var out bytes.Buffer

	tr, err := Run(in, &out, d)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	entries := tr.Entries()
	if len(entries) != 4 {
		t.Fatalf("want 4 entries, got %d: %+v", len(entries), entries)
	}
	for i, e := range entries {
		want := transcript.RoleUser
		if i%2 == 1 {
			want = transcript.RoleAssistant
		}
		if e.Role != want {
			t.Fatalf("entry %d: want role %s, got %s", i, want, e.Role)
		}
	}
	if entries[0].Text != "hello" || entries[1].Text != greeting {
		t.Fatalf("unexpected first turn: %+v", entries[:2])
	}
	if entries[3].Text != "Current time is 12:00:00" {
		t.Fatalf("unexpected second reply: %q", entries[3].Text)
	}

	output := out.String()
	for _, want := range []string{"💬 CHAT STARTED!", "Type 'exit' to quit", "\nYou: ", "\nAI: " + greeting + "\n", "\nAI: Goodbye! 👋\n"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "never read") {
		t.Fatalf("input after exit was processed")
	}
}

func TestRunExitNotTrimmed(t *testing.T) {
	in := strings.NewReader(" exit \nplease exit\nEXIT\n")
	var out bytes.Buffer

	tr, err := Run(in, &out, New(WithSeed(1)))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if tr.Len() != 4 {
		t.Fatalf("want 4 entries before exit, got %d", tr.Len())
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("EXIT should end the session")
	}
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	tr, err := Run(strings.NewReader("weather"), &out, New())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if tr.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", tr.Len())
	}
	if strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("EOF should not print goodbye")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestRunReadError(t *testing.T) {
	var out bytes.Buffer
	if _, err := Run(failingReader{}, &out, New()); err == nil {
		t.Fatalf("expected read error")
	}
}
