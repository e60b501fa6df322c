package envcheck

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"time"
)

// Step is one numbered startup check. Failures are reported and never stop the program.
type Step struct {
	Title   string
	Check   func(ctx context.Context) (string, error)
	Failure string
}

var numbers = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣"}

func Number(i int) string {
	if i >= 1 && i <= len(numbers) {
		return numbers[i-1]
	}
	return fmt.Sprintf("%d.", i)
}

// Run executes steps in order and returns how many succeeded.
func Run(ctx context.Context, w io.Writer, steps ...Step) int {
	ok := 0
	for i, s := range steps {
		fmt.Fprintf(w, "\n%s %s\n", Number(i+1), s.Title)
		msg, err := s.Check(ctx)
		if err != nil {
			log.Printf("setup check %q failed: %v", s.Title, err)
			fmt.Fprintln(w, s.Failure)
			continue
		}
		fmt.Fprintf(w, "✅ %s\n", msg)
		ok++
	}
	return ok
}

func GoRuntime() Step {
	return Step{
		Title: "Checking Go setup...",
		Check: func(context.Context) (string, error) {
			v := runtime.Version()
			if v == "" {
				return "", fmt.Errorf("unknown runtime version")
			}
			return "Go version: " + v, nil
		},
		Failure: "❌ Go runtime not working",
	}
}

type Pinger interface {
	Heartbeat(ctx context.Context) error
}

// Backend probes an inference server with a short timeout.
func Backend(name string, p Pinger) Step {
	return Step{
		Title: "Checking libraries...",
		Check: func(ctx context.Context) (string, error) {
			if p == nil {
				return "", fmt.Errorf("%s client unavailable", name)
			}
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := p.Heartbeat(ctx); err != nil {
				return "", err
			}
			return name + " reachable", nil
		},
		Failure: "⚠️ " + name + " not found",
	}
}
