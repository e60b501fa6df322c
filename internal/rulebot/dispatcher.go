package rulebot

import (
	"math/rand"
	"strings"
	"time"
)

const ExitCommand = "exit"

// Rule maps trigger substrings to a reply. Any trigger contained in the normalized input activates it.
type Rule struct {
	Triggers []string
	Reply    func(now time.Time) string
}

func fixed(text string) func(time.Time) string {
	return func(time.Time) string { return text }
}

// DefaultRules in priority order; the first match wins.
var DefaultRules = []Rule{
	{Triggers: []string{"hello", "hi"}, Reply: fixed("Hello! How can I help you today?")},
	{Triggers: []string{"name"}, Reply: fixed("I'm AI Assistant. What's your name?")},
	{Triggers: []string{"how are you"}, Reply: fixed("I'm good, thank you! How about you?")},
	{Triggers: []string{"weather"}, Reply: fixed("I think the weather is nice today!")},
	{Triggers: []string{"time"}, Reply: func(now time.Time) string {
		return "Current time is " + now.Format("15:04:05")
	}},
}

// Fillers answer inputs that match no rule.
var Fillers = []string{
	"That's interesting! Tell me more.",
	"I understand. What else would you like to know?",
	"Thanks for sharing that with me.",
	"I'm learning from our conversation!",
	"Can you explain that a bit more?",
}

type Dispatcher struct {
	rules   []Rule
	fillers []string
	now     func() time.Time
	rng     *rand.Rand
}

type Option func(*Dispatcher)

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func WithRand(rng *rand.Rand) Option {
	return func(d *Dispatcher) { d.rng = rng }
}

// WithSeed makes filler selection reproducible.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		rules:   DefaultRules,
		fillers: Fillers,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return d
}

// IsExit reports whether the raw input line is the exit command. No trimming is applied.
func IsExit(line string) bool {
	return strings.ToLower(line) == ExitCommand
}

// Respond never fails; unmatched input gets a random filler.
func (d *Dispatcher) Respond(input string) string {
	normalized := strings.ToLower(input)
	for _, rule := range d.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(normalized, trigger) {
				return rule.Reply(d.now())
			}
		}
	}
	return d.fillers[d.rng.Intn(len(d.fillers))]
}
