package transcript

import "sync"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Entry struct {
	Role Role
	Text string
}

// Transcript is the append-only log of one chat session. It lives for a single run and is never persisted.
type Transcript struct {
	mu      sync.RWMutex
	entries []Entry
}

func New() *Transcript {
	return &Transcript{}
}

func (t *Transcript) AppendUser(text string) {
	t.append(Entry{Role: RoleUser, Text: text})
}

func (t *Transcript) AppendAssistant(text string) {
	t.append(Entry{Role: RoleAssistant, Text: text})
}

func (t *Transcript) append(e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, e)
}

// Entries returns a copy of all entries in chronological order.
func (t *Transcript) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Lines renders the transcript with the same prefixes the console uses.
func (t *Transcript) Lines() []string {
	entries := t.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		switch e.Role {
		case RoleUser:
			out = append(out, "You: "+e.Text)
		default:
			out = append(out, "AI: "+e.Text)
		}
	}
	return out
}
