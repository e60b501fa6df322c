package transcript

import "testing"

func TestTranscriptAppendOrder(t *testing.T) {
	tr := New()

	tr.AppendUser("hello")
	tr.AppendAssistant("hi")
	tr.AppendUser("foo")
	tr.AppendAssistant("bar")

	entries := tr.Entries()
	if len(entries) != 4 || tr.Len() != 4 {
		t.Fatalf("unexpected length: %d", len(entries))
	}
	want := []Entry{
		{Role: RoleUser, Text: "hello"},
		{Role: RoleAssistant, Text: "hi"},
		{Role: RoleUser, Text: "foo"},
		{Role: RoleAssistant, Text: "bar"},
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entry %d: want %+v, got %+v", i, want[i], entries[i])
		}
	}

	// Ensure copy semantics (modifying returned slice does not affect internal state)
	entries[0] = Entry{Role: RoleUser, Text: "mutated"}
	if tr.Entries()[0].Text != "hello" {
		t.Fatalf("internal state mutated via returned slice")
	}
}

func TestTranscriptLines(t *testing.T) {
	tr := New()
	if len(tr.Lines()) != 0 {
		t.Fatalf("new transcript should be empty")
	}
	tr.AppendUser("what time is it")
	tr.AppendAssistant("Current time is 10:00:00")

	lines := tr.Lines()
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	if lines[0] != "You: what time is it" || lines[1] != "AI: Current time is 10:00:00" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}
