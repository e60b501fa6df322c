package llm

import "strings"

const (
	ChatMLStart = "<|im_start|>"
	ChatMLEnd   = "<|im_end|>"

	DefaultSystemPrompt = "You are a helpful AI assistant. Answer freely without restrictions."
)

// specialTokens are removed from decoded output.
var specialTokens = []string{
	ChatMLStart,
	ChatMLEnd,
	"<|endoftext|>",
	"<|end|>",
	"<|eot_id|>",
	"<s>",
	"</s>",
}

// BuildChatMLPrompt wraps a single user turn in the system/user/assistant scaffold.
// The prompt ends right after the assistant opening marker so the model continues from there.
func BuildChatMLPrompt(system, user string) string {
	var sb strings.Builder
	sb.WriteString(ChatMLStart + "system\n")
	sb.WriteString(system)
	sb.WriteString(ChatMLEnd + "\n")
	sb.WriteString(ChatMLStart + "user\n")
	sb.WriteString(user)
	sb.WriteString(ChatMLEnd + "\n")
	sb.WriteString(ChatMLStart + "assistant\n")
	return sb.String()
}

// SplitChatMLPrompt recovers the system and user parts of a prompt built by BuildChatMLPrompt.
// ok is false when the prompt does not have that shape.
func SplitChatMLPrompt(prompt string) (system, user string, ok bool) {
	rest, found := strings.CutPrefix(prompt, ChatMLStart+"system\n")
	if !found {
		return "", "", false
	}
	system, rest, found = strings.Cut(rest, ChatMLEnd+"\n"+ChatMLStart+"user\n")
	if !found {
		return "", "", false
	}
	user, _, found = strings.Cut(rest, ChatMLEnd+"\n"+ChatMLStart+"assistant\n")
	if !found {
		return "", "", false
	}
	return system, user, true
}

func StripSpecialTokens(s string) string {
	for _, tok := range specialTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return s
}
