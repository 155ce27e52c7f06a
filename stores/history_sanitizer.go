package stores

import (
	"log"
)

// SanitizeHistory ensures a stored conversation has a valid shape before it
// is replayed to the model. Retention truncation and crashed runs can leave
// history starting mid-workflow or carrying tool output with no surrounding
// turn, which the model API rejects or misreads.
//
// A valid conversation:
//   - starts with a user message
//   - only carries function messages after some assistant message, since a
//     function message exposes the output of a tool the assistant called
func SanitizeHistory(msgs []Message) []Message {
	if len(msgs) == 0 {
		return msgs
	}

	// Find the first user message to anchor the conversation.
	startIdx := -1
	for i, msg := range msgs {
		if msg.Role == "user" {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		log.Printf("[HISTORY_SANITIZER] no user message in history, returning empty history")
		return []Message{}
	}
	if startIdx > 0 {
		log.Printf("[HISTORY_SANITIZER] skipping first %d messages to reach a user message (was role: %s)",
			startIdx, msgs[0].Role)
		msgs = msgs[startIdx:]
	}

	// Drop function messages that precede any assistant turn.
	result := make([]Message, 0, len(msgs))
	sawAssistant := false
	dropped := 0
	for _, msg := range msgs {
		switch msg.Role {
		case "assistant":
			sawAssistant = true
			result = append(result, msg)
		case "function":
			if sawAssistant {
				result = append(result, msg)
			} else {
				dropped++
			}
		default:
			result = append(result, msg)
		}
	}
	if dropped > 0 {
		log.Printf("[HISTORY_SANITIZER] removed %d orphaned function messages", dropped)
	}

	return result
}

// DetectCorruptedHistory checks a stored conversation for issues that would
// confuse a model turn. Returns a list of issues found (empty if clean).
func DetectCorruptedHistory(msgs []Message) []string {
	issues := []string{}

	if len(msgs) == 0 {
		return issues
	}

	if msgs[0].Role != "user" {
		issues = append(issues, "History does not start with a user message")
	}

	sawAssistant := false
	for i, msg := range msgs {
		switch msg.Role {
		case "assistant":
			sawAssistant = true
		case "function":
			if !sawAssistant {
				issues = append(issues, "function message before any assistant message")
			}
			if msg.Name == "" {
				issues = append(issues, "function message without a tool name")
			}
		}
		if i > 0 && msg.Role == "user" && msgs[i-1].Role == "user" {
			issues = append(issues, "Two consecutive user messages")
		}
	}

	return issues
}
