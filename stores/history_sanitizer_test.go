package stores

import (
	"testing"
)

func msg(role, name string) Message {
	return Message{Role: role, Name: name, ContentJSON: `"x"`}
}

func TestSanitizeEmptyHistory(t *testing.T) {
	result := SanitizeHistory([]Message{})
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d messages", len(result))
	}
}

func TestSanitizeValidHistoryUnchanged(t *testing.T) {
	history := []Message{
		msg("user", ""),
		msg("assistant", ""),
		msg("function", "generate_business_data"),
		msg("user", ""),
		msg("assistant", ""),
	}
	result := SanitizeHistory(history)
	if len(result) != len(history) {
		t.Errorf("valid history changed: %d -> %d messages", len(history), len(result))
	}
}

func TestSanitizeDropsLeadingNonUser(t *testing.T) {
	history := []Message{
		msg("function", "generate_business_data"),
		msg("assistant", ""),
		msg("user", ""),
		msg("assistant", ""),
	}
	result := SanitizeHistory(history)
	if len(result) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(result))
	}
	if result[0].Role != "user" {
		t.Errorf("history should start with user, starts with %s", result[0].Role)
	}
}

func TestSanitizeDropsOrphanedFunctionMessages(t *testing.T) {
	history := []Message{
		msg("user", ""),
		msg("function", "generate_business_data"),
		msg("assistant", ""),
		msg("function", "generate_statistical_data"),
	}
	result := SanitizeHistory(history)
	if len(result) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(result))
	}
	for i, m := range result[:2] {
		if m.Role == "function" {
			t.Errorf("orphaned function message survived at index %d", i)
		}
	}
	if result[2].Role != "function" {
		t.Error("function message after assistant should be kept")
	}
}

func TestSanitizeNoUserMessages(t *testing.T) {
	history := []Message{
		msg("assistant", ""),
		msg("function", "generate_business_data"),
	}
	result := SanitizeHistory(history)
	if len(result) != 0 {
		t.Errorf("history without user messages should empty out, got %d", len(result))
	}
}

func TestDetectCorruptedHistory(t *testing.T) {
	clean := []Message{
		msg("user", ""),
		msg("assistant", ""),
		msg("function", "generate_business_data"),
	}
	if issues := DetectCorruptedHistory(clean); len(issues) != 0 {
		t.Errorf("clean history reported issues: %v", issues)
	}

	corrupted := []Message{
		msg("function", ""),
		msg("user", ""),
		msg("user", ""),
	}
	issues := DetectCorruptedHistory(corrupted)
	if len(issues) < 3 {
		t.Errorf("expected bad start, orphaned function, unnamed function and double user issues, got %v", issues)
	}
}
