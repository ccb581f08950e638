package coach

import (
	"strings"
	"testing"
)

func TestRespond_KeywordMatch(t *testing.T) {
	tests := []struct {
		message string
		want    string // substring of the expected response
	}{
		{"I'm stuck on this report", "smallest piece"},
		{"there is just too much going on", "One thing at a time"},
		{"so tired today", "Rest is part of the plan"},
		{"I broke my streak yesterday", "day one"},
		{"I keep getting distracted", "hyperfocus"},
		{"worried about my commitment deadline", "48-hour"},
	}
	for _, tt := range tests {
		got := Respond(tt.message)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Respond(%q) = %q, want substring %q", tt.message, got, tt.want)
		}
	}
}

func TestRespond_Deterministic(t *testing.T) {
	msg := "feeling overwhelmed by everything"
	first := Respond(msg)
	for i := 0; i < 5; i++ {
		if got := Respond(msg); got != first {
			t.Fatalf("Respond is not deterministic: %q vs %q", got, first)
		}
	}
}

func TestRespond_CaseInsensitive(t *testing.T) {
	if Respond("STUCK again") != Respond("stuck again") {
		t.Error("keyword matching should be case-insensitive")
	}
}

func TestRespond_NoMatch(t *testing.T) {
	got := Respond("hello there")
	if got != defaultResponse {
		t.Errorf("expected default response, got %q", got)
	}
}
