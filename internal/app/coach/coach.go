// Package coach selects canned encouragement responses by keyword match.
// This is a static lookup table, not inference: a pure function from input
// keywords to a response variant, with no learning and no external calls.
package coach

import "strings"

// rule maps trigger keywords to a response variant.
type rule struct {
	keywords []string
	response string
}

// rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{
		keywords: []string{"stuck", "can't start", "cant start", "procrastinat"},
		response: "Pick the smallest piece of it; two minutes counts. Quick wins still score.",
	},
	{
		keywords: []string{"overwhelm", "too much", "too many"},
		response: "One thing at a time. Choose a single task and let the rest wait their turn.",
	},
	{
		keywords: []string{"tired", "exhausted", "burnout", "burned out"},
		response: "Rest is part of the plan. Your streak only needs one small activity today.",
	},
	{
		keywords: []string{"fail", "missed", "broke my streak"},
		response: "A gap is data, not a verdict. Today is day one of the next streak.",
	},
	{
		keywords: []string{"focus", "distract"},
		response: "Close the extra tabs, set a timer, and take the hyperfocus bonus when it lands.",
	},
	{
		keywords: []string{"deadline", "commitment", "pledge"},
		response: "The 48-hour window is yours. Check the remaining time and take one step now.",
	},
}

// defaultResponse covers input with no keyword hit.
const defaultResponse = "Noted. What's the one next action you can finish today?"

// Respond returns the canned response for the given message.
// Deterministic: the same input always selects the same variant.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.response
			}
		}
	}
	return defaultResponse
}
