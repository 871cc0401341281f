package suggestion

import "strings"

// Keyword sets scanned (case-insensitively, as substrings) in a review's
// insights text. Japanese and English stems cover the same concerns.
var (
	// TimeKeywords flag time-management or delay concerns.
	TimeKeywords = []string{"時間", "遅れ", "time", "late", "delay", "behind schedule"}

	// FocusKeywords flag focus or efficiency concerns.
	FocusKeywords = []string{"集中", "効率", "focus", "efficien", "distract"}

	// PlanningKeywords flag preparation or planning concerns.
	PlanningKeywords = []string{"準備", "計画", "prepar", "plan"}
)

// containsAny reports whether text contains any of the keywords.
// text must already be lower-cased.
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
