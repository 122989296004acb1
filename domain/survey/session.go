package survey

import (
	"fmt"
	"regexp"
)

// Session headers embed a training day/module identifier, e.g.
// "Q1 DAY1-LM2 Relevance of content". Two patterns are tried in order:
// the question-prefixed form first, then the bare day/module form.
// Separators may be whitespace, underscore, hyphen or en-dash.
var (
	sessionSpecificRe = regexp.MustCompile(`(?i)Q\d+[_-]?\s*DAY\s*(\d+)\s*[-–]?\s*LM\s*(\d+)`)
	sessionGeneralRe  = regexp.MustCompile(`(?i)DAY\s*(\d+)\s*[-–]?\s*LM\s*(\d+)`)
)

// SessionKeyFor extracts the normalized session key from a header, or
// reports no match. The key is rebuilt from the captured day and module
// digits as "DAY<d>-LM<d>", so "Q1 DAY1-LM2 Relevance" and
// "Q2_DAY1 LM2 Clarity" share the key "DAY1-LM2" regardless of question
// number or separator style. No match is an expected outcome, not an
// error.
func SessionKeyFor(header string) (string, bool) {
	for _, re := range []*regexp.Regexp{sessionSpecificRe, sessionGeneralRe} {
		if m := re.FindStringSubmatch(header); m != nil {
			return fmt.Sprintf("DAY%s-LM%s", m[1], m[2]), true
		}
	}
	return "", false
}
