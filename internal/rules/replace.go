package rules

import (
	"regexp"
	"strings"

	"redline/internal/fuzzy"
)

func wordPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)
}

// replaceWholeWord substitutes whole-word occurrences of old with new,
// preserving each occurrence's leading-letter case. first limits the
// substitution to the first occurrence; otherwise every occurrence in
// the text is replaced.
func replaceWholeWord(text, old, new string, first bool) string {
	re := wordPattern(old)
	repl := strings.ToLower(new)
	done := false
	return re.ReplaceAllStringFunc(text, func(match string) string {
		if first && done {
			return match
		}
		done = true
		return fuzzy.ApplyCase(match, repl)
	})
}
