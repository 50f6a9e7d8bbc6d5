package fuzzy

import "strings"

// ApplyCase transfers the case shape of model onto word: all-caps stays
// all-caps, a leading capital stays a leading capital, anything else is
// returned as-is.
func ApplyCase(model, word string) string {
	if model == "" || word == "" {
		return word
	}
	if isUpper(model) && len([]rune(model)) > 1 {
		return strings.ToUpper(word)
	}
	if isTitle(model) {
		return title(word)
	}
	return word
}

func isTitle(s string) bool {
	r := []rune(s)
	if len(r) == 0 {
		return false
	}
	first := string(r[0])
	return strings.ToUpper(first) == first && strings.ToLower(first) != first
}

func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}

func title(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
