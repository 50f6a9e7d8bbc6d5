package fuzzy

import (
	"strings"

	"redline/internal/lexicon"
)

// HomophoneChecker disambiguates among closed groups of sound-alike
// words using fixed substring cues in the sentence context. It is a
// deterministic decision table: when no cue matches, the word is
// returned unchanged. It is only consulted where a rule explicitly
// invokes it, never over every token.
type HomophoneChecker struct {
	groups map[string][]string
}

func NewHomophoneChecker() *HomophoneChecker {
	c := &HomophoneChecker{groups: make(map[string][]string)}
	for _, group := range lexicon.HomophoneGroups {
		for _, w := range group {
			c.groups[w] = group
		}
	}
	return c
}

// Resolve returns the homophone of word that best fits context, or word
// itself when it belongs to no group, the group is trivial, or no cue
// matches. The first letter's case is preserved.
func (c *HomophoneChecker) Resolve(word, context string) string {
	lw := strings.ToLower(word)
	group, ok := c.groups[lw]
	if !ok || len(group) <= 1 {
		return word
	}

	ctx := strings.ToLower(context)
	contains := func(cues ...string) bool {
		for _, cue := range cues {
			if strings.Contains(ctx, cue) {
				return true
			}
		}
		return false
	}

	var fixed string
	switch lw {
	case "to", "too", "two":
		switch {
		case contains("go to", "give to"):
			fixed = "to"
		case contains("too many", "too much"):
			fixed = "too"
		case contains("two of", "two years"):
			fixed = "two"
		}
	case "their", "there", "they're":
		switch {
		case contains("their "):
			fixed = "their"
		case contains("there is", "there are", "there was"):
			fixed = "there"
		case contains("they are"):
			fixed = "they're"
		}
	case "your", "you're":
		if contains("you are") {
			fixed = "you're"
		} else {
			fixed = "your"
		}
	case "its", "it's":
		if contains("it is", "it has") {
			fixed = "it's"
		} else {
			fixed = "its"
		}
	}

	if fixed == "" || fixed == lw {
		return word
	}
	return ApplyCase(word, fixed)
}
