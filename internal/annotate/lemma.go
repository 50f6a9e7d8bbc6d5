package annotate

import "strings"

// irregularLemmas maps common irregular inflections to their base form.
// This helps the annotation side only; the rules never generate
// irregular forms (naive suffix conjugation is a documented limitation).
var irregularLemmas = map[string]string{
	"went": "go", "gone": "go", "goes": "go",
	"was": "be", "were": "be", "is": "be", "are": "be", "am": "be", "been": "be",
	"has": "have", "had": "have",
	"did": "do", "does": "do", "done": "do",
	"said": "say", "sat": "sit", "got": "get", "made": "make",
	"took": "take", "taken": "take", "came": "come", "saw": "see",
	"seen": "see", "knew": "know", "known": "know", "thought": "think",
	"told": "tell", "gave": "give", "given": "give", "found": "find",
	"felt": "feel", "left": "leave", "bought": "buy", "ran": "run",
	"ate": "eat", "wrote": "write", "written": "write", "stood": "stand",
	"met": "meet", "paid": "pay", "heard": "hear", "held": "hold",
	"lost": "lose", "brought": "bring", "spoke": "speak", "won": "win",
	"kept": "keep", "let": "let", "children": "child", "men": "man",
	"women": "woman", "people": "person", "feet": "foot",
}

// Lemma returns a lowercase dictionary base form for word using an
// irregular lookup followed by naive suffix stripping. Precision is
// secondary: rules compare a token's surface form against its lemma to
// decide whether the token is already inflected, so all that matters is
// that inflected forms do not lemmatize to themselves.
func Lemma(word string) string {
	lw := strings.ToLower(word)
	if base, ok := irregularLemmas[lw]; ok {
		return base
	}
	switch {
	case strings.HasSuffix(lw, "ies") && len(lw) > 4:
		return lw[:len(lw)-3] + "y"
	case strings.HasSuffix(lw, "ied") && len(lw) > 4:
		return lw[:len(lw)-3] + "y"
	case strings.HasSuffix(lw, "es") && len(lw) > 3 && esStem(lw):
		return lw[:len(lw)-2]
	case strings.HasSuffix(lw, "ss") || strings.HasSuffix(lw, "us") || strings.HasSuffix(lw, "is"):
		return lw
	case strings.HasSuffix(lw, "s") && len(lw) > 2:
		return lw[:len(lw)-1]
	case strings.HasSuffix(lw, "ed") && len(lw) > 3:
		return undouble(lw[:len(lw)-2])
	case strings.HasSuffix(lw, "ing") && len(lw) > 4:
		return undouble(lw[:len(lw)-3])
	}
	return lw
}

// esStem reports whether the stem before an "es" suffix takes the long
// plural/3sg form (watches, goes, fixes).
func esStem(lw string) bool {
	stem := lw[:len(lw)-2]
	return strings.HasSuffix(stem, "s") || strings.HasSuffix(stem, "x") ||
		strings.HasSuffix(stem, "z") || strings.HasSuffix(stem, "o") ||
		strings.HasSuffix(stem, "ch") || strings.HasSuffix(stem, "sh")
}

// undouble collapses a doubled final consonant left behind by suffix
// stripping (stopped -> stopp -> stop).
func undouble(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && stem[n-1] != 's' && stem[n-1] != 'l' {
		return stem[:n-1]
	}
	return stem
}

func isVowel(c byte) bool {
	return c == 'a' || c == 'e' || c == 'i' || c == 'o' || c == 'u'
}
