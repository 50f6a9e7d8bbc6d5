package lexicon

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abc", "xyz", 0.0},
		{"teh", "the", 2.0 * 2.0 / 6.0},   // "t","h" run-matched around the swap
		{"helo", "hello", 2.0 * 4.0 / 9.0},
		{"mart", "market", 2.0 * 4.0 / 10.0},
	}
	for _, c := range cases {
		got := Similarity(c.a, c.b)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{{"receive", "recieve"}, {"calendar", "calender"}, {"a", "ab"}}
	for _, p := range pairs {
		if Similarity(p[0], p[1]) != Similarity(p[1], p[0]) {
			t.Errorf("Similarity not symmetric for %q/%q", p[0], p[1])
		}
	}
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"teh", "the", 1}, // adjacent transposition counts once
		{"recieve", "receive", 1},
		{"kitten", "sitting", 3},
	}
	for _, c := range cases {
		if got := EditDistance(c.a, c.b); got != c.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestVocabularyClosest(t *testing.T) {
	v := NewVocabulary()
	for _, w := range []string{"hello", "help", "hero", "world"} {
		v.Add(w, 1)
	}

	got := v.Closest("helo", 3, 0.5)
	if len(got) == 0 || got[0] != "hello" {
		t.Fatalf("Closest(helo) = %v, want hello first", got)
	}

	if got := v.Closest("zzzz", 3, 0.75); got != nil {
		t.Errorf("Closest(zzzz) = %v, want none", got)
	}

	// empty vocabulary degrades to no candidates
	empty := NewVocabulary()
	if got := empty.Closest("hello", 3, 0.1); got != nil {
		t.Errorf("empty vocabulary returned %v", got)
	}
}

func TestVocabularyClosestTieBreak(t *testing.T) {
	// both candidates have the same similarity to the query; the one
	// enumerated first must win when edit distances also match
	v := NewVocabulary()
	v.Add("abcx", 1)
	v.Add("abcy", 1)
	got := v.Closest("abcz", 2, 0.5)
	if len(got) != 2 || got[0] != "abcx" {
		t.Fatalf("tie-break order = %v, want [abcx abcy]", got)
	}
}

func TestLoadVocabulary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := "# comment\nhello 100\nworld 50\n\nbroken notanumber\nbare\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary: %v", err)
	}
	if !v.Contains("hello") || !v.Contains("world") || !v.Contains("bare") {
		t.Errorf("missing expected words, have %v", v.Words())
	}
	if v.Contains("broken") {
		t.Error("malformed line was not skipped")
	}
	if v.Frequency("hello") != 100 {
		t.Errorf("Frequency(hello) = %v, want 100", v.Frequency("hello"))
	}
	if v.Frequency("bare") != 1 {
		t.Errorf("Frequency(bare) = %v, want 1 default", v.Frequency("bare"))
	}
}

func TestBuiltinVocabulary(t *testing.T) {
	v := BuiltinVocabulary()
	if v.Len() == 0 {
		t.Fatal("builtin vocabulary is empty")
	}
	for _, w := range []string{"the", "market", "yesterday"} {
		if !v.Contains(w) {
			t.Errorf("builtin vocabulary missing %q", w)
		}
	}
}
