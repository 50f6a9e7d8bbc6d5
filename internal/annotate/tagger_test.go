package annotate

import (
	"strings"
	"testing"
)

func TestAnnotateSubjectVerb(t *testing.T) {
	tg := NewTagger()
	ann, err := tg.Annotate("He go to market.")
	if err != nil {
		t.Fatal(err)
	}
	if len(ann.Tokens) != 5 {
		t.Fatalf("got %d tokens: %+v", len(ann.Tokens), ann.Tokens)
	}
	he, gov := ann.Tokens[0], ann.Tokens[1]
	if he.POS != Pronoun {
		t.Errorf("He tagged %s, want %s", he.POS, Pronoun)
	}
	if gov.POS != Verb {
		t.Errorf("go tagged %s, want %s", gov.POS, Verb)
	}
	if he.Dep != DepSubject || he.Head != 1 {
		t.Errorf("He dep=%q head=%d, want nsubj -> 1", he.Dep, he.Head)
	}
	if gov.Lemma != "go" {
		t.Errorf("go lemma %q, want go", gov.Lemma)
	}
}

func TestAnnotateCopulaNotVerb(t *testing.T) {
	tg := NewTagger()
	ann, err := tg.Annotate("There is a cat.")
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range ann.Tokens {
		if strings.EqualFold(tok.Text, "is") && tok.POS == Verb {
			t.Error("copula tagged as main verb")
		}
	}
}

func TestAnnotateDeterminerForcesNoun(t *testing.T) {
	tg := NewTagger()
	ann, err := tg.Annotate("the running water")
	if err != nil {
		t.Fatal(err)
	}
	if ann.Tokens[1].POS != Noun {
		t.Errorf("running after determiner tagged %s, want %s", ann.Tokens[1].POS, Noun)
	}
}

func TestAnnotateSentenceBoundaries(t *testing.T) {
	tg := NewTagger()
	ann, err := tg.Annotate("I walk. You run!")
	if err != nil {
		t.Fatal(err)
	}
	if len(ann.Sentences) != 2 {
		t.Fatalf("got %d sentences, want 2: %+v", len(ann.Sentences), ann.Sentences)
	}
	if ann.Sentences[0].End != 3 || ann.Sentences[1].Start != 3 {
		t.Errorf("unexpected spans %+v", ann.Sentences)
	}
}

func TestAnnotateInvalidUTF8(t *testing.T) {
	tg := NewTagger()
	if _, err := tg.Annotate("caf\xff"); err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestLemma(t *testing.T) {
	cases := map[string]string{
		"go":      "go",
		"goes":    "go",
		"went":    "go",
		"walked":  "walk",
		"stopped": "stop",
		"tries":   "try",
		"cats":    "cat",
		"watches": "watch",
		"running": "run",
		"miss":    "miss",
		"Wanted":  "want",
	}
	for word, want := range cases {
		if got := Lemma(word); got != want {
			t.Errorf("Lemma(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestTokenIsAlphabetic(t *testing.T) {
	if (Token{Text: "they're"}).IsAlphabetic() {
		t.Error("contractions should not count as alphabetic")
	}
	if !(Token{Text: "cat"}).IsAlphabetic() {
		t.Error("cat should count as alphabetic")
	}
	if (Token{Text: "b4"}).IsAlphabetic() {
		t.Error("b4 should not count as alphabetic")
	}
	if (Token{Text: "."}).IsAlphabetic() {
		t.Error("punctuation should not count as alphabetic")
	}
}
