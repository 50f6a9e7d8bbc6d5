package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Vocabulary is a reference set of known-correct lowercase words with
// corpus frequencies. It is populated during startup and read-only
// afterwards; concurrent reads need no synchronization. An empty
// Vocabulary is valid and simply yields no fuzzy candidates.
type Vocabulary struct {
	words map[string]int
	freq  map[string]float64
	order []string
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		words: make(map[string]int),
		freq:  make(map[string]float64),
	}
}

// Add registers a lowercase word with its corpus frequency. Repeated
// adds keep the first enumeration position and overwrite the frequency.
func (v *Vocabulary) Add(word string, freq float64) {
	lw := strings.ToLower(word)
	if _, ok := v.words[lw]; !ok {
		v.words[lw] = len(v.order)
		v.order = append(v.order, lw)
	}
	v.freq[lw] = freq
}

func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.words[strings.ToLower(word)]
	return ok
}

func (v *Vocabulary) Frequency(word string) float64 {
	return v.freq[strings.ToLower(word)]
}

func (v *Vocabulary) Len() int { return len(v.order) }

// Words returns the vocabulary in enumeration order. Callers must not
// modify the returned slice.
func (v *Vocabulary) Words() []string { return v.order }

// Closest returns up to n vocabulary entries with Similarity(word, entry)
// at or above cutoff, sorted by descending similarity. Ties break on
// smaller edit distance, then on earlier enumeration position (the sort
// is stable over enumeration order).
func (v *Vocabulary) Closest(word string, n int, cutoff float64) []string {
	if n <= 0 || len(v.order) == 0 {
		return nil
	}
	lw := strings.ToLower(word)
	type scored struct {
		term string
		sim  float64
	}
	var hits []scored
	for _, w := range v.order {
		if s := Similarity(lw, w); s >= cutoff {
			hits = append(hits, scored{term: w, sim: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].sim != hits[j].sim {
			return hits[i].sim > hits[j].sim
		}
		return EditDistance(lw, hits[i].term) < EditDistance(lw, hits[j].term)
	})
	if len(hits) == 0 {
		return nil
	}
	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.term
	}
	return out
}

// LoadVocabulary reads a word-frequency file ("word count" per line,
// count optional) through a memory mapping and returns the populated
// vocabulary. Blank lines and malformed counts are skipped.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dictionary: %w", err)
	}
	defer m.Unmap()

	v := NewVocabulary()
	if err := v.parse(bytes.NewReader(m)); err != nil {
		return nil, err
	}
	return v, nil
}

//go:embed data/english.txt
var builtinWords []byte

// BuiltinVocabulary returns the embedded common-word list, for
// deployments without an external dictionary file.
func BuiltinVocabulary() *Vocabulary {
	v := NewVocabulary()
	// the embedded list is well formed; a parse error here is impossible
	_ = v.parse(bytes.NewReader(builtinWords))
	return v
}

func (v *Vocabulary) parse(r *bytes.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		word := strings.ToLower(parts[0])
		count := 1.0
		if len(parts) >= 2 {
			c, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				continue
			}
			count = c
		}
		v.Add(word, count)
	}
	return s.Err()
}
