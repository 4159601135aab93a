// Package dictionary provides the words the padded-batch generator fills fixtures with.
package dictionary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"time"
)

var (
	ErrDictionaryEmpty = errors.New("the dictionary contains no words")
	ErrWordEmpty       = errors.New("the dictionary contains an empty word")
)

// Dictionary is the source of words for filler entries.
type Dictionary interface {
	// RandomWord returns a word chosen uniformly from the dictionary. The word is never empty.
	RandomWord() string
}

// WordList is a Dictionary backed by an in-memory list of words.
//
// Instances of WordList are NOT safe to use concurrently, as they share a single random source.
type WordList struct {
	words  []string
	random *rand.Rand
}

// WordList implements Dictionary.
var _ Dictionary = (*WordList)(nil)

// NewWordList creates a word list choosing words with a random source seeded with seed. The same words and the same
// seed always result in the same sequence of words.
func NewWordList(words []string, seed uint64) (*WordList, error) {
	if len(words) == 0 {
		return nil, ErrDictionaryEmpty
	}
	if slices.Contains(words, "") {
		return nil, ErrWordEmpty
	}
	return &WordList{
		words:  slices.Clone(words),
		random: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // Fixture content, not security.
	}, nil
}

// RandomSeed returns a seed derived from the current time for callers which do not need reproducible fixtures.
func RandomSeed() uint64 {
	return uint64(time.Now().UnixNano()) //nolint:gosec // Any bit pattern is a valid seed.
}

// Len returns the number of words in the list.
func (w *WordList) Len() int {
	return len(w.words)
}

// RandomWord returns a word chosen uniformly from the list.
func (w *WordList) RandomWord() string {
	return w.words[w.random.IntN(len(w.words))]
}

// LoadDictionary reads the words from the file at the given path. Three formats are supported:
//
//   - a JSON object whose keys are the words, like the widely used words_dictionary.json,
//   - a JSON array of strings,
//   - plain text with one word per line. Blank lines are skipped.
//
// The words are returned sorted and free of duplicates, so that a seeded WordList picks the same words regardless of
// the order in the file.
func LoadDictionary(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // The dictionary path is chosen by the user.
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %q: %w", filePath, err)
	}

	words, err := parseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("parsing dictionary %q: %w", filePath, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("parsing dictionary %q: %w", filePath, ErrDictionaryEmpty)
	}
	return words, nil
}

func parseDictionary(data []byte) ([]string, error) {
	var words []string
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		var object map[string]any
		if err := json.Unmarshal(trimmed, &object); err != nil {
			return nil, err
		}
		for word := range object {
			words = append(words, word)
		}
	case bytes.HasPrefix(trimmed, []byte("[")):
		if err := json.Unmarshal(trimmed, &words); err != nil {
			return nil, err
		}
	default:
		scanner := bufio.NewScanner(bytes.NewReader(trimmed))
		for scanner.Scan() {
			words = append(words, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	result := make([]string, 0, len(words))
	for _, word := range words {
		if word = strings.TrimSpace(word); word != "" {
			result = append(result, word)
		}
	}
	slices.Sort(result)
	return slices.Compact(result), nil
}
