// internal/words/words.go
//
// Dictionary loading for the solver and simulator.
//
// A vocabulary is one word per line, lowercased, filtered to exactly
// the requested length and pure a-z content, deduplicated, and sorted.
// The sort matters: the solver breaks ranking ties by vocabulary
// order, so loading must be deterministic.
//
// Sources, in order of preference:
//  1. An explicit file path (typically from the WORDS_FILE env var).
//  2. The embedded default list, so every binary runs with no setup.

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// EnvFile is the environment variable naming the dictionary file.
const EnvFile = "WORDS_FILE"

// Load reads a vocabulary of wordLen-letter words from path.
func Load(path string, wordLen int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ws, err := Read(f, wordLen)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ws, nil
}

// Default returns the embedded vocabulary filtered to wordLen.
func Default(wordLen int) ([]string, error) {
	return Read(strings.NewReader(embeddedWords), wordLen)
}

// FromEnv loads the file named by EnvFile when set, otherwise the
// embedded default list.
func FromEnv(wordLen int) ([]string, error) {
	if path := os.Getenv(EnvFile); path != "" {
		return Load(path, wordLen)
	}
	return Default(wordLen)
}

// Read scans newline-delimited words from r, keeping only valid
// wordLen-letter alphabetic entries, deduplicated and sorted.
func Read(r io.Reader, wordLen int) ([]string, error) {
	if wordLen <= 0 {
		return nil, fmt.Errorf("words: word length must be positive, got %d", wordLen)
	}
	seen := make(map[string]struct{})
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) != wordLen || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("words: no %d-letter words found", wordLen)
	}
	sort.Strings(out)
	return out, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
