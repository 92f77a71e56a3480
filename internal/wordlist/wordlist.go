// Package wordlist reads candidate words, one per line.
package wordlist

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
)

// Load reads the word list at path and keeps the words Parse accepts.
// An unreadable file is a SourceUnavailable error; a file with no usable
// words is an EmptyCandidateSet error.
func Load(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.SourceUnavailable(path, err)
	}
	defer func() { _ = f.Close() }()

	words, err := Parse(f, length)
	if err != nil {
		return nil, perrors.SourceUnavailable(path, err)
	}
	if len(words) == 0 {
		return nil, perrors.EmptyCandidateSet(path, length)
	}
	return words, nil
}

// Parse returns the trimmed, lower-cased lines of r that are exactly length
// ASCII letters. Other lines, however long, are dropped. Repeated words are
// kept once, at their first position.
func Parse(r io.Reader, length int) ([]string, error) {
	var words []string
	seen := make(map[string]bool)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if w := strings.ToLower(strings.TrimSpace(line)); len(w) == length && isLetters(w) && !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func isLetters(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
