// Package wordle computes feedback signatures for guesses against a fixed
// solution, indexes words by signature, and answers pattern queries over that
// index.
package wordle

import (
	"strings"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
)

// Clue is the feedback for one letter of a guess.
type Clue uint8

const (
	// Gray: the letter is absent, once earlier copies have used up the
	// solution's supply of it.
	Gray Clue = iota
	// Yellow: the letter is present at another position.
	Yellow
	// Green: the letter is at this position.
	Green
)

func (c Clue) String() string {
	switch c {
	case Gray:
		return "X"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	default:
		return "!"
	}
}

// Signature is the per-position feedback for a whole guess.
type Signature []Clue

// String renders the signature as one of G, Y or X per position.  The
// rendering is also the key under which an Index stores the signature.
func (s Signature) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		b.WriteString(c.String())
	}
	return b.String()
}

// Won reports whether every clue is green.
func (s Signature) Won() bool {
	for _, c := range s {
		if c != Green {
			return false
		}
	}
	return len(s) > 0
}

// letterCounts holds how many copies of each byte remain unclaimed in the
// solution.
type letterCounts [256]int

// Score returns the feedback signature for guess against solution.
//
// Greens are assigned first and claim their solution letter. The remaining
// positions are then scanned left to right: a letter is yellow while unclaimed
// copies of it are left in the solution, and gray once they run out. So a
// letter never gets more greens plus yellows than the solution has copies.
func Score(guess, solution string) (Signature, error) {
	if len(guess) != len(solution) {
		return nil, perrors.LengthMismatch("guess "+guess, len(guess), len(solution))
	}
	return score(guess, solution), nil
}

// score assumes len(guess) == len(solution).
func score(guess, solution string) Signature {
	result := make(Signature, len(solution))

	var remaining letterCounts
	for i := 0; i < len(solution); i++ {
		if guess[i] == solution[i] {
			result[i] = Green
		} else {
			remaining[solution[i]]++
		}
	}

	for i := 0; i < len(guess); i++ {
		if result[i] == Green {
			continue
		}
		c := guess[i]
		if remaining[c] > 0 {
			result[i] = Yellow
			remaining[c]--
		}
	}

	return result
}
