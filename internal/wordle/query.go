package wordle

import (
	"strings"
	"unicode"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
)

// Symbol is one position of a query pattern. The first three symbols stand
// for a single clue; AnyCorrect and Wildcard stand for several.
type Symbol uint8

const (
	SymbolGray Symbol = iota
	SymbolYellow
	SymbolGreen
	// SymbolAnyCorrect matches green or yellow.
	SymbolAnyCorrect
	// SymbolWildcard matches any clue.
	SymbolWildcard
)

// symbolClues lists, per symbol, the clues it admits in expansion order.
var symbolClues = [...][]Clue{
	SymbolGray:       {Gray},
	SymbolYellow:     {Yellow},
	SymbolGreen:      {Green},
	SymbolAnyCorrect: {Green, Yellow},
	SymbolWildcard:   {Green, Yellow, Gray},
}

// ParseSymbol maps a pattern character to its symbol, ignoring case.
func ParseSymbol(r rune) (Symbol, bool) {
	switch unicode.ToUpper(r) {
	case 'G':
		return SymbolGreen, true
	case 'Y':
		return SymbolYellow, true
	case 'X':
		return SymbolGray, true
	case '?':
		return SymbolAnyCorrect, true
	case '*':
		return SymbolWildcard, true
	default:
		return 0, false
	}
}

// Clues returns the clues s admits, in expansion order.
func (s Symbol) Clues() []Clue {
	if int(s) >= len(symbolClues) {
		return nil
	}
	return symbolClues[s]
}

func (s Symbol) String() string {
	switch s {
	case SymbolGreen:
		return "G"
	case SymbolYellow:
		return "Y"
	case SymbolGray:
		return "X"
	case SymbolAnyCorrect:
		return "?"
	case SymbolWildcard:
		return "*"
	default:
		return "!"
	}
}

// Pattern is a query over signatures, one symbol per position.
type Pattern []Symbol

// ParsePattern parses a line such as "G?X*y". It does not trim.
func ParsePattern(line string) (Pattern, error) {
	p := make(Pattern, 0, len(line))
	for i, r := range []rune(line) {
		s, ok := ParseSymbol(r)
		if !ok {
			return nil, perrors.InvalidSymbol(r, i)
		}
		p = append(p, s)
	}
	return p, nil
}

// String renders p in its canonical upper-case form.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Count returns how many signatures p denotes, without expanding it.
func (p Pattern) Count() int {
	n := 1
	for _, s := range p {
		n *= len(s.Clues())
	}
	return n
}

// Expand returns every signature p denotes.
//
// It builds a Cartesian product one position at a time: starting from a
// single empty signature, each generation extends every partial signature by
// each clue the next symbol admits. Signatures come out in a stable order
// (green before yellow before gray, leftmost position varying slowest) and
// are all distinct.
func (p Pattern) Expand() []Signature {
	results := []Signature{make(Signature, 0, len(p))}

	for _, sym := range p {
		clues := sym.Clues()
		next := make([]Signature, 0, len(results)*len(clues))
		for _, partial := range results {
			for _, c := range clues {
				sig := make(Signature, len(partial), len(p))
				copy(sig, partial)
				next = append(next, append(sig, c))
			}
		}
		results = next
	}

	return results
}
