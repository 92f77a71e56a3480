package wordle

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
)

// Index groups words by the signature they produce against a solution.
// It is read-only once built.
type Index struct {
	solution string
	buckets  map[string][]string
	words    int
}

// NewIndex scores every word against solution and buckets it by signature.
// Each bucket keeps words in the order they were supplied.
func NewIndex(words []string, solution string) (*Index, error) {
	buckets, err := bucket(context.Background(), words, solution)
	if err != nil {
		return nil, err
	}
	return &Index{solution: solution, buckets: buckets, words: len(words)}, nil
}

// NewIndexParallel builds the same index as NewIndex, splitting words into
// contiguous shards scored by up to workers goroutines. Shards are merged in
// order, so buckets keep input order.
func NewIndexParallel(ctx context.Context, words []string, solution string, workers int) (*Index, error) {
	if workers <= 1 || len(words) < 2*workers {
		return NewIndex(words, solution)
	}

	size := (len(words) + workers - 1) / workers
	shards := make([]map[string][]string, workers)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		lo := i * size
		if lo >= len(words) {
			break
		}
		hi := min(lo+size, len(words))
		g.Go(func() error {
			part, err := bucket(ctx, words[lo:hi], solution)
			if err != nil {
				return err
			}
			shards[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buckets := make(map[string][]string)
	for _, part := range shards {
		for key, ws := range part {
			buckets[key] = append(buckets[key], ws...)
		}
	}
	return &Index{solution: solution, buckets: buckets, words: len(words)}, nil
}

func bucket(ctx context.Context, words []string, solution string) (map[string][]string, error) {
	buckets := make(map[string][]string)
	for i, w := range words {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if len(w) != len(solution) {
			return nil, perrors.LengthMismatch("word "+w, len(w), len(solution))
		}
		key := score(w, solution).String()
		buckets[key] = append(buckets[key], w)
	}
	return buckets, nil
}

// Lookup returns the words that produce sig, or nil if none do.
func (idx *Index) Lookup(sig Signature) []string {
	return idx.buckets[sig.String()]
}

// Solution returns the word the index was scored against.
func (idx *Index) Solution() string { return idx.solution }

// WordLength is the length of every indexed word.
func (idx *Index) WordLength() int { return len(idx.solution) }

// Len returns the number of indexed words.
func (idx *Index) Len() int { return idx.words }

// Signatures returns every signature produced by at least one word, sorted
// by rendering.
func (idx *Index) Signatures() []Signature {
	keys := idx.keys()
	sigs := make([]Signature, len(keys))
	for i, k := range keys {
		sig, _ := parseSignature(k)
		sigs[i] = sig
	}
	return sigs
}

func (idx *Index) keys() []string {
	keys := make([]string, 0, len(idx.buckets))
	for k := range idx.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseSignature inverts Signature.String.
func parseSignature(s string) (Signature, bool) {
	sig := make(Signature, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G':
			sig[i] = Green
		case 'Y':
			sig[i] = Yellow
		case 'X':
			sig[i] = Gray
		default:
			return nil, false
		}
	}
	return sig, true
}
