package wordle

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Stats summarizes how an index spreads words over signatures.
type Stats struct {
	Solution string
	// SolutionListed is set if some word scores all green, which only the
	// solution itself can.
	SolutionListed bool
	Words          int
	Signatures     int
	Metrics        []MetricResult
}

// MetricResult is the extreme value of one metric and the signatures that
// reach it.
type MetricResult struct {
	Name       string
	Value      string
	Signatures []string
}

type metric interface {
	run(idx *Index) MetricResult
}

type metricImpl[T constraints.Ordered] struct {
	name string
	// score rates a bucket; run reports the highest, or the lowest if
	// lowest is set.
	score  func(words []string) T
	lowest bool
}

func (m *metricImpl[T]) run(idx *Index) MetricResult {
	var best T
	var bestSigs []string
	for _, key := range idx.keys() {
		s := m.score(idx.buckets[key])
		switch {
		case bestSigs == nil || (m.lowest && s < best) || (!m.lowest && best < s):
			bestSigs = []string{key}
			best = s
		case best == s:
			bestSigs = append(bestSigs, key)
		}
	}
	return MetricResult{Name: m.name, Value: fmt.Sprint(best), Signatures: bestSigs}
}

func metrics(total int) []metric {
	return []metric{
		&metricImpl[int]{name: "largest bucket", score: func(words []string) int {
			return len(words)
		}},
		&metricImpl[int]{name: "smallest bucket", lowest: true, score: func(words []string) int {
			return len(words)
		}},
		&metricImpl[float64]{name: "largest share %", score: func(words []string) float64 {
			return math.Round(10000*float64(len(words))/float64(total)) / 100
		}},
	}
}

// Stats computes bucket statistics for the index.
func (idx *Index) Stats() Stats {
	st := Stats{Solution: idx.Solution(), Words: idx.words, Signatures: len(idx.buckets)}
	if len(idx.buckets) == 0 {
		return st
	}
	for _, sig := range idx.Signatures() {
		if sig.Won() {
			st.SolutionListed = true
			break
		}
	}
	for _, m := range metrics(idx.words) {
		st.Metrics = append(st.Metrics, m.run(idx))
	}
	return st
}
