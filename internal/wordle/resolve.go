package wordle

import (
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
)

// Resolve returns every indexed word whose signature matches p.
//
// Words are grouped by signature in the order Expand produces them, and in
// index order within a signature. A word has exactly one signature, so no
// word appears twice. An empty result is not an error.
func Resolve(p Pattern, idx *Index) ([]string, error) {
	matches, _, err := resolve(p, idx, nil)
	return matches, err
}

// expansionCacheSize bounds the expansions Run keeps; pattern blocks often
// repeat lines.
const expansionCacheSize = 128

type expansionCache = lru.Cache[string, []Signature]

// resolve is Resolve with an optional expansion cache. It also reports
// whether the expansion came from the cache.
func resolve(p Pattern, idx *Index, cache *expansionCache) ([]string, bool, error) {
	if len(p) != idx.WordLength() {
		return nil, false, perrors.LengthMismatch("pattern "+p.String(), len(p), idx.WordLength())
	}

	var sigs []Signature
	hit := false
	if cache != nil {
		sigs, hit = cache.Get(p.String())
	}
	if !hit {
		sigs = p.Expand()
		if cache != nil {
			cache.Add(p.String(), sigs)
		}
	}

	var matches []string
	for _, sig := range sigs {
		matches = append(matches, idx.Lookup(sig)...)
	}
	return matches, hit, nil
}

// Result is the outcome of one line of a pattern block.
type Result struct {
	// Line is the trimmed input line.
	Line string
	// Pattern is nil if the line failed to parse.
	Pattern Pattern
	Matches []string
	// Err is set if the line was rejected.
	Err error
}

// Possible reports whether the line was accepted and matched some word.
func (r Result) Possible() bool {
	return r.Err == nil && len(r.Matches) > 0
}

// Report collects the results of a pattern block.
type Report struct {
	Results []Result
	// Possible is false if some accepted pattern had no matches.
	Possible bool
	// Rejected counts lines that were not valid patterns.
	Rejected int
}

// RunOptions configures Run.
type RunOptions struct {
	// Strict stops at the first rejected line and returns its error.
	Strict bool
	Logger *slog.Logger
}

// Run resolves each non-blank line of block against idx, in order.
//
// A line that does not parse, or whose length differs from the solution's,
// is recorded as rejected and the remaining lines are still resolved. With
// opts.Strict the first such line ends the run instead.
func Run(block string, idx *Index, opts RunOptions) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := lru.New[string, []Signature](expansionCacheSize)
	if err != nil {
		return Report{}, perrors.Wrap(perrors.ErrCodeInternal, err)
	}

	report := Report{Possible: true}
	for n, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		res := Result{Line: line}
		cached := false
		p, err := ParsePattern(line)
		if err == nil {
			res.Pattern = p
			res.Matches, cached, err = resolve(p, idx, cache)
		}
		if err != nil {
			res.Err = err
			report.Rejected++
			logger.Warn("pattern_rejected",
				slog.Int("line", n+1),
				slog.String("pattern", line),
				slog.String("error_code", perrors.GetCode(err)))
			if opts.Strict {
				return report, fmt.Errorf("line %d: %w", n+1, err)
			}
			report.Results = append(report.Results, res)
			continue
		}

		logger.Debug("pattern_resolved",
			slog.String("pattern", p.String()),
			slog.Int("signatures", p.Count()),
			slog.Bool("cached", cached),
			slog.Int("matches", len(res.Matches)))
		if len(res.Matches) == 0 {
			report.Possible = false
		}
		report.Results = append(report.Results, res)
	}

	return report, nil
}
