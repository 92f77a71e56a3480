package wordle

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
	"github.com/benjaminjkraft/wordle-patterns/internal/wordlist"
)

func mustIndex(t *testing.T, words []string, solution string) *Index {
	t.Helper()
	idx, err := NewIndex(words, solution)
	require.NoError(t, err)
	return idx
}

func mustResolve(t *testing.T, pattern string, idx *Index) []string {
	t.Helper()
	p, err := ParsePattern(pattern)
	require.NoError(t, err)
	matches, err := Resolve(p, idx)
	require.NoError(t, err)
	return matches
}

func TestResolve(t *testing.T) {
	idx := mustIndex(t, []string{"apple", "angle", "ample"}, "apple")

	assert.Equal(t, []string{"apple"}, mustResolve(t, "GGGGG", idx))
	assert.Equal(t, []string{"angle"}, mustResolve(t, "G*XGG", idx))
	assert.Equal(t, []string{"apple", "ample", "angle"}, mustResolve(t, "G**GG", idx))
}

func TestResolve_NoMatches(t *testing.T) {
	idx := mustIndex(t, []string{"apple", "angle"}, "apple")

	assert.Empty(t, mustResolve(t, "XXXXX", idx))
}

func TestResolve_FollowsExpansionOrder(t *testing.T) {
	// GXGGG sorts after GGGGG in expansion, whatever the input order.
	idx := mustIndex(t, []string{"ample", "angle", "apple"}, "apple")

	assert.Equal(t, []string{"apple", "ample"}, mustResolve(t, "G*?GG", idx))
}

func TestResolve_LengthMismatch(t *testing.T) {
	idx := mustIndex(t, []string{"apple"}, "apple")

	for _, pattern := range []string{"GGGG", "GGGGGG", ""} {
		p, err := ParsePattern(pattern)
		require.NoError(t, err)

		_, err = Resolve(p, idx)
		require.Error(t, err, pattern)
		assert.Equal(t, perrors.ErrCodeLengthMismatch, perrors.GetCode(err))
	}
}

func TestRun(t *testing.T) {
	idx := mustIndex(t, []string{"apple", "angle", "ample"}, "apple")
	block := "\n  ggggg  \n G!XXX\nXXXXX\n\nGGGG\nG**GG\n"

	report, err := Run(block, idx, RunOptions{})
	require.NoError(t, err)

	require.Len(t, report.Results, 5)
	assert.False(t, report.Possible)
	assert.Equal(t, 2, report.Rejected)

	assert.Equal(t, "ggggg", report.Results[0].Line)
	assert.Equal(t, "GGGGG", report.Results[0].Pattern.String())
	assert.Equal(t, []string{"apple"}, report.Results[0].Matches)
	assert.True(t, report.Results[0].Possible())

	assert.Equal(t, "G!XXX", report.Results[1].Line)
	assert.Nil(t, report.Results[1].Pattern)
	assert.Equal(t, perrors.ErrCodeInvalidSymbol, perrors.GetCode(report.Results[1].Err))
	assert.False(t, report.Results[1].Possible())

	assert.NoError(t, report.Results[2].Err)
	assert.Empty(t, report.Results[2].Matches)
	assert.False(t, report.Results[2].Possible())

	assert.Equal(t, perrors.ErrCodeLengthMismatch, perrors.GetCode(report.Results[3].Err))

	assert.Equal(t, []string{"apple", "ample", "angle"}, report.Results[4].Matches)
}

func TestRun_AllPossible(t *testing.T) {
	idx := mustIndex(t, []string{"apple", "angle"}, "apple")

	report, err := Run("GGGGG\nG??GG", idx, RunOptions{})
	require.NoError(t, err)
	assert.True(t, report.Possible)
	assert.Zero(t, report.Rejected)
}

func TestRun_Strict(t *testing.T) {
	idx := mustIndex(t, []string{"apple"}, "apple")

	report, err := Run("GGGGG\n\nGGZGG\nXXXXX", idx, RunOptions{Strict: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, perrors.ErrCodeInvalidSymbol, perrors.GetCode(err))
	assert.Len(t, report.Results, 1)
	assert.Equal(t, 1, report.Rejected)
}

func TestRun_WrongLengthWordsNeverMatch(t *testing.T) {
	// Given: a word list mixing five-letter words with other lengths
	words, err := wordlist.Parse(strings.NewReader("apple\napples\nangle\napp\nample\n"), 5)
	require.NoError(t, err)
	idx := mustIndex(t, words, "apple")

	// When: asking for every signature
	report, err := Run("*****", idx, RunOptions{})
	require.NoError(t, err)

	// Then: only the five-letter words come back
	require.Len(t, report.Results, 1)
	assert.ElementsMatch(t, []string{"apple", "angle", "ample"}, report.Results[0].Matches)
	assert.NotContains(t, report.Results[0].Matches, "apples")
	assert.NotContains(t, report.Results[0].Matches, "app")
}

func TestRun_RepeatedLinesReuseExpansion(t *testing.T) {
	// Given: a block that repeats a pattern in different case
	idx := mustIndex(t, []string{"apple", "angle", "ample"}, "apple")
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// When: running it
	report, err := Run("G**GG\ng**gg\n", idx, RunOptions{Logger: logger})
	require.NoError(t, err)

	// Then: both lines give the same matches and the second hits the cache
	require.Len(t, report.Results, 2)
	assert.Equal(t, report.Results[0].Matches, report.Results[1].Matches)
	assert.Contains(t, buf.String(), "cached=false")
	assert.Contains(t, buf.String(), "cached=true")
}
