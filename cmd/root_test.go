package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
)

// execute runs the CLI in a clean working directory and environment.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, v := range []string{
		"WORDLE_SOLUTION", "WORDLE_WORDLIST", "WORDLE_PATTERNS", "WORDLE_STRICT",
		"WORDLE_WORKERS", "WORDLE_FORMAT", "WORDLE_COLOR", "WORDLE_LOG_LEVEL", "WORDLE_LOG_FILE",
	} {
		t.Setenv(v, "")
	}
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func wordList(t *testing.T) string {
	return writeTemp(t, "words.txt", "apple\nAngle\nample\namble\npear\napples\n")
}

func TestRoot_ResolvesPatterns(t *testing.T) {
	// Given: a small word list and two patterns as arguments
	words := wordList(t)

	// When: running the default command
	out, _, err := execute(t, "--solution", "apple", "--wordlist", words, "GGGGG", "xxxxx")

	// Then: each pattern is reported and the summary notes the impossible one
	require.NoError(t, err)
	want := `Possible solutions for pattern GGGGG:
  apple
No possible solutions found for pattern XXXXX.
Some patterns have no possible solutions.
`
	assert.Equal(t, want, out)
}

func TestRoot_AllFlag(t *testing.T) {
	out, _, err := execute(t, "-s", "apple", "-w", wordList(t), "--all", "G**GG")

	require.NoError(t, err)
	assert.Equal(t, "Possible solutions for pattern G**GG:\n  apple\n  ample\n  angle\n  amble\n", out)
}

func TestRoot_ParallelIndexGivesSameReport(t *testing.T) {
	words := wordList(t)

	seq, _, err := execute(t, "-s", "apple", "-w", words, "--all", "*****")
	require.NoError(t, err)
	par, _, err := execute(t, "-s", "apple", "-w", words, "--all", "-j", "2", "*****")
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestRoot_InvalidLineIsReportedAndSkipped(t *testing.T) {
	out, stderr, err := execute(t, "-s", "apple", "-w", wordList(t),
		"-p", "GGGGG", "-p", "GGZGG", "-p", "GGGG", "-p", "GXXGG")

	require.Error(t, err)
	assert.Equal(t, perrors.ErrCodePatternsRejected, perrors.GetCode(err))
	assert.Contains(t, err.Error(), "2 pattern lines rejected")

	want := `Possible solutions for pattern GGGGG:
  apple
Invalid pattern "GGZGG": invalid pattern character 'Z' at position 3
Invalid pattern "GGGG": pattern GGGG has length 4, want 5
Possible solutions for pattern GXXGG:
  angle
  (and 1 other)
`
	assert.Equal(t, want, out)
	assert.Contains(t, stderr, "pattern_rejected")
}

func TestRoot_StrictAbortsOnInvalidLine(t *testing.T) {
	out, _, err := execute(t, "-s", "apple", "-w", wordList(t), "--strict", "GGGGG", "GGZGG", "XXXXX")

	require.Error(t, err)
	assert.Equal(t, perrors.ErrCodeInvalidSymbol, perrors.GetCode(err))
	assert.Contains(t, err.Error(), "line 2")
	assert.Empty(t, out)
}

func TestRoot_MissingWordList(t *testing.T) {
	_, _, err := execute(t, "-s", "apple", "-w", filepath.Join(t.TempDir(), "missing.txt"), "GGGGG")

	require.Error(t, err)
	assert.Equal(t, perrors.ErrCodeSourceUnavailable, perrors.GetCode(err))
	assert.True(t, perrors.IsFatal(err))
}

func TestRoot_NoUsableWords(t *testing.T) {
	words := writeTemp(t, "words.txt", "cat\ndog\nab-cd\n")

	_, _, err := execute(t, "-s", "apple", "-w", words, "GGGGG")

	require.Error(t, err)
	assert.Equal(t, perrors.ErrCodeEmptyCandidateSet, perrors.GetCode(err))
}

func TestRoot_JSON(t *testing.T) {
	out, _, err := execute(t, "-s", "apple", "-w", wordList(t), "-f", "json", "G**GG", "XXXXX")
	require.NoError(t, err)

	var doc struct {
		Possible bool `json:"possible"`
		Results  []struct {
			Pattern string   `json:"pattern"`
			Count   int      `json:"count"`
			Matches []string `json:"matches"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.False(t, doc.Possible)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "G**GG", doc.Results[0].Pattern)
	assert.Equal(t, 4, doc.Results[0].Count)
	assert.Equal(t, []string{"apple", "ample", "angle", "amble"}, doc.Results[0].Matches)
	assert.Empty(t, doc.Results[1].Matches)
}

func TestRoot_ConfigFile(t *testing.T) {
	words := wordList(t)
	cfg := writeTemp(t, "cfg.yaml", `
solution: Apple
wordlist: `+words+`
patterns: |
  GGGGG

  GXGGG
`)

	out, _, err := execute(t, "--config", cfg)

	require.NoError(t, err)
	assert.Equal(t, "Possible solutions for pattern GGGGG:\n  apple\nPossible solutions for pattern GXGGG:\n  ample\n", out)
}

func TestRoot_FlagsOverrideConfigFile(t *testing.T) {
	cfg := writeTemp(t, "cfg.yaml", "solution: crane\nwordlist: /nonexistent\n")

	out, _, err := execute(t, "--config", cfg, "-s", "apple", "-w", wordList(t), "GGGGG")

	require.NoError(t, err)
	assert.Contains(t, out, "  apple\n")
}

func TestRoot_PatternsFile(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "  gxxgg \n\n")

	out, _, err := execute(t, "-s", "apple", "-w", wordList(t), "--patterns-file", patterns)

	require.NoError(t, err)
	assert.Equal(t, "Possible solutions for pattern GXXGG:\n  angle\n  (and 1 other)\n", out)
}

func TestRoot_PatternsFileMissing(t *testing.T) {
	_, _, err := execute(t, "-s", "apple", "-w", wordList(t), "--patterns-file", filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.Equal(t, perrors.ErrCodeConfigUnreadable, perrors.GetCode(err))
}

func TestRoot_PatternSourcesAreExclusive(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "GXXGG\n")

	tests := []struct {
		name string
		args []string
	}{
		{"flag and file", []string{"-p", "GGGGG", "--patterns-file", patterns}},
		{"argument and flag", []string{"-p", "GGGGG", "GXXGG"}},
		{"argument and file", []string{"--patterns-file", patterns, "GGGGG"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-s", "apple", "-w", wordList(t)}, tt.args...)
			out, _, err := execute(t, args...)

			require.Error(t, err)
			assert.Equal(t, perrors.ErrCodeConfigInvalid, perrors.GetCode(err))
			assert.Empty(t, out)
		})
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"--format", "xml"}, "output.format"},
		{"solution", []string{"--solution", "ap9le"}, "solution must contain only letters"},
		{"color", []string{"--color", "rainbow"}, "output.color"},
		{"workers", []string{"--workers", "-3"}, "workers must be gte 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append(tt.args, "GGGGG")...)

			require.Error(t, err)
			assert.Equal(t, perrors.ErrCodeConfigInvalid, perrors.GetCode(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRoot_DefaultPatternsAgainstDefaultSolution(t *testing.T) {
	words := writeTemp(t, "words.txt", "ideal\ndealt\nidler\n")

	out, _, err := execute(t, "-w", words)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Possible solutions for pattern GGGGG:\n  ideal\nSome patterns have no possible solutions.\n"), out)
}

func TestRoot_CPUProfile(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "cpu.pprof")

	_, _, err := execute(t, "--cpuprofile", profile, "-s", "abbey", "score", "kebab")
	require.NoError(t, err)

	info, err := os.Stat(profile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
