// Package output renders query reports for the terminal or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
	"github.com/benjaminjkraft/wordle-patterns/internal/wordle"
)

// Writer provides formatted output for the CLI.
// Errors from writing are ignored for console output.
type Writer struct {
	out      io.Writer
	useColor bool
	styles   Styles
}

// New creates a Writer. With color set, signatures and patterns are drawn
// as coloured tiles whether or not out is a terminal.
func New(out io.Writer, color bool) *Writer {
	w := &Writer{out: out, useColor: color}
	if color {
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		w.styles = DefaultStyles(r)
	}
	return w
}

func (w *Writer) paint(style lipgloss.Style, s string) string {
	if !w.useColor {
		return s
	}
	return style.Render(s)
}

func (w *Writer) clueStyle(c wordle.Clue) lipgloss.Style {
	switch c {
	case wordle.Green:
		return w.styles.Green
	case wordle.Yellow:
		return w.styles.Yellow
	default:
		return w.styles.Gray
	}
}

// Signature renders sig, one tile per clue when colour is on.
func (w *Writer) Signature(sig wordle.Signature) string {
	if !w.useColor {
		return sig.String()
	}
	var b strings.Builder
	for _, c := range sig {
		b.WriteString(w.clueStyle(c).Render(c.String()))
	}
	return b.String()
}

// Pattern renders p like Signature; ? and * get their own tile.
func (w *Writer) Pattern(p wordle.Pattern) string {
	if !w.useColor {
		return p.String()
	}
	var b strings.Builder
	for _, s := range p {
		style := w.styles.Query
		switch s {
		case wordle.SymbolGreen:
			style = w.styles.Green
		case wordle.SymbolYellow:
			style = w.styles.Yellow
		case wordle.SymbolGray:
			style = w.styles.Gray
		}
		b.WriteString(style.Render(s.String()))
	}
	return b.String()
}

// Report prints one block per line of the report, then a summary if some
// accepted pattern had no matches. With all set, every match is listed;
// otherwise the first match and a count of the rest.
func (w *Writer) Report(r wordle.Report, all bool) {
	for _, res := range r.Results {
		switch {
		case res.Err != nil:
			_, _ = fmt.Fprintln(w.out, w.paint(w.styles.Error,
				fmt.Sprintf("Invalid pattern %q: %s", res.Line, perrors.Message(res.Err))))
		case len(res.Matches) == 0:
			_, _ = fmt.Fprintf(w.out, "No possible solutions found for pattern %s.\n", w.Pattern(res.Pattern))
		default:
			_, _ = fmt.Fprintf(w.out, "%s %s:\n",
				w.paint(w.styles.Header, "Possible solutions for pattern"), w.Pattern(res.Pattern))
			if all {
				for _, m := range res.Matches {
					_, _ = fmt.Fprintf(w.out, "  %s\n", m)
				}
				continue
			}
			_, _ = fmt.Fprintf(w.out, "  %s\n", res.Matches[0])
			if rest := len(res.Matches) - 1; rest > 0 {
				_, _ = fmt.Fprintln(w.out, w.paint(w.styles.Dim, fmt.Sprintf("  (and %d %s)", rest, plural(rest, "other", "others"))))
			}
		}
	}

	if !r.Possible {
		_, _ = fmt.Fprintln(w.out, w.paint(w.styles.Warning, "Some patterns have no possible solutions."))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

type jsonReport struct {
	Possible bool         `json:"possible"`
	Rejected int          `json:"rejected"`
	Results  []jsonResult `json:"results"`
}

type jsonResult struct {
	Line    string   `json:"line"`
	Pattern string   `json:"pattern,omitempty"`
	Count   int      `json:"count"`
	Matches []string `json:"matches"`
	Error   string   `json:"error,omitempty"`
	Code    string   `json:"code,omitempty"`
}

// JSON writes the report as an indented JSON document with every match.
func (w *Writer) JSON(r wordle.Report) error {
	doc := jsonReport{
		Possible: r.Possible,
		Rejected: r.Rejected,
		Results:  make([]jsonResult, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		jr := jsonResult{
			Line:    res.Line,
			Count:   len(res.Matches),
			Matches: res.Matches,
		}
		if jr.Matches == nil {
			jr.Matches = []string{}
		}
		if res.Pattern != nil {
			jr.Pattern = res.Pattern.String()
		}
		if res.Err != nil {
			jr.Error = perrors.Message(res.Err)
			jr.Code = perrors.GetCode(res.Err)
		}
		doc.Results = append(doc.Results, jr)
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Score prints the signature of a single guess.
func (w *Writer) Score(guess string, sig wordle.Signature) {
	_, _ = fmt.Fprintf(w.out, "%s %s\n", guess, w.Signature(sig))
}

// Expansion prints the signatures p denotes, each with its bucket size.
func (w *Writer) Expansion(p wordle.Pattern, idx *wordle.Index) {
	sigs := p.Expand()
	_, _ = fmt.Fprintf(w.out, "%s %s:\n",
		w.paint(w.styles.Header, "Pattern"), w.Pattern(p))
	for _, sig := range sigs {
		line := "  " + w.Signature(sig)
		if idx != nil {
			line += fmt.Sprintf("  %d", len(idx.Lookup(sig)))
		}
		_, _ = fmt.Fprintln(w.out, line)
	}
	_, _ = fmt.Fprintln(w.out, w.paint(w.styles.Dim,
		fmt.Sprintf("%d %s", len(sigs), plural(len(sigs), "signature", "signatures"))))
}

// Stats prints index statistics.
func (w *Writer) Stats(st wordle.Stats) {
	listed := "in word list"
	if !st.SolutionListed {
		listed = "not in word list"
	}
	_, _ = fmt.Fprintf(w.out, "%s %s (%s)\n", w.paint(w.styles.Header, "Solution:"), st.Solution, listed)
	_, _ = fmt.Fprintf(w.out, "%s %d\n", w.paint(w.styles.Header, "Words:"), st.Words)
	_, _ = fmt.Fprintf(w.out, "%s %d\n", w.paint(w.styles.Header, "Signatures:"), st.Signatures)
	for _, m := range st.Metrics {
		_, _ = fmt.Fprintf(w.out, "%s %s (%s)\n",
			w.paint(w.styles.Header, m.Name+":"), m.Value, strings.Join(m.Signatures, " "))
	}
}
