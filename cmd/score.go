package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/benjaminjkraft/wordle-patterns/internal/wordle"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <guess>...",
		Short: "Print the feedback pattern each guess gets against the solution",
		Example: `  wordle-patterns score --solution abbey kebab bobby
  kebab XYGYY
  bobby YXGXG`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			for _, arg := range args {
				guess := strings.ToLower(strings.TrimSpace(arg))
				sig, err := wordle.Score(guess, rt.cfg.Solution)
				if err != nil {
					return err
				}
				rt.out.Score(guess, sig)
			}
			return nil
		},
	}
}
