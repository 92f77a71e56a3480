package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
	"github.com/benjaminjkraft/wordle-patterns/internal/wordle"
)

func newExpandCmd(opts *rootOptions) *cobra.Command {
	var counts bool

	cmd := &cobra.Command{
		Use:   "expand <pattern>",
		Short: "List the concrete feedback patterns a query pattern stands for",
		Long: `List every concrete pattern (G, Y and X only) that a query pattern
stands for, in the order matches are reported. With --counts (the default)
each line also shows how many words in the word list produce it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			p, err := wordle.ParsePattern(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			if len(p) != len(rt.cfg.Solution) {
				return perrors.LengthMismatch("pattern "+p.String(), len(p), len(rt.cfg.Solution))
			}

			var idx *wordle.Index
			if counts {
				if idx, err = rt.index(cmd); err != nil {
					return err
				}
			}
			rt.out.Expansion(p, idx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&counts, "counts", true, "Load the word list and show how many words give each pattern")
	return cmd
}
