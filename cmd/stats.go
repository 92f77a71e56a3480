package cmd

import (
	"github.com/spf13/cobra"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how the word list spreads over feedback patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			idx, err := rt.index(cmd)
			if err != nil {
				return err
			}
			rt.out.Stats(idx.Stats())
			return nil
		},
	}
}
