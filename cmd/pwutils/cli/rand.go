package cli

import (
	"errors"
	"fmt"

	"github.com/phylame/pw-utils/randutil"
	"github.com/spf13/cobra"
)

func newRandCmd() *cobra.Command {
	var (
		minFlag   int64
		maxFlag   int64
		countFlag int
		seedFlag  uint64
	)

	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print random integers in [min, max)",
		Long: `Rand prints --count random integers drawn uniformly from [--min, --max).

Without --seed the output differs on every run. The generator is not
suitable for secrets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxFlag <= minFlag {
				return fmt.Errorf("--max (%d) must be greater than --min (%d)", maxFlag, minFlag)
			}
			if countFlag < 1 {
				return errors.New("--count must be at least 1")
			}

			r := randutil.Default()
			if cmd.Flags().Changed("seed") {
				r = randutil.NewSeeded(seedFlag)
			}

			for range countFlag {
				fmt.Fprintln(cmd.OutOrStdout(), r.Int64(minFlag, maxFlag))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&minFlag, "min", 0, "Lower bound, inclusive")
	cmd.Flags().Int64Var(&maxFlag, "max", 100, "Upper bound, exclusive")
	cmd.Flags().IntVarP(&countFlag, "count", "n", 1, "How many numbers to print")
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Seed for reproducible output")

	return cmd
}
