package cli

import (
	"bufio"
	"fmt"
	"iter"
	"strings"

	"github.com/phylame/pw-utils/stringutil"
	"github.com/spf13/cobra"
)

func newTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title TEXT...",
		Short: "Capitalize the first letter of every word",
		Long:  "Title upper-cases every letter that follows a non-letter, so \"hello-world\" becomes \"Hello-World\".",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), stringutil.ToTitle(strings.Join(args, " ")))
		},
	}
}

func newCapitalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capital TEXT...",
		Short: "Capitalize the first letter of the text",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), stringutil.CapitalizeFirst(strings.Join(args, " ")))
		},
	}
}

func newJoinCmd() *cobra.Command {
	var sepFlag string

	cmd := &cobra.Command{
		Use:   "join [ITEM...]",
		Short: "Join items with a separator",
		Long:  "Join prints ITEMs separated by --sep. Without ITEMs, the lines of stdin are joined.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), stringutil.Join(args, sepFlag))
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			var lines iter.Seq[string] = func(yield func(string) bool) {
				for sc.Scan() {
					if !yield(sc.Text()) {
						return
					}
				}
			}
			joined := stringutil.JoinSeq(lines, sepFlag)
			if err := sc.Err(); err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), joined)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sepFlag, "sep", "s", ",", "Separator between items")

	return cmd
}

func newCaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "case [TEXT]",
		Short: "Report whether text is lower case, upper case or empty",
		Long: `Case reports the case predicates of TEXT.

Text without cased letters, such as digits, is both lower and upper case.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var s string
			if len(args) == 1 {
				s = args[0]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lower=%t upper=%t empty=%t\n",
				stringutil.IsLowerCase(s), stringutil.IsUpperCase(s), stringutil.IsEmpty(s))
		},
	}
}
