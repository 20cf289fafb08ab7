package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/phylame/pw-utils/dateutil"
	"github.com/phylame/pw-utils/stringutil"
	"github.com/spf13/cobra"
)

// maxEchoRunes bounds user input repeated back in error messages.
const maxEchoRunes = 40

func newIntervalCmd(opts *rootOptions) *cobra.Command {
	var unitFlag string

	cmd := &cobra.Command{
		Use:   "interval [START END]",
		Short: "Count years, months or days between two dates",
		Long: `Interval counts calendar units from START to END.

Units are Y (years), M (months) or D (days), in either case. Years and months
ignore the day of month. Day counts use 365 days per year with a correction
per leap year; use "pwutils days" for the exact day distance.

When the dates are left out and stdin is a terminal, they are prompted for.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var startText, endText string
			if len(args) == 2 {
				startText, endText = args[0], args[1]
			} else {
				cmd.SilenceUsage = true
				if !isTerminal(cmd.InOrStdin()) {
					fmt.Fprintln(cmd.ErrOrStderr(), "START and END are required when stdin is not a terminal.")
					return NewSilentError(errors.New("missing dates"))
				}
				if err := promptDates(opts, &startText, &endText); err != nil {
					return err
				}
			}

			start, err := opts.parseDate(startText)
			if err != nil {
				return err
			}
			end, err := opts.parseDate(endText)
			if err != nil {
				return err
			}

			unit := dateutil.ParseUnit(unitFlag)
			if unit == dateutil.UnitNone {
				opts.log.Warn("unknown interval unit, result is 0", slog.String("unit", unitFlag))
			}

			fmt.Fprintln(cmd.OutOrStdout(), opts.cal.IntervalIn(start, end, unit))
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "D", "Interval unit: Y, M or D")

	return cmd
}

// promptDates asks for the interval bounds, validating each against the
// configured pattern.
func promptDates(opts *rootOptions, start, end *string) error {
	validate := func(s string) error {
		_, err := opts.cal.Parse(s, opts.pattern)
		return err
	}

	form := NewAccessibleForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder(opts.pattern).
				Validate(validate).
				Value(start),
			huh.NewInput().
				Title("End date").
				Placeholder(opts.pattern).
				Validate(validate).
				Value(end),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("date prompt failed: %w", err)
	}
	return nil
}

func newEndDateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "end-date START DAYS",
		Short: "Print the date DAYS calendar days after START",
		Long:  "End-date moves START by DAYS calendar days. Negative DAYS move backwards.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			start, err := opts.parseDate(args[0])
			if err != nil {
				return err
			}
			days, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day count %q: %w", stringutil.TruncateRunes(args[1], maxEchoRunes, "..."), err)
			}

			return opts.printDate(cmd, opts.cal.EndDate(start, days), opts.pattern)
		},
	}
}

func newDaysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "days START END",
		Short: "Print the exact number of calendar days between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			start, err := opts.parseDate(args[0])
			if err != nil {
				return err
			}
			end, err := opts.parseDate(args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), opts.cal.DaysBetween(start, end))
			return nil
		},
	}
}

func newModifyCmd(opts *rootOptions) *cobra.Command {
	var (
		fieldFlag string
		valueFlag int
		outFlag   string
	)

	cmd := &cobra.Command{
		Use:   "modify DATE",
		Short: "Set one calendar field of a date",
		Long: `Modify sets one field of DATE and prints the result.

Fields: year, month (1-12), day, day-of-year, hour, minute, second,
nanosecond. Values out of range roll over, so day 31 in April is May 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := dateutil.ParseField(fieldFlag)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			t, err := opts.parseDate(args[0])
			if err != nil {
				return err
			}

			out := outFlag
			if out == "" {
				out = opts.pattern
			}
			return opts.printDate(cmd, opts.cal.Modify(t, field, valueFlag), out)
		},
	}

	cmd.Flags().StringVarP(&fieldFlag, "field", "f", "day", "Field to set")
	cmd.Flags().IntVar(&valueFlag, "value", 0, "New field value")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output pattern (defaults to --pattern)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newFormatCmd(opts *rootOptions) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "format DATE",
		Short: "Reformat a date",
		Long: `Format reads DATE with --pattern and prints it with --out.

An empty --pattern accepts most common date notations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			t, err := opts.parseDate(args[0])
			if err != nil {
				return err
			}
			return opts.printDate(cmd, t, outFlag)
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "EEEE, d MMMM yyyy", "Output pattern")

	return cmd
}

func newLeapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leap YEAR...",
		Short: "Report whether years are leap years",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			for _, arg := range args {
				year, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", stringutil.TruncateRunes(arg, maxEchoRunes, "..."), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %t\n", year, dateutil.IsLeapYear(year))
			}
			return nil
		},
	}
}

func (o *rootOptions) parseDate(text string) (time.Time, error) {
	t, err := o.cal.Parse(text, o.pattern)
	if err != nil {
		// The message below already names the text
		var perr *dateutil.ParseError
		if errors.As(err, &perr) {
			err = perr.Err
		}
		return time.Time{}, fmt.Errorf("invalid date %q: %w", stringutil.TruncateRunes(text, maxEchoRunes, "..."), err)
	}
	o.log.Debug("date parsed", slog.String("text", text), slog.Time("value", t))
	return t, nil
}

func (o *rootOptions) printDate(cmd *cobra.Command, t time.Time, pattern string) error {
	s, err := o.cal.Format(t, pattern)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
