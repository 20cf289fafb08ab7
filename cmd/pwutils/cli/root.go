package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata" // zone names resolve without a system database

	"github.com/phylame/pw-utils/dateutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// LocaleEnvVar names the environment variable read when --locale is not set.
const LocaleEnvVar = "PWUTILS_LOCALE"

const defaultPattern = "yyyy-MM-dd"

// rootOptions holds the persistent flags and what they resolve to.
type rootOptions struct {
	tz      string
	locale  string
	pattern string
	verbose bool

	cal *dateutil.Calendar
	log *slog.Logger
}

// NewRootCmd builds the pwutils command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pwutils",
		Short: "String, random number and date helpers",
		Long: `pwutils exposes the pw-utils helpers on the command line.

Dates are read and written with SimpleDateFormat style patterns such as
yyyy-MM-dd or "EEE, d MMM yyyy HH:mm". Calendar fields are taken in the
location given by --tz (UTC by default), never the machine's local zone.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	addCalendarFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(
		newIntervalCmd(opts),
		newEndDateCmd(opts),
		newDaysCmd(opts),
		newModifyCmd(opts),
		newFormatCmd(opts),
		newLeapCmd(),
		newRandCmd(),
		newTitleCmd(),
		newCapitalCmd(),
		newJoinCmd(),
		newCaseCmd(),
	)

	return cmd
}

func addCalendarFlags(fs *pflag.FlagSet, opts *rootOptions) {
	fs.StringVar(&opts.tz, "tz", "UTC", "IANA time zone for calendar fields")
	fs.StringVar(&opts.locale, "locale", "en-US", "BCP 47 locale for month and weekday names (env "+LocaleEnvVar+")")
	fs.StringVarP(&opts.pattern, "pattern", "p", defaultPattern, "Pattern for reading and printing dates")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
}

// resolve turns the flag values into a calendar and logger.
func (o *rootOptions) resolve(fs *pflag.FlagSet, stderr io.Writer) error {
	o.log = newLogger(stderr, o.verbose)

	locale := o.locale
	if !fs.Changed("locale") {
		if env := os.Getenv(LocaleEnvVar); env != "" {
			locale = env
		}
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	loc, err := time.LoadLocation(o.tz)
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", o.tz, err)
	}

	o.cal = dateutil.New(dateutil.WithLocation(loc), dateutil.WithLocale(tag))
	o.log.Debug("calendar resolved",
		slog.String("location", loc.String()),
		slog.String("locale", tag.String()),
		slog.String("pattern", o.pattern))
	return nil
}

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
