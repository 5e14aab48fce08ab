// Command datefield resolves a set of date and time fields, given as
// flags or as a YAML batch file, into a date, a time of day, a combined
// datetime or a zone-anchored instant.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/datefield/go-datefield/datefield"
	"github.com/datefield/go-datefield/logger"
)

type fieldFlags struct {
	year, yearDiv100, yearMod100          int64
	isoYear, isoYearDiv100, isoYearMod100 int64
	month, day, ordinal                   int64
	isoWeek, weekSun, weekMon             int64
	weekday                               string
	hour, hour12                          int64
	pm                                    bool
	minute, second, nanosecond            int64
	timestamp, offset                     int64
}

func main() {
	var (
		flags   fieldFlags
		target  string
		zone    string
		verbose bool
	)

	root := &cobra.Command{
		Use:           "datefield",
		Short:         "Resolve date and time fields into a unique moment",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := newLogger(verbose)
			fs := datefield.NewFieldSet()
			if err := flags.apply(cmd, fs); err != nil {
				return err
			}
			out, err := resolve(lg, fs, target, zone)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := root.Flags()
	f.Int64Var(&flags.year, "year", 0, "calendar year")
	f.Int64Var(&flags.yearDiv100, "year-div-100", 0, "century part of the year")
	f.Int64Var(&flags.yearMod100, "year-mod-100", 0, "two-digit part of the year")
	f.Int64Var(&flags.isoYear, "iso-year", 0, "ISO week-date year")
	f.Int64Var(&flags.isoYearDiv100, "iso-year-div-100", 0, "century part of the ISO year")
	f.Int64Var(&flags.isoYearMod100, "iso-year-mod-100", 0, "two-digit part of the ISO year")
	f.Int64Var(&flags.month, "month", 0, "month of the year, 1-12")
	f.Int64Var(&flags.day, "day", 0, "day of the month")
	f.Int64Var(&flags.ordinal, "ordinal", 0, "day of the year, 1-366")
	f.Int64Var(&flags.isoWeek, "iso-week", 0, "ISO 8601 week number")
	f.Int64Var(&flags.weekSun, "week-sun", 0, "week number counted from the first Sunday of January")
	f.Int64Var(&flags.weekMon, "week-mon", 0, "week number counted from the first Monday of January")
	f.StringVar(&flags.weekday, "weekday", "", "day of the week, full or three-letter name")
	f.Int64Var(&flags.hour, "hour", 0, "hour on the 24-hour clock")
	f.Int64Var(&flags.hour12, "hour12", 0, "hour on the 12-hour clock, 1-12")
	f.BoolVar(&flags.pm, "pm", false, "half-day flag for the 12-hour clock")
	f.Int64Var(&flags.minute, "minute", 0, "minute, 0-59")
	f.Int64Var(&flags.second, "second", 0, "second, 0-60 where 60 is a leap second")
	f.Int64Var(&flags.nanosecond, "nanosecond", 0, "sub-second component in nanoseconds")
	f.Int64Var(&flags.timestamp, "timestamp", 0, "non-leap seconds since the Unix epoch")
	f.Int64Var(&flags.offset, "offset", 0, "UTC offset in seconds east")
	f.StringVar(&target, "to", "datetime", "result kind: date, time, datetime or instant")
	f.StringVar(&zone, "zone", "", "IANA timezone name for --to instant")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each populated field")

	root.AddCommand(newBatchCommand(&verbose))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "datefield:", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) logger.Logger {
	level := logger.LevelInfo
	if verbose {
		level = logger.LevelDebug
	}
	return logger.NewSimpleLogger(log.New(os.Stderr, "", log.LstdFlags), level)
}

// apply transfers every flag the caller actually set into the field set,
// so that untouched flags leave their fields unpopulated.
func (ff *fieldFlags) apply(cmd *cobra.Command, fs *datefield.FieldSet) error {
	setters := []struct {
		flag  string
		value int64
		set   func(int64) error
	}{
		{"year", ff.year, fs.SetYear},
		{"year-div-100", ff.yearDiv100, fs.SetYearDiv100},
		{"year-mod-100", ff.yearMod100, fs.SetYearMod100},
		{"iso-year", ff.isoYear, fs.SetISOYear},
		{"iso-year-div-100", ff.isoYearDiv100, fs.SetISOYearDiv100},
		{"iso-year-mod-100", ff.isoYearMod100, fs.SetISOYearMod100},
		{"month", ff.month, fs.SetMonth},
		{"day", ff.day, fs.SetDay},
		{"ordinal", ff.ordinal, fs.SetOrdinal},
		{"iso-week", ff.isoWeek, fs.SetISOWeek},
		{"week-sun", ff.weekSun, fs.SetWeekFromSun},
		{"week-mon", ff.weekMon, fs.SetWeekFromMon},
		{"hour", ff.hour, fs.SetHour},
		{"hour12", ff.hour12, fs.SetHour12},
		{"minute", ff.minute, fs.SetMinute},
		{"second", ff.second, fs.SetSecond},
		{"nanosecond", ff.nanosecond, fs.SetNanosecond},
		{"timestamp", ff.timestamp, fs.SetTimestamp},
		{"offset", ff.offset, fs.SetOffset},
	}
	for _, s := range setters {
		if !cmd.Flags().Changed(s.flag) {
			continue
		}
		if err := s.set(s.value); err != nil {
			return fmt.Errorf("--%s: %w", s.flag, err)
		}
	}
	if cmd.Flags().Changed("weekday") {
		wd, err := datefield.ParseWeekday(ff.weekday)
		if err != nil {
			return fmt.Errorf("--weekday: %w", err)
		}
		if err := fs.SetWeekday(wd); err != nil {
			return fmt.Errorf("--weekday: %w", err)
		}
	}
	if cmd.Flags().Changed("pm") {
		if err := fs.SetAMPM(ff.pm); err != nil {
			return fmt.Errorf("--pm: %w", err)
		}
	}
	return nil
}

// resolve runs the requested resolver against the populated fields.
func resolve(lg logger.Logger, fs *datefield.FieldSet, target, zone string) (string, error) {
	lg.Debug("resolving fields", "to", target)
	switch target {
	case "date":
		d, err := fs.ToDate()
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case "time":
		t, err := fs.ToTime()
		if err != nil {
			return "", err
		}
		return t.String(), nil
	case "datetime":
		offset := 0
		if off, err := fs.ToFixedOffset(); err == nil {
			offset = off.Seconds()
		}
		dt, err := fs.ToDateTimeWithOffset(offset)
		if err != nil {
			return "", err
		}
		return dt.String(), nil
	case "instant":
		if zone == "" {
			z, err := fs.ToZonedDateTime()
			if err != nil {
				return "", err
			}
			return z.String(), nil
		}
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return "", fmt.Errorf("loading zone %q: %w", zone, err)
		}
		z, err := fs.ToZonedDateTimeIn(datefield.ZoneFromLocation(loc))
		if err != nil {
			return "", err
		}
		return z.String(), nil
	default:
		return "", fmt.Errorf("unknown result kind %q", target)
	}
}
