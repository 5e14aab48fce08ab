package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datefield/go-datefield/datefield"
	"github.com/datefield/go-datefield/logger"
)

// batchEntry is one resolution request from a YAML batch file. Absent keys
// leave the corresponding fields unpopulated.
type batchEntry struct {
	Name   string      `yaml:"name"`
	To     string      `yaml:"to"`
	Zone   string      `yaml:"zone"`
	Fields batchFields `yaml:"fields"`
}

type batchFields struct {
	Year          *int64  `yaml:"year"`
	YearDiv100    *int64  `yaml:"year_div_100"`
	YearMod100    *int64  `yaml:"year_mod_100"`
	ISOYear       *int64  `yaml:"iso_year"`
	ISOYearDiv100 *int64  `yaml:"iso_year_div_100"`
	ISOYearMod100 *int64  `yaml:"iso_year_mod_100"`
	Month         *int64  `yaml:"month"`
	Day           *int64  `yaml:"day"`
	Ordinal       *int64  `yaml:"ordinal"`
	ISOWeek       *int64  `yaml:"iso_week"`
	WeekSun       *int64  `yaml:"week_sun"`
	WeekMon       *int64  `yaml:"week_mon"`
	Weekday       *string `yaml:"weekday"`
	Hour          *int64  `yaml:"hour"`
	Hour12        *int64  `yaml:"hour12"`
	PM            *bool   `yaml:"pm"`
	Minute        *int64  `yaml:"minute"`
	Second        *int64  `yaml:"second"`
	Nanosecond    *int64  `yaml:"nanosecond"`
	Timestamp     *int64  `yaml:"timestamp"`
	Offset        *int64  `yaml:"offset"`
}

func newBatchCommand(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Resolve every entry of a YAML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := newLogger(*verbose)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var entries []batchEntry
			if err := yaml.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			lg.Info("resolving batch", "file", args[0], "entries", len(entries))

			failures := 0
			for i, entry := range entries {
				name := entry.Name
				if name == "" {
					name = fmt.Sprintf("entry %d", i+1)
				}
				to := entry.To
				if to == "" {
					to = "datetime"
				}
				out, err := resolveEntry(entry, to)
				if err != nil {
					failures++
					lg.Warn("entry failed", "name", name, "error", err)
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, out)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d entries failed", failures, len(entries))
			}
			return nil
		},
	}
}

func resolveEntry(entry batchEntry, to string) (string, error) {
	fs := datefield.NewFieldSet()
	if err := entry.Fields.apply(fs); err != nil {
		return "", err
	}
	return resolve(logger.NoOpLogger{}, fs, to, entry.Zone)
}

// apply populates a field set from the present keys.
func (bf *batchFields) apply(fs *datefield.FieldSet) error {
	setters := []struct {
		key   string
		value *int64
		set   func(int64) error
	}{
		{"year", bf.Year, fs.SetYear},
		{"year_div_100", bf.YearDiv100, fs.SetYearDiv100},
		{"year_mod_100", bf.YearMod100, fs.SetYearMod100},
		{"iso_year", bf.ISOYear, fs.SetISOYear},
		{"iso_year_div_100", bf.ISOYearDiv100, fs.SetISOYearDiv100},
		{"iso_year_mod_100", bf.ISOYearMod100, fs.SetISOYearMod100},
		{"month", bf.Month, fs.SetMonth},
		{"day", bf.Day, fs.SetDay},
		{"ordinal", bf.Ordinal, fs.SetOrdinal},
		{"iso_week", bf.ISOWeek, fs.SetISOWeek},
		{"week_sun", bf.WeekSun, fs.SetWeekFromSun},
		{"week_mon", bf.WeekMon, fs.SetWeekFromMon},
		{"hour", bf.Hour, fs.SetHour},
		{"hour12", bf.Hour12, fs.SetHour12},
		{"minute", bf.Minute, fs.SetMinute},
		{"second", bf.Second, fs.SetSecond},
		{"nanosecond", bf.Nanosecond, fs.SetNanosecond},
		{"timestamp", bf.Timestamp, fs.SetTimestamp},
		{"offset", bf.Offset, fs.SetOffset},
	}
	for _, s := range setters {
		if s.value == nil {
			continue
		}
		if err := s.set(*s.value); err != nil {
			return fmt.Errorf("%s: %w", s.key, err)
		}
	}
	if bf.Weekday != nil {
		wd, err := datefield.ParseWeekday(*bf.Weekday)
		if err != nil {
			return fmt.Errorf("weekday: %w", err)
		}
		if err := fs.SetWeekday(wd); err != nil {
			return fmt.Errorf("weekday: %w", err)
		}
	}
	if bf.PM != nil {
		if err := fs.SetAMPM(*bf.PM); err != nil {
			return fmt.Errorf("pm: %w", err)
		}
	}
	return nil
}
