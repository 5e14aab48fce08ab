package datefield

import "fmt"

// Supported year span of the proleptic Gregorian calendar.
const (
	MinYear = -262144
	MaxYear = 262143
)

const (
	daysPerEra   = 146097 // days in a 400-year Gregorian cycle
	epochShift   = 719468 // days from 0000-03-01 to 1970-01-01
	secondsInDay = 86400
)

var (
	minDateDays = daysFromCivil(MinYear, 1, 1)
	maxDateDays = daysFromCivil(MaxYear, 12, 31)
)

// Date is a calendar date on the proleptic Gregorian calendar, stored as a
// day count relative to the Unix epoch.
type Date struct {
	days int64
}

// isLeap reports whether the given year is a leap year.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysIn returns the number of days in the given month of the given year.
func daysIn(month, year int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// daysInYear returns 365 or 366 depending on the year.
func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

// daysFromCivil converts a year/month/day triple to a day count since the
// Unix epoch, using the era-based civil calendar algorithm.
func daysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400                           // [0, 399]
	mp := int64((month + 9) % 12)                // [0, 11], March first
	doy := (153*mp+2)/5 + int64(day) - 1         // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy       // [0, 146096]
	return era*daysPerEra + doe - epochShift
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year, month, day int) {
	z := days + epochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra                                    // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365       // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                     // [0, 365]
	mp := (5*doy + 2) / 153                                      // [0, 11]
	d := doy - (153*mp+2)/5 + 1                                  // [1, 31]
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// weekdayOfDays returns the weekday of a day count since the Unix epoch.
// The epoch day itself is a Thursday.
func weekdayOfDays(days int64) Weekday {
	return Weekday(floorMod(days+3, 7))
}

// isoWeeksInYear returns the number of ISO 8601 weeks in the given year,
// 52 or 53.
func isoWeeksInYear(year int) int {
	p := func(y int) int {
		return int(floorMod(int64(y)+floorDiv(int64(y), 4)-floorDiv(int64(y), 100)+floorDiv(int64(y), 400), 7))
	}
	if p(year) == 4 || p(year-1) == 3 {
		return 53
	}
	return 52
}

// DateFromYMD returns the date with the given year, month and day, or
// false if the triple does not name a valid calendar date.
func DateFromYMD(year, month, day int) (Date, bool) {
	if year < MinYear || year > MaxYear {
		return Date{}, false
	}
	if month < 1 || month > 12 {
		return Date{}, false
	}
	if day < 1 || day > daysIn(month, year) {
		return Date{}, false
	}
	return Date{days: daysFromCivil(year, month, day)}, true
}

// DateFromYearOrdinal returns the date with the given year and one-based
// day of the year, or false if the ordinal is out of range.
func DateFromYearOrdinal(year, ordinal int) (Date, bool) {
	if year < MinYear || year > MaxYear {
		return Date{}, false
	}
	if ordinal < 1 || ordinal > daysInYear(year) {
		return Date{}, false
	}
	return Date{days: daysFromCivil(year, 1, 1) + int64(ordinal) - 1}, true
}

// DateFromISOWeek returns the date addressed by the given ISO 8601 week
// date, or false if the week is out of range for the ISO year.
func DateFromISOWeek(isoYear, isoWeek int, weekday Weekday) (Date, bool) {
	if isoYear < MinYear || isoYear > MaxYear || weekday > Sunday {
		return Date{}, false
	}
	if isoWeek < 1 || isoWeek > isoWeeksInYear(isoYear) {
		return Date{}, false
	}
	jan4 := daysFromCivil(isoYear, 1, 4)
	weekOneMonday := jan4 - int64(weekdayOfDays(jan4).DaysFromMonday())
	days := weekOneMonday + int64(isoWeek-1)*7 + int64(weekday.DaysFromMonday())
	if days < minDateDays || days > maxDateDays {
		return Date{}, false
	}
	return Date{days: days}, true
}

// Year returns the calendar year.
func (d Date) Year() int {
	y, _, _ := civilFromDays(d.days)
	return y
}

// Month returns the month of the year, in the range 1-12.
func (d Date) Month() int {
	_, m, _ := civilFromDays(d.days)
	return m
}

// Day returns the day of the month.
func (d Date) Day() int {
	_, _, dd := civilFromDays(d.days)
	return dd
}

// Ordinal returns the one-based day of the year.
func (d Date) Ordinal() int {
	y, _, _ := civilFromDays(d.days)
	return int(d.days-daysFromCivil(y, 1, 1)) + 1
}

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	return weekdayOfDays(d.days)
}

// ISOWeek returns the ISO 8601 year and week number the date falls in.
// The ISO year may differ from the calendar year around January 1st.
func (d Date) ISOWeek() (isoYear, isoWeek int) {
	year := d.Year()
	week := (d.Ordinal() - d.Weekday().DaysFromMonday() + 9) / 7
	if week < 1 {
		return year - 1, isoWeeksInYear(year - 1)
	}
	if week > isoWeeksInYear(year) {
		return year + 1, 1
	}
	return year, week
}

// AddDays returns the date n days later (or earlier for negative n),
// reporting false when the result leaves the supported span.
func (d Date) AddDays(n int) (Date, bool) {
	days := d.days + int64(n)
	if days < minDateDays || days > maxDateDays {
		return Date{}, false
	}
	return Date{days: days}, true
}

// WeeksFrom returns the week number of the date counting week 1 as the
// first week starting on the given weekday, in the range 0-53.
func (d Date) WeeksFrom(day Weekday) int {
	return (d.Ordinal() - d.Weekday().daysSince(day) + 7) / 7
}

func (d Date) String() string {
	y, m, dd := civilFromDays(d.days)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, dd)
}
