package datefield

// DateTime is a calendar date combined with a time of day, with no
// timezone attached.
type DateTime struct {
	date Date
	time TimeOfDay
}

// NewDateTime combines a date and a time of day.
func NewDateTime(date Date, time TimeOfDay) DateTime {
	return DateTime{date: date, time: time}
}

// DateTimeFromTimestamp returns the date and time the given number of
// non-leap seconds after the Unix epoch, or false if the instant is
// outside the supported span or the nanosecond component is invalid.
func DateTimeFromTimestamp(seconds int64, nanosecond int) (DateTime, bool) {
	if nanosecond < 0 || nanosecond >= 2_000_000_000 {
		return DateTime{}, false
	}
	days := floorDiv(seconds, secondsInDay)
	if days < minDateDays || days > maxDateDays {
		return DateTime{}, false
	}
	return DateTime{
		date: Date{days: days},
		time: TimeOfDay{
			secs:  int32(seconds - days*secondsInDay),
			nanos: int32(nanosecond),
		},
	}, true
}

// Date returns the calendar date component.
func (dt DateTime) Date() Date {
	return dt.date
}

// Time returns the time of day component.
func (dt DateTime) Time() TimeOfDay {
	return dt.time
}

// Timestamp returns the number of non-leap seconds between the Unix epoch
// and this date and time. A leap-second nanosecond carry is not counted.
func (dt DateTime) Timestamp() int64 {
	return dt.date.days*secondsInDay + int64(dt.time.secs)
}

// AddSeconds returns the date and time n seconds later (or earlier for
// negative n), preserving the nanosecond component. It reports false when
// the result leaves the supported span.
func (dt DateTime) AddSeconds(n int64) (DateTime, bool) {
	ts, ok := addInt64(dt.Timestamp(), n)
	if !ok {
		return DateTime{}, false
	}
	moved, ok := DateTimeFromTimestamp(ts, 0)
	if !ok {
		return DateTime{}, false
	}
	moved.time.nanos = dt.time.nanos
	return moved, true
}

func (dt DateTime) String() string {
	return dt.date.String() + " " + dt.time.String()
}
