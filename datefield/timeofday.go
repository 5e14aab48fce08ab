package datefield

import "fmt"

// TimeOfDay is a wall-clock time with nanosecond precision. A leap second
// is represented as second 59 with the nanosecond component raised by one
// billion, so the nanosecond range is 0-1,999,999,999.
type TimeOfDay struct {
	secs  int32 // seconds since midnight, 0-86399
	nanos int32
}

// TimeFromHMSNano returns the time of day with the given components, or
// false if any component is out of range. A nanosecond value of
// 1,000,000,000 or above marks a leap second.
func TimeFromHMSNano(hour, minute, second, nanosecond int) (TimeOfDay, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, false
	}
	if nanosecond < 0 || nanosecond >= 2_000_000_000 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{
		secs:  int32(hour*3600 + minute*60 + second),
		nanos: int32(nanosecond),
	}, true
}

// Hour returns the hour, in the range 0-23.
func (t TimeOfDay) Hour() int {
	return int(t.secs) / 3600
}

// Minute returns the minute, in the range 0-59.
func (t TimeOfDay) Minute() int {
	return int(t.secs) / 60 % 60
}

// Second returns the second, in the range 0-59. A leap second is reported
// as 59 with Nanosecond() at or above one billion.
func (t TimeOfDay) Second() int {
	return int(t.secs) % 60
}

// Nanosecond returns the sub-second component, in the range
// 0-1,999,999,999.
func (t TimeOfDay) Nanosecond() int {
	return int(t.nanos)
}

func (t TimeOfDay) String() string {
	sec, nanos := t.Second(), t.Nanosecond()
	if nanos >= 1_000_000_000 {
		sec, nanos = sec+1, nanos-1_000_000_000
	}
	if nanos == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), sec)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), sec, nanos)
}
