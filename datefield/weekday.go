package datefield

import "strings"

// Weekday is a day of the week, with Monday as the first day.
type Weekday uint8

// Days of the week.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if w > Sunday {
		return "Weekday(invalid)"
	}
	return weekdayNames[w]
}

// DaysFromMonday returns the number of days from Monday, in the range 0-6.
func (w Weekday) DaysFromMonday() int {
	return int(w)
}

// DaysFromSunday returns the number of days from Sunday, in the range 0-6.
func (w Weekday) DaysFromSunday() int {
	return int(w+1) % 7
}

// daysSince returns the number of days since the given weekday,
// in the range 0-6.
func (w Weekday) daysSince(day Weekday) int {
	return ((int(w)-int(day))%7 + 7) % 7
}

// ParseWeekday converts a full or three-letter English day name to the
// corresponding Weekday.
func ParseWeekday(name string) (Weekday, error) {
	for i, full := range weekdayNames {
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return Weekday(i), nil
		}
	}
	return 0, outOfRangeError("unknown weekday " + name)
}
