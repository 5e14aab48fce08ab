package datefield

// option is a field slot that records whether it has been populated.
type option[T comparable] struct {
	value T
	set   bool
}

// setIfConsistent stores the value if the slot is empty; a populated slot
// must already hold an equal value, anything else is ErrImpossible.
func (o *option[T]) setIfConsistent(value T) error {
	if o.set {
		if o.value != value {
			return ErrImpossible
		}
		return nil
	}
	o.value = value
	o.set = true
	return nil
}

// or returns the stored value, or the given default for an empty slot.
func (o option[T]) or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

func newOption[T comparable](value T) option[T] {
	return option[T]{value: value, set: true}
}

// FieldSet accumulates date and time components one at a time, usually as
// a format parser recognizes tokens, and checks each new component for
// consistency with what is already present. Fields with a fixed legal
// range independent of other fields are range-checked as they are set;
// everything else is range-checked by the resolvers.
//
// A FieldSet is a plain value type with no internal locking. The To*
// resolver methods never modify the receiver and may be called repeatedly.
type FieldSet struct {
	year          option[int32]
	yearDiv100    option[int32]
	yearMod100    option[int32]
	isoYear       option[int32]
	isoYearDiv100 option[int32]
	isoYearMod100 option[int32]
	month         option[uint32]
	weekFromSun   option[uint32]
	weekFromMon   option[uint32]
	isoWeek       option[uint32]
	weekday       option[Weekday]
	ordinal       option[uint32]
	day           option[uint32]
	hourDiv12     option[uint32]
	hourMod12     option[uint32]
	minute        option[uint32]
	second        option[uint32]
	nanosecond    option[uint32]
	timestamp     option[int64]
	offset        option[int32]
}

// NewFieldSet returns an empty field set.
func NewFieldSet() *FieldSet {
	return &FieldSet{}
}

// SetYear sets the Gregorian year. It may be negative.
func (fs *FieldSet) SetYear(value int64) error {
	v, err := toInt32(value)
	if err != nil {
		return err
	}
	return fs.year.setIfConsistent(v)
}

// SetYearDiv100 sets the century part of the Gregorian year. Negative
// values are rejected.
func (fs *FieldSet) SetYearDiv100(value int64) error {
	if value < 0 {
		return outOfRangeError("year_div_100 must not be negative")
	}
	v, err := toInt32(value)
	if err != nil {
		return err
	}
	return fs.yearDiv100.setIfConsistent(v)
}

// SetYearMod100 sets the two-digit part of the Gregorian year. Negative
// values are rejected.
func (fs *FieldSet) SetYearMod100(value int64) error {
	if value < 0 {
		return outOfRangeError("year_mod_100 must not be negative")
	}
	v, err := toInt32(value)
	if err != nil {
		return err
	}
	return fs.yearMod100.setIfConsistent(v)
}

// SetISOYear sets the ISO week-date year. It may be negative.
func (fs *FieldSet) SetISOYear(value int64) error {
	v, err := toInt32(value)
	if err != nil {
		return err
	}
	return fs.isoYear.setIfConsistent(v)
}

// SetISOYearDiv100 sets the century part of the ISO week-date year.
// Negative values are rejected.
func (fs *FieldSet) SetISOYearDiv100(value int64) error {
	if value < 0 {
		return outOfRangeError("isoyear_div_100 must not be negative")
	}
	v, err := toInt32(value)
	if err != nil {
		return err
	}
	return fs.isoYearDiv100.setIfConsistent(v)
}

// SetISOYearMod100 sets the two-digit part of the ISO week-date year.
// Negative values are rejected.
func (fs *FieldSet) SetISOYearMod100(value int64) error {
	if value < 0 {
		return outOfRangeError("isoyear_mod_100 must not be negative")
	}
	v, err := toInt32(value)
	if err != nil {
		return err
	}
	return fs.isoYearMod100.setIfConsistent(v)
}

// SetMonth sets the month of the year.
func (fs *FieldSet) SetMonth(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.month.setIfConsistent(v)
}

// SetWeekFromSun sets the week number counted from the first Sunday of
// January.
func (fs *FieldSet) SetWeekFromSun(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.weekFromSun.setIfConsistent(v)
}

// SetWeekFromMon sets the week number counted from the first Monday of
// January.
func (fs *FieldSet) SetWeekFromMon(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.weekFromMon.setIfConsistent(v)
}

// SetISOWeek sets the ISO 8601 week number.
func (fs *FieldSet) SetISOWeek(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.isoWeek.setIfConsistent(v)
}

// SetWeekday sets the day of the week.
func (fs *FieldSet) SetWeekday(value Weekday) error {
	if value > Sunday {
		return outOfRangeError("invalid weekday")
	}
	return fs.weekday.setIfConsistent(value)
}

// SetOrdinal sets the one-based day of the year.
func (fs *FieldSet) SetOrdinal(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.ordinal.setIfConsistent(v)
}

// SetDay sets the day of the month.
func (fs *FieldSet) SetDay(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.day.setIfConsistent(v)
}

// SetAMPM sets the half-day flag: false for AM, true for PM.
func (fs *FieldSet) SetAMPM(pm bool) error {
	var v uint32
	if pm {
		v = 1
	}
	return fs.hourDiv12.setIfConsistent(v)
}

// SetHour12 sets the hour from a 12-hour clock reading in the range 1-12;
// 12 is stored as hour-mod-12 zero.
func (fs *FieldSet) SetHour12(value int64) error {
	if value < 1 || value > 12 {
		return outOfRangeError("hour12 must be in 1-12")
	}
	return fs.hourMod12.setIfConsistent(uint32(value % 12))
}

// SetHour sets the hour from a 24-hour clock reading, as two independent
// consistency-checked writes of the half-day flag and the hour mod 12.
// When the second write fails the first is deliberately not rolled back,
// for compatibility with parsers relying on that behavior.
func (fs *FieldSet) SetHour(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	if err := fs.hourDiv12.setIfConsistent(v / 12); err != nil {
		return err
	}
	return fs.hourMod12.setIfConsistent(v % 12)
}

// SetMinute sets the minute.
func (fs *FieldSet) SetMinute(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.minute.setIfConsistent(v)
}

// SetSecond sets the second; 60 denotes a leap second.
func (fs *FieldSet) SetSecond(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.second.setIfConsistent(v)
}

// SetNanosecond sets the sub-second component.
func (fs *FieldSet) SetNanosecond(value int64) error {
	v, err := toUint32(value)
	if err != nil {
		return err
	}
	return fs.nanosecond.setIfConsistent(v)
}

// SetTimestamp sets the number of non-leap seconds since the Unix epoch.
// The value may be off by one from the resolved time when the second field
// is 60.
func (fs *FieldSet) SetTimestamp(value int64) error {
	return fs.timestamp.setIfConsistent(value)
}

// SetOffset sets the UTC offset of the local time, in seconds east.
func (fs *FieldSet) SetOffset(value int64) error {
	v, err := toInt32(value)
	if err != nil {
		return err
	}
	return fs.offset.setIfConsistent(v)
}
