package datefield

import "errors"

// resolveYear reconciles a full year with its century and two-digit
// encodings. The branch order determines which error kind edge cases
// report and must not be reordered.
func resolveYear(year, div100, mod100 option[int32]) (option[int32], error) {
	none := option[int32]{}
	switch {
	case !div100.set && !mod100.set:
		return year, nil
	case year.set && (!mod100.set || (mod100.value >= 0 && mod100.value <= 99)):
		y := year.value
		if y < 0 {
			return none, ErrOutOfRange
		}
		q, r := y/100, y%100
		if (div100.set && div100.value != q) || (mod100.set && mod100.value != r) {
			return none, ErrImpossible
		}
		return year, nil
	case !year.set && div100.set && mod100.set && mod100.value >= 0 && mod100.value <= 99:
		if div100.value < 0 {
			return none, ErrOutOfRange
		}
		y, err := toInt32(int64(div100.value)*100 + int64(mod100.value))
		if err != nil {
			return none, err
		}
		return newOption(y), nil
	case !year.set && !div100.set && mod100.set && mod100.value >= 0 && mod100.value <= 99:
		// two-digit year convention: 70-99 map to 19xx, 00-69 to 20xx
		if mod100.value < 70 {
			return newOption(mod100.value + 2000), nil
		}
		return newOption(mod100.value + 1900), nil
	case !year.set && div100.set && !mod100.set:
		return none, ErrNotEnough
	default:
		return none, ErrOutOfRange
	}
}

// verifyYMD reports whether the year, century, two-digit year, month and
// day fields, where populated, agree with the date.
func (fs *FieldSet) verifyYMD(d Date) bool {
	year := d.Year()
	div100OK := !fs.yearDiv100.set
	mod100OK := !fs.yearMod100.set
	if year >= 0 {
		div100OK = !fs.yearDiv100.set || int(fs.yearDiv100.value) == year/100
		mod100OK = !fs.yearMod100.set || int(fs.yearMod100.value) == year%100
	}
	return (!fs.year.set || int(fs.year.value) == year) &&
		div100OK && mod100OK &&
		(!fs.month.set || int(fs.month.value) == d.Month()) &&
		(!fs.day.set || int(fs.day.value) == d.Day())
}

// verifyISOWeekDate reports whether the ISO year, century, two-digit year,
// ISO week and weekday fields, where populated, agree with the date.
func (fs *FieldSet) verifyISOWeekDate(d Date) bool {
	isoYear, isoWeek := d.ISOWeek()
	div100OK := !fs.isoYearDiv100.set
	mod100OK := !fs.isoYearMod100.set
	if isoYear >= 0 {
		div100OK = !fs.isoYearDiv100.set || int(fs.isoYearDiv100.value) == isoYear/100
		mod100OK = !fs.isoYearMod100.set || int(fs.isoYearMod100.value) == isoYear%100
	}
	return (!fs.isoYear.set || int(fs.isoYear.value) == isoYear) &&
		div100OK && mod100OK &&
		(!fs.isoWeek.set || int(fs.isoWeek.value) == isoWeek) &&
		(!fs.weekday.set || fs.weekday.value == d.Weekday())
}

// verifyOrdinal reports whether the ordinal and the Sunday- and
// Monday-based week numbers, where populated, agree with the date.
func (fs *FieldSet) verifyOrdinal(d Date) bool {
	return (!fs.ordinal.set || int(fs.ordinal.value) == d.Ordinal()) &&
		(!fs.weekFromSun.set || int(int32(fs.weekFromSun.value)) == d.WeeksFrom(Sunday)) &&
		(!fs.weekFromMon.set || int(int32(fs.weekFromMon.value)) == d.WeeksFrom(Monday))
}

// resolveWeekNumbered turns a year, a week number counted from the first
// occurrence of firstDay in January, and the weekday field into a date.
func (fs *FieldSet) resolveWeekNumbered(year int, week uint32, firstDay Weekday) (Date, error) {
	newyear, ok := DateFromYearOrdinal(year, 1)
	if !ok {
		return Date{}, ErrOutOfRange
	}
	// days from January 1st to the start of week 1
	firstWeek := (7 - newyear.Weekday().daysSince(firstDay)) % 7
	if week > 53 {
		return Date{}, ErrOutOfRange
	}
	ndays := firstWeek + (int(week)-1)*7 + fs.weekday.value.daysSince(firstDay)
	date, ok := newyear.AddDays(ndays)
	if !ok {
		return Date{}, ErrOutOfRange
	}
	if date.Year() != year {
		// the week rolled into an adjacent year
		return Date{}, ErrOutOfRange
	}
	return date, nil
}

// ToDate resolves the populated fields into a unique calendar date.
//
// The date is determined from the first of the following combinations
// whose fields are all present: year/month/day, year/ordinal, year plus a
// Sunday- or Monday-based week number and weekday, or the ISO week date.
// Every other populated field is then verified against the result; any
// disagreement is ErrImpossible. Both the Gregorian and the ISO year
// accept two-digit and century encodings in place of the full year.
func (fs *FieldSet) ToDate() (Date, error) {
	givenYear, err := resolveYear(fs.year, fs.yearDiv100, fs.yearMod100)
	if err != nil {
		return Date{}, err
	}
	givenISOYear, err := resolveYear(fs.isoYear, fs.isoYearDiv100, fs.isoYearMod100)
	if err != nil {
		return Date{}, err
	}

	var (
		date     Date
		verified bool
	)
	switch {
	case givenYear.set && fs.month.set && fs.day.set:
		d, ok := DateFromYMD(int(givenYear.value), int(fs.month.value), int(fs.day.value))
		if !ok {
			return Date{}, ErrOutOfRange
		}
		date, verified = d, fs.verifyISOWeekDate(d) && fs.verifyOrdinal(d)

	case givenYear.set && fs.ordinal.set:
		d, ok := DateFromYearOrdinal(int(givenYear.value), int(fs.ordinal.value))
		if !ok {
			return Date{}, ErrOutOfRange
		}
		date, verified = d, fs.verifyYMD(d) && fs.verifyISOWeekDate(d) && fs.verifyOrdinal(d)

	case givenYear.set && fs.weekFromSun.set && fs.weekday.set:
		d, err := fs.resolveWeekNumbered(int(givenYear.value), fs.weekFromSun.value, Sunday)
		if err != nil {
			return Date{}, err
		}
		date, verified = d, fs.verifyYMD(d) && fs.verifyISOWeekDate(d) && fs.verifyOrdinal(d)

	case givenYear.set && fs.weekFromMon.set && fs.weekday.set:
		d, err := fs.resolveWeekNumbered(int(givenYear.value), fs.weekFromMon.value, Monday)
		if err != nil {
			return Date{}, err
		}
		date, verified = d, fs.verifyYMD(d) && fs.verifyISOWeekDate(d) && fs.verifyOrdinal(d)

	case givenISOYear.set && fs.isoWeek.set && fs.weekday.set:
		d, ok := DateFromISOWeek(int(givenISOYear.value), int(fs.isoWeek.value), fs.weekday.value)
		if !ok {
			return Date{}, ErrOutOfRange
		}
		date, verified = d, fs.verifyYMD(d) && fs.verifyOrdinal(d)

	default:
		return Date{}, ErrNotEnough
	}
	if !verified {
		return Date{}, impossibleError("fields disagree with the resolved date")
	}
	return date, nil
}

// ToTime resolves the populated fields into a time of day. The hour is
// required in its half-day encoding, the minute is required, the second
// defaults to zero and may be 60 to denote a leap second, and a
// nanosecond field is only meaningful alongside an explicit second.
func (fs *FieldSet) ToTime() (TimeOfDay, error) {
	if !fs.hourDiv12.set {
		return TimeOfDay{}, ErrNotEnough
	}
	if fs.hourDiv12.value > 1 {
		return TimeOfDay{}, ErrOutOfRange
	}
	if !fs.hourMod12.set {
		return TimeOfDay{}, ErrNotEnough
	}
	if fs.hourMod12.value > 11 {
		return TimeOfDay{}, ErrOutOfRange
	}
	hour := fs.hourDiv12.value*12 + fs.hourMod12.value

	if !fs.minute.set {
		return TimeOfDay{}, ErrNotEnough
	}
	if fs.minute.value > 59 {
		return TimeOfDay{}, ErrOutOfRange
	}

	second := fs.second.or(0)
	var nano int
	switch {
	case second <= 59:
	case second == 60:
		second, nano = 59, 1_000_000_000
	default:
		return TimeOfDay{}, ErrOutOfRange
	}
	if fs.nanosecond.set {
		if fs.nanosecond.value > 999_999_999 {
			return TimeOfDay{}, ErrOutOfRange
		}
		if !fs.second.set {
			// a fractional second without the second itself
			return TimeOfDay{}, ErrNotEnough
		}
		nano += int(fs.nanosecond.value)
	}

	t, ok := TimeFromHMSNano(int(hour), int(fs.minute.value), int(second), nano)
	if !ok {
		return TimeOfDay{}, ErrOutOfRange
	}
	return t, nil
}

// ToDateTimeWithOffset resolves the populated fields into a date and time,
// interpreting them as local time at the given UTC offset (in seconds
// east) when cross-checking against the timestamp field.
//
// When the date and time fields are both resolvable the timestamp field,
// if populated, must match the combination; it may exceed the implied
// value by one when the time carries a leap second. When either resolver
// lacks fields and a timestamp is populated, the date and time are derived
// from the timestamp instead and validated against every field that was
// supplied. Range and consistency failures in the date and time fields
// take precedence over the timestamp fallback.
func (fs *FieldSet) ToDateTimeWithOffset(offset int) (DateTime, error) {
	date, dateErr := fs.ToDate()
	timeOfDay, timeErr := fs.ToTime()

	if dateErr == nil && timeErr == nil {
		datetime := NewDateTime(date, timeOfDay)
		implied := datetime.Timestamp() - int64(offset)
		if fs.timestamp.set {
			given := fs.timestamp.value
			leapCarry := timeOfDay.Nanosecond() >= 1_000_000_000
			if given != implied && !(leapCarry && given == implied+1) {
				return DateTime{}, ErrImpossible
			}
		}
		return datetime, nil
	}

	if fs.timestamp.set {
		// field errors outrank the timestamp fallback
		if errors.Is(dateErr, ErrOutOfRange) || errors.Is(timeErr, ErrOutOfRange) {
			return DateTime{}, ErrOutOfRange
		}
		if errors.Is(dateErr, ErrImpossible) || errors.Is(timeErr, ErrImpossible) {
			return DateTime{}, ErrImpossible
		}
		return fs.datetimeFromTimestamp(offset)
	}

	if dateErr != nil {
		return DateTime{}, dateErr
	}
	return DateTime{}, timeErr
}

// datetimeFromTimestamp derives the date and time from the timestamp
// field, back-fills the derived components into a private copy of the
// field set and re-resolves it, so that every originally populated field
// is validated against the derived value.
func (fs *FieldSet) datetimeFromTimestamp(offset int) (DateTime, error) {
	ts, ok := addInt64(fs.timestamp.value, int64(offset))
	if !ok {
		return DateTime{}, ErrOutOfRange
	}
	derived, ok := DateTimeFromTimestamp(ts, 0)
	if !ok {
		return DateTime{}, ErrOutOfRange
	}

	scratch := *fs
	if scratch.second.set && scratch.second.value == 60 {
		// a leap second is pinned to the end of a minute; the timestamp
		// may name either the 59th second or the one right after it
		switch derived.Time().Second() {
		case 59:
		case 0:
			derived, ok = derived.AddSeconds(-1)
			if !ok {
				return DateTime{}, ErrOutOfRange
			}
		default:
			return DateTime{}, ErrImpossible
		}
	} else {
		if err := scratch.SetSecond(int64(derived.Time().Second())); err != nil {
			return DateTime{}, err
		}
	}
	if err := scratch.SetYear(int64(derived.Date().Year())); err != nil {
		return DateTime{}, err
	}
	if err := scratch.SetOrdinal(int64(derived.Date().Ordinal())); err != nil {
		return DateTime{}, err
	}
	if err := scratch.SetHour(int64(derived.Time().Hour())); err != nil {
		return DateTime{}, err
	}
	if err := scratch.SetMinute(int64(derived.Time().Minute())); err != nil {
		return DateTime{}, err
	}

	date, err := scratch.ToDate()
	if err != nil {
		return DateTime{}, err
	}
	timeOfDay, err := scratch.ToTime()
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(date, timeOfDay), nil
}

// ToFixedOffset resolves the offset field into a fixed UTC offset.
func (fs *FieldSet) ToFixedOffset() (FixedOffset, error) {
	if !fs.offset.set {
		return 0, ErrOutOfRange
	}
	off, ok := NewFixedOffset(int(fs.offset.value))
	if !ok {
		return 0, ErrOutOfRange
	}
	return off, nil
}

// ToZonedDateTime resolves the populated fields, which must include the
// offset, into an instant at that fixed offset.
func (fs *FieldSet) ToZonedDateTime() (ZonedDateTime, error) {
	if !fs.offset.set {
		return ZonedDateTime{}, notEnoughError("offset not set")
	}
	datetime, err := fs.ToDateTimeWithOffset(int(fs.offset.value))
	if err != nil {
		return ZonedDateTime{}, err
	}
	off, ok := NewFixedOffset(int(fs.offset.value))
	if !ok {
		return ZonedDateTime{}, ErrOutOfRange
	}
	// the UTC reading of the instant must stay representable
	if _, ok := datetime.AddSeconds(-int64(off)); !ok {
		return ZonedDateTime{}, ErrOutOfRange
	}
	result := off.ResolveLocal(datetime)
	switch result.kind {
	case localSingle:
		return result.min, nil
	case localAmbiguous:
		return ZonedDateTime{}, ErrNotEnough
	default:
		return ZonedDateTime{}, ErrImpossible
	}
}

// ToZonedDateTimeIn resolves the populated fields into an instant in the
// given zone. A populated timestamp supplies the offset guess needed to
// interpret the other fields as local time; otherwise the guess is zero.
// An ambiguous local reading is disambiguated by the offset field when
// populated: ErrImpossible when it matches neither candidate, ErrNotEnough
// when it cannot tell them apart.
func (fs *FieldSet) ToZonedDateTimeIn(zone Zone) (ZonedDateTime, error) {
	guessed := 0
	if fs.timestamp.set {
		instant, ok := DateTimeFromTimestamp(fs.timestamp.value, int(fs.nanosecond.or(0)))
		if !ok {
			return ZonedDateTime{}, ErrOutOfRange
		}
		guessed = zone.OffsetAt(instant)
	}
	datetime, err := fs.ToDateTimeWithOffset(guessed)
	if err != nil {
		return ZonedDateTime{}, err
	}

	offsetMatches := func(z ZonedDateTime) bool {
		return !fs.offset.set || z.Offset() == int(fs.offset.value)
	}
	result := zone.ResolveLocal(datetime)
	switch result.kind {
	case localSingle:
		if !offsetMatches(result.min) {
			return ZonedDateTime{}, ErrImpossible
		}
		return result.min, nil
	case localAmbiguous:
		minOK, maxOK := offsetMatches(result.min), offsetMatches(result.max)
		switch {
		case minOK && maxOK:
			return ZonedDateTime{}, ErrNotEnough
		case minOK:
			return result.min, nil
		case maxOK:
			return result.max, nil
		default:
			return ZonedDateTime{}, ErrImpossible
		}
	default:
		return ZonedDateTime{}, ErrImpossible
	}
}
