package datefield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromYMD(t *testing.T) {
	d, ok := DateFromYMD(1970, 1, 1)
	require.True(t, ok)
	assert.Equal(t, Thursday, d.Weekday())
	assert.Equal(t, 1, d.Ordinal())
	assert.Equal(t, "1970-01-01", d.String())

	d, ok = DateFromYMD(2000, 2, 29)
	require.True(t, ok)
	assert.Equal(t, 60, d.Ordinal())

	for _, c := range []struct{ y, m, d int }{
		{1900, 2, 29},
		{2001, 2, 29},
		{2014, 0, 1},
		{2014, 13, 1},
		{2014, 4, 31},
		{2014, 1, 0},
		{MaxYear + 1, 1, 1},
		{MinYear - 1, 1, 1},
	} {
		_, ok := DateFromYMD(c.y, c.m, c.d)
		assert.False(t, ok, "%04d-%02d-%02d", c.y, c.m, c.d)
	}

	_, ok = DateFromYMD(MaxYear, 12, 31)
	assert.True(t, ok)
	_, ok = DateFromYMD(MinYear, 1, 1)
	assert.True(t, ok)
}

func TestDateFromYearOrdinal(t *testing.T) {
	d, ok := DateFromYearOrdinal(2000, 366)
	require.True(t, ok)
	assert.Equal(t, mustYMD(t, 2000, 12, 31), d)

	d, ok = DateFromYearOrdinal(2100, 59)
	require.True(t, ok)
	assert.Equal(t, mustYMD(t, 2100, 2, 28), d)

	_, ok = DateFromYearOrdinal(2001, 366)
	assert.False(t, ok)
	_, ok = DateFromYearOrdinal(2000, 0)
	assert.False(t, ok)
}

func TestDateRoundTrip(t *testing.T) {
	for _, c := range []struct {
		y, m, d int
	}{
		{1970, 1, 1},
		{2014, 12, 31},
		{2000, 2, 29},
		{1600, 3, 1},
		{-1, 12, 31},
		{MinYear, 1, 1},
		{MaxYear, 12, 31},
	} {
		date, ok := DateFromYMD(c.y, c.m, c.d)
		require.True(t, ok)
		assert.Equal(t, c.y, date.Year())
		assert.Equal(t, c.m, date.Month())
		assert.Equal(t, c.d, date.Day())
	}
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, Saturday, mustYMD(t, 2000, 1, 1).Weekday())
	assert.Equal(t, Wednesday, mustYMD(t, 2014, 12, 31).Weekday())
	assert.Equal(t, Monday, mustYMD(t, 1969, 12, 29).Weekday())

	assert.Equal(t, 0, Monday.DaysFromMonday())
	assert.Equal(t, 6, Sunday.DaysFromMonday())
	assert.Equal(t, 1, Monday.DaysFromSunday())
	assert.Equal(t, 0, Sunday.DaysFromSunday())
}

func TestISOWeek(t *testing.T) {
	for _, c := range []struct {
		y, m, d int
		isoYear int
		isoWeek int
	}{
		{2014, 12, 31, 2015, 1},
		{2015, 1, 1, 2015, 1},
		{2004, 12, 31, 2004, 53},
		{2005, 1, 1, 2004, 53},
		{2005, 1, 3, 2005, 1},
		{2007, 1, 1, 2007, 1},
		{2006, 12, 31, 2006, 52},
	} {
		isoYear, isoWeek := mustYMD(t, c.y, c.m, c.d).ISOWeek()
		assert.Equal(t, c.isoYear, isoYear, "%04d-%02d-%02d", c.y, c.m, c.d)
		assert.Equal(t, c.isoWeek, isoWeek, "%04d-%02d-%02d", c.y, c.m, c.d)
	}
}

func TestDateFromISOWeek(t *testing.T) {
	d, ok := DateFromISOWeek(2004, 53, Friday)
	require.True(t, ok)
	assert.Equal(t, mustYMD(t, 2004, 12, 31), d)

	d, ok = DateFromISOWeek(2004, 53, Saturday)
	require.True(t, ok)
	assert.Equal(t, mustYMD(t, 2005, 1, 1), d)

	d, ok = DateFromISOWeek(2015, 1, Wednesday)
	require.True(t, ok)
	assert.Equal(t, mustYMD(t, 2014, 12, 31), d)

	_, ok = DateFromISOWeek(2005, 53, Monday)
	assert.False(t, ok, "2005 has 52 ISO weeks")
	_, ok = DateFromISOWeek(2004, 0, Monday)
	assert.False(t, ok)
	_, ok = DateFromISOWeek(2004, 1, Weekday(7))
	assert.False(t, ok)
}

func TestWeeksFrom(t *testing.T) {
	// 2000-01-01 is a Saturday; the first Sunday-started week begins on
	// January 2nd and the first Monday-started week on January 3rd.
	assert.Equal(t, 0, mustYMD(t, 2000, 1, 1).WeeksFrom(Sunday))
	assert.Equal(t, 0, mustYMD(t, 2000, 1, 1).WeeksFrom(Monday))
	assert.Equal(t, 1, mustYMD(t, 2000, 1, 2).WeeksFrom(Sunday))
	assert.Equal(t, 0, mustYMD(t, 2000, 1, 2).WeeksFrom(Monday))
	assert.Equal(t, 1, mustYMD(t, 2000, 1, 3).WeeksFrom(Monday))
	assert.Equal(t, 53, mustYMD(t, 2000, 12, 31).WeeksFrom(Sunday))
}

func TestAddDays(t *testing.T) {
	d, ok := mustYMD(t, 2000, 2, 28).AddDays(2)
	require.True(t, ok)
	assert.Equal(t, mustYMD(t, 2000, 3, 1), d)

	d, ok = mustYMD(t, 2000, 1, 1).AddDays(-1)
	require.True(t, ok)
	assert.Equal(t, mustYMD(t, 1999, 12, 31), d)

	_, ok = mustYMD(t, MaxYear, 12, 31).AddDays(1)
	assert.False(t, ok)
	_, ok = mustYMD(t, MinYear, 1, 1).AddDays(-1)
	assert.False(t, ok)
}

func TestParseWeekday(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Weekday
	}{
		{"Monday", Monday},
		{"monday", Monday},
		{"Mon", Monday},
		{"sun", Sunday},
		{"SATURDAY", Saturday},
	} {
		got, err := ParseWeekday(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
	_, err := ParseWeekday("Mo")
	assert.Error(t, err)
	_, err = ParseWeekday("")
	assert.Error(t, err)
}
