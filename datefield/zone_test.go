package datefield

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedZone lets a test dictate how a wall-clock reading is interpreted.
type scriptedZone struct {
	guess   int
	resolve func(local DateTime) LocalResult
}

func (z scriptedZone) OffsetAt(DateTime) int { return z.guess }

func (z scriptedZone) ResolveLocal(local DateTime) LocalResult { return z.resolve(local) }

func TestNewFixedOffset(t *testing.T) {
	for _, secs := range []int{0, 32400, -18000, 86399, -86399} {
		off, ok := NewFixedOffset(secs)
		require.True(t, ok)
		assert.Equal(t, secs, off.Seconds())
	}
	for _, secs := range []int{86400, -86400, 1 << 20} {
		_, ok := NewFixedOffset(secs)
		assert.False(t, ok)
	}
}

func TestFixedOffsetString(t *testing.T) {
	off, _ := NewFixedOffset(32400)
	assert.Equal(t, "+09:00", off.String())
	off, _ = NewFixedOffset(-18000)
	assert.Equal(t, "-05:00", off.String())
	off, _ = NewFixedOffset(-9876)
	assert.Equal(t, "-02:44:36", off.String())
}

func TestToFixedOffset(t *testing.T) {
	fs := NewFieldSet()
	_, err := fs.ToFixedOffset()
	assert.ErrorIs(t, err, ErrOutOfRange)

	require.NoError(t, fs.SetOffset(32400))
	off, err := fs.ToFixedOffset()
	require.NoError(t, err)
	assert.Equal(t, 32400, off.Seconds())

	fs = NewFieldSet()
	require.NoError(t, fs.SetOffset(86400))
	_, err = fs.ToFixedOffset()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestToZonedDateTime(t *testing.T) {
	newFS := func(offset int64) *FieldSet {
		fs := NewFieldSet()
		require.NoError(t, fs.SetYear(2014))
		require.NoError(t, fs.SetMonth(12))
		require.NoError(t, fs.SetDay(31))
		require.NoError(t, fs.SetHour(4))
		require.NoError(t, fs.SetMinute(26))
		require.NoError(t, fs.SetSecond(40))
		require.NoError(t, fs.SetOffset(offset))
		return fs
	}

	zoned, err := newFS(0).ToZonedDateTime()
	require.NoError(t, err)
	assert.Equal(t, mustDateTime(t, 2014, 12, 31, 4, 26, 40, 0), zoned.Local())
	assert.Equal(t, 0, zoned.Offset())
	assert.Equal(t, int64(1_420_000_000), zoned.Timestamp())

	zoned, err = newFS(32400).ToZonedDateTime()
	require.NoError(t, err)
	assert.Equal(t, 32400, zoned.Offset())
	assert.Equal(t, int64(1_420_000_000-32400), zoned.Timestamp())

	// without the offset field nothing anchors the local reading
	fs := NewFieldSet()
	require.NoError(t, fs.SetYear(2014))
	require.NoError(t, fs.SetMonth(12))
	require.NoError(t, fs.SetDay(31))
	require.NoError(t, fs.SetHour(4))
	require.NoError(t, fs.SetMinute(26))
	_, err = fs.ToZonedDateTime()
	assert.ErrorIs(t, err, ErrNotEnough)

	// timestamp plus offset cross-check
	fs = newFS(32400)
	require.NoError(t, fs.SetTimestamp(1_420_000_000-32400))
	_, err = fs.ToZonedDateTime()
	require.NoError(t, err)

	fs = newFS(32400)
	require.NoError(t, fs.SetTimestamp(1_420_000_000))
	_, err = fs.ToZonedDateTime()
	assert.ErrorIs(t, err, ErrImpossible)
}

func TestToZonedDateTimeInSingle(t *testing.T) {
	fs := NewFieldSet()
	require.NoError(t, fs.SetYear(2015))
	require.NoError(t, fs.SetMonth(6))
	require.NoError(t, fs.SetDay(15))
	require.NoError(t, fs.SetHour(12))
	require.NoError(t, fs.SetMinute(0))

	zone := scriptedZone{
		guess: -14400,
		resolve: func(local DateTime) LocalResult {
			return LocalSingle(ZonedDateTime{local: local, offset: -14400})
		},
	}
	zoned, err := fs.ToZonedDateTimeIn(zone)
	require.NoError(t, err)
	assert.Equal(t, -14400, zoned.Offset())

	// a populated offset field must agree with the instant's offset
	require.NoError(t, fs.SetOffset(-14400))
	_, err = fs.ToZonedDateTimeIn(zone)
	require.NoError(t, err)

	fs2 := NewFieldSet()
	require.NoError(t, fs2.SetYear(2015))
	require.NoError(t, fs2.SetMonth(6))
	require.NoError(t, fs2.SetDay(15))
	require.NoError(t, fs2.SetHour(12))
	require.NoError(t, fs2.SetMinute(0))
	require.NoError(t, fs2.SetOffset(-18000))
	_, err = fs2.ToZonedDateTimeIn(zone)
	assert.ErrorIs(t, err, ErrImpossible)
}

func TestToZonedDateTimeInGap(t *testing.T) {
	fs := NewFieldSet()
	require.NoError(t, fs.SetYear(2015))
	require.NoError(t, fs.SetMonth(3))
	require.NoError(t, fs.SetDay(8))
	require.NoError(t, fs.SetHour(2))
	require.NoError(t, fs.SetMinute(30))

	zone := scriptedZone{
		resolve: func(DateTime) LocalResult { return LocalNone() },
	}
	_, err := fs.ToZonedDateTimeIn(zone)
	assert.ErrorIs(t, err, ErrImpossible)
}

func TestToZonedDateTimeInAmbiguous(t *testing.T) {
	newFS := func() *FieldSet {
		fs := NewFieldSet()
		require.NoError(t, fs.SetYear(2015))
		require.NoError(t, fs.SetMonth(11))
		require.NoError(t, fs.SetDay(1))
		require.NoError(t, fs.SetHour(1))
		require.NoError(t, fs.SetMinute(30))
		return fs
	}
	overlap := scriptedZone{
		resolve: func(local DateTime) LocalResult {
			return LocalAmbiguous(
				ZonedDateTime{local: local, offset: -14400},
				ZonedDateTime{local: local, offset: -18000},
			)
		},
	}

	// no offset field: nothing to disambiguate with
	_, err := newFS().ToZonedDateTimeIn(overlap)
	assert.ErrorIs(t, err, ErrNotEnough)

	// offset picks the earlier instant
	fs := newFS()
	require.NoError(t, fs.SetOffset(-14400))
	zoned, err := fs.ToZonedDateTimeIn(overlap)
	require.NoError(t, err)
	assert.Equal(t, -14400, zoned.Offset())

	// offset picks the later instant
	fs = newFS()
	require.NoError(t, fs.SetOffset(-18000))
	zoned, err = fs.ToZonedDateTimeIn(overlap)
	require.NoError(t, err)
	assert.Equal(t, -18000, zoned.Offset())

	// offset matches neither side
	fs = newFS()
	require.NoError(t, fs.SetOffset(-7200))
	_, err = fs.ToZonedDateTimeIn(overlap)
	assert.ErrorIs(t, err, ErrImpossible)

	// degenerate overlap where both sides share an offset
	degenerate := scriptedZone{
		resolve: func(local DateTime) LocalResult {
			early, _ := local.AddSeconds(-3600)
			return LocalAmbiguous(
				ZonedDateTime{local: early, offset: -18000},
				ZonedDateTime{local: local, offset: -18000},
			)
		},
	}
	fs = newFS()
	require.NoError(t, fs.SetOffset(-18000))
	_, err = fs.ToZonedDateTimeIn(degenerate)
	assert.ErrorIs(t, err, ErrNotEnough)
}

func TestToZonedDateTimeInGuessesFromTimestamp(t *testing.T) {
	// 2014-12-31 13:26:40 +09:00 is instant 1420000000; the timestamp
	// supplies the +09:00 guess that makes the local fields line up.
	fs := NewFieldSet()
	require.NoError(t, fs.SetYear(2014))
	require.NoError(t, fs.SetMonth(12))
	require.NoError(t, fs.SetDay(31))
	require.NoError(t, fs.SetHour(13))
	require.NoError(t, fs.SetMinute(26))
	require.NoError(t, fs.SetSecond(40))
	require.NoError(t, fs.SetTimestamp(1_420_000_000))

	tokyo := scriptedZone{
		guess: 32400,
		resolve: func(local DateTime) LocalResult {
			return LocalSingle(ZonedDateTime{local: local, offset: 32400})
		},
	}
	zoned, err := fs.ToZonedDateTimeIn(tokyo)
	require.NoError(t, err)
	assert.Equal(t, mustDateTime(t, 2014, 12, 31, 13, 26, 40, 0), zoned.Local())
	assert.Equal(t, int64(1_420_000_000), zoned.Timestamp())
}

func TestLocationZoneFixed(t *testing.T) {
	zone := ZoneFromLocation(time.FixedZone("UTC+9", 32400))
	local := mustDateTime(t, 2014, 12, 31, 13, 26, 40, 0)

	result := zone.ResolveLocal(local)
	zoned, ok := result.Single()
	require.True(t, ok)
	assert.Equal(t, 32400, zoned.Offset())
	assert.Equal(t, local.Timestamp()-32400, zoned.Timestamp())
}

func TestLocationZoneDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable:", err)
	}
	zone := ZoneFromLocation(loc)

	// fall-back overlap: 2015-11-01 01:30 occurred at both -04:00 and -05:00
	overlap := mustDateTime(t, 2015, 11, 1, 1, 30, 0, 0)
	min, max, ok := zone.ResolveLocal(overlap).Ambiguous()
	require.True(t, ok, "expected an ambiguous reading")
	assert.Equal(t, -14400, min.Offset())
	assert.Equal(t, -18000, max.Offset())
	assert.Equal(t, min.Timestamp()+3600, max.Timestamp())

	// spring-forward gap: 2015-03-08 02:30 never happened
	gap := mustDateTime(t, 2015, 3, 8, 2, 30, 0, 0)
	_, single := zone.ResolveLocal(gap).Single()
	_, _, ambiguous := zone.ResolveLocal(gap).Ambiguous()
	assert.False(t, single)
	assert.False(t, ambiguous)

	// a plain winter reading is unique
	unique := mustDateTime(t, 2015, 1, 15, 12, 0, 0, 0)
	zoned, ok := zone.ResolveLocal(unique).Single()
	require.True(t, ok)
	assert.Equal(t, -18000, zoned.Offset())

	// end to end through the resolver
	fs := NewFieldSet()
	require.NoError(t, fs.SetYear(2015))
	require.NoError(t, fs.SetMonth(11))
	require.NoError(t, fs.SetDay(1))
	require.NoError(t, fs.SetHour(1))
	require.NoError(t, fs.SetMinute(30))
	require.NoError(t, fs.SetOffset(-14400))
	zoned, err = fs.ToZonedDateTimeIn(zone)
	require.NoError(t, err)
	assert.Equal(t, -14400, zoned.Offset())
}
