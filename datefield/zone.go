package datefield

import (
	"fmt"
	"sort"
	"time"
)

// maxOffsetSeconds bounds a UTC offset to strictly less than one day.
const maxOffsetSeconds = 86_400

// FixedOffset is a constant UTC offset, in seconds east of Greenwich.
type FixedOffset int32

var _ Zone = FixedOffset(0)

// NewFixedOffset returns the fixed offset with the given number of seconds
// east of UTC, or false if the magnitude is a day or more.
func NewFixedOffset(seconds int) (FixedOffset, bool) {
	if seconds <= -maxOffsetSeconds || seconds >= maxOffsetSeconds {
		return 0, false
	}
	return FixedOffset(seconds), true
}

// Seconds returns the offset in seconds east of UTC.
func (o FixedOffset) Seconds() int {
	return int(o)
}

func (o FixedOffset) String() string {
	secs, sign := int(o), "+"
	if secs < 0 {
		secs, sign = -secs, "-"
	}
	if secs%60 != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, secs/3600, secs/60%60, secs%60)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, secs/60%60)
}

// OffsetAt implements Zone. The offset never varies.
func (o FixedOffset) OffsetAt(DateTime) int {
	return int(o)
}

// ResolveLocal implements Zone. A fixed offset maps every wall-clock
// reading to exactly one instant.
func (o FixedOffset) ResolveLocal(local DateTime) LocalResult {
	return LocalSingle(ZonedDateTime{local: local, offset: int32(o)})
}

// ZonedDateTime couples a wall-clock reading with the UTC offset in force
// at that instant.
type ZonedDateTime struct {
	local  DateTime
	offset int32
}

// Local returns the wall-clock date and time.
func (z ZonedDateTime) Local() DateTime {
	return z.local
}

// Offset returns the UTC offset at the instant, in seconds east.
func (z ZonedDateTime) Offset() int {
	return int(z.offset)
}

// UTC returns the date and time read on the UTC clock at the same instant.
func (z ZonedDateTime) UTC() DateTime {
	utc, _ := z.local.AddSeconds(-int64(z.offset))
	return utc
}

// Timestamp returns the number of non-leap seconds between the Unix epoch
// and the instant.
func (z ZonedDateTime) Timestamp() int64 {
	return z.local.Timestamp() - int64(z.offset)
}

func (z ZonedDateTime) String() string {
	return z.local.String() + " " + FixedOffset(z.offset).String()
}

// LocalResult is the outcome of mapping a wall-clock reading onto a zone's
// timeline: no instant (the reading falls in a clock-forward gap), a
// unique instant, or two instants (a clock-back overlap).
type LocalResult struct {
	kind localKind
	min  ZonedDateTime
	max  ZonedDateTime
}

type localKind uint8

const (
	localNone localKind = iota
	localSingle
	localAmbiguous
)

// LocalNone returns the result for a reading with no valid instant.
func LocalNone() LocalResult {
	return LocalResult{kind: localNone}
}

// LocalSingle returns the result for a reading with a unique instant.
func LocalSingle(z ZonedDateTime) LocalResult {
	return LocalResult{kind: localSingle, min: z, max: z}
}

// LocalAmbiguous returns the result for a reading matched by two instants,
// earliest first.
func LocalAmbiguous(min, max ZonedDateTime) LocalResult {
	return LocalResult{kind: localAmbiguous, min: min, max: max}
}

// Single returns the unique instant, if any.
func (r LocalResult) Single() (ZonedDateTime, bool) {
	return r.min, r.kind == localSingle
}

// Ambiguous returns both candidate instants of an ambiguous reading.
func (r LocalResult) Ambiguous() (min, max ZonedDateTime, ok bool) {
	return r.min, r.max, r.kind == localAmbiguous
}

// Zone supplies UTC offsets for instants and interprets wall-clock
// readings, the one place calendar resolution depends on external policy.
type Zone interface {
	// OffsetAt returns the offset in force at the given UTC instant,
	// in seconds east of Greenwich.
	OffsetAt(utc DateTime) int

	// ResolveLocal maps a wall-clock reading onto the zone's timeline.
	ResolveLocal(local DateTime) LocalResult
}

// LocationZone adapts a standard library time.Location to the Zone
// interface.
type LocationZone struct {
	loc *time.Location
}

var _ Zone = LocationZone{}

// ZoneFromLocation wraps a time.Location. A nil location selects UTC.
func ZoneFromLocation(loc *time.Location) LocationZone {
	if loc == nil {
		loc = time.UTC
	}
	return LocationZone{loc: loc}
}

// OffsetAt implements Zone.
func (z LocationZone) OffsetAt(utc DateTime) int {
	return z.offsetAtUnix(utc.Timestamp())
}

func (z LocationZone) offsetAtUnix(ts int64) int {
	_, offset := time.Unix(ts, 0).In(z.loc).Zone()
	return offset
}

// ResolveLocal implements Zone. The reading is tried against every offset
// the location uses within a day of it; offsets that round-trip yield
// candidate instants.
func (z LocationZone) ResolveLocal(local DateTime) LocalResult {
	ts := local.Timestamp()

	var offsets []int
	for _, probe := range [...]int64{ts - secondsInDay, ts, ts + secondsInDay} {
		offset := z.offsetAtUnix(probe)
		seen := false
		for _, o := range offsets {
			seen = seen || o == offset
		}
		if !seen {
			offsets = append(offsets, offset)
		}
	}

	var hits []ZonedDateTime
	for _, offset := range offsets {
		if z.offsetAtUnix(ts-int64(offset)) == offset {
			hits = append(hits, ZonedDateTime{local: local, offset: int32(offset)})
		}
	}
	switch len(hits) {
	case 0:
		return LocalNone()
	case 1:
		return LocalSingle(hits[0])
	default:
		// earliest instant first: a larger offset means an earlier instant
		sort.Slice(hits, func(i, j int) bool { return hits[i].offset > hits[j].offset })
		return LocalAmbiguous(hits[0], hits[len(hits)-1])
	}
}
