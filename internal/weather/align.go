package weather

import (
	"fmt"
	"math"
	"time"
)

// ParseInitTime parses a YYYYMMDDHH model initialization timestamp as UTC
func ParseInitTime(s string) (time.Time, error) {
	t, err := time.Parse(InitTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidInitTime, s, err)
	}
	return t, nil
}

// NormalizeCount turns a missing or non-positive entry count into 1
func NormalizeCount(count int) int {
	if count < 1 {
		return 1
	}
	return count
}

// AdjustedInit relabels the UTC init hour onto now's clock by adding now's UTC
// offset in whole hours (truncated toward zero, so +05:30 adds 5) and reading
// the result as a wall-clock time in now's zone. Half-hour zones therefore end
// up off by the leftover minutes. Hours past 23 or below 0 roll over into the
// neighbouring day.
func AdjustedInit(init, now time.Time) time.Time {
	_, offset := now.Zone()
	offsetHours := offset / 3600
	return time.Date(init.Year(), init.Month(), init.Day(), init.Hour()+offsetHours, 0, 0, 0, now.Location())
}

// StartIndex returns the index of the entry to show first at time now.
// Entry 0 is already StepHours past init, hence the -1.
func StartIndex(init, now time.Time) int {
	diff := int(math.Floor(now.Sub(AdjustedInit(init, now)).Hours()))
	return floorDiv(diff, StepHours) - 1
}

// Select picks up to count decoded entries starting at the current bucket.
// It stops at the first index outside the data series, so fewer than count
// slots (possibly none) may be returned.
func Select(f *Forecast, now time.Time, count int) []Slot {
	count = NormalizeCount(count)
	adjusted := AdjustedInit(f.Init, now)
	start := StartIndex(f.Init, now)

	slots := make([]Slot, 0, min(count, len(f.Entries)))
	for i := 0; i < count; i++ {
		idx := start + i
		if idx < 0 || idx >= len(f.Entries) {
			break
		}
		slots = append(slots, newSlot(adjusted, idx, f.Entries[idx]))
	}
	return slots
}

// Series decodes the whole data series with timestamps on now's clock
func Series(f *Forecast, now time.Time) []Slot {
	adjusted := AdjustedInit(f.Init, now)
	slots := make([]Slot, 0, len(f.Entries))
	for i, e := range f.Entries {
		slots = append(slots, newSlot(adjusted, i, e))
	}
	return slots
}

func newSlot(adjustedInit time.Time, idx int, e Entry) Slot {
	return Slot{
		Index:   idx,
		ValidAt: adjustedInit.Add(time.Duration(e.Timepoint) * time.Hour),
		Entry:   Decode(e),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
