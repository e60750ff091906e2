package booking

import "time"

// searchHorizonDays bounds the forward scan for an open slot.
// Media is rented by the month; looking further than a year out is pointless.
const searchHorizonDays = 365

// AvailabilityResult is the outcome of a date-range availability check.
// NextAvailableDate and SuggestedEndDate are only set when the requested
// range is taken and an alternative slot of equal length was found.
type AvailabilityResult struct {
	Available           bool
	ConflictingBookings []*Booking
	NextAvailableDate   *time.Time
	SuggestedEndDate    *time.Time
}

// Overlaps reports whether the booking's date range overlaps [start, end].
// Intervals are closed on both sides: touching boundaries count as a
// conflict, so back-to-back bookings on the same day are not allowed.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !start.After(b.EndDate) && !end.Before(b.StartDate)
}

// findConflicts returns every active booking overlapping [start, end].
func findConflicts(bookings []*Booking, start, end time.Time) []*Booking {
	var conflicts []*Booking
	for _, b := range bookings {
		if b.Overlaps(start, end) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// nextOpenSlot proposes the earliest interval of the same length as the
// request that clears the conflicting bookings. The scan starts the day
// after the earliest conflict ends and walks forward one day at a time,
// giving up once the horizon is exhausted.
func nextOpenSlot(conflicts []*Booking, start, end time.Time) (*time.Time, *time.Time) {
	if len(conflicts) == 0 {
		return nil, nil
	}

	durationDays := daysBetween(start, end)

	earliestEnd := conflicts[0].EndDate
	for _, c := range conflicts[1:] {
		if c.EndDate.Before(earliestEnd) {
			earliestEnd = c.EndDate
		}
	}

	candidate := earliestEnd.AddDate(0, 0, 1)
	for i := 0; i < searchHorizonDays; i++ {
		candidateEnd := candidate.AddDate(0, 0, durationDays)

		clear := true
		for _, c := range conflicts {
			if c.Overlaps(candidate, candidateEnd) {
				clear = false
				break
			}
		}
		if clear {
			return &candidate, &candidateEnd
		}

		candidate = candidate.AddDate(0, 0, 1)
	}

	return nil, nil
}

// daysBetween returns whole calendar days from a to b, assuming both are
// normalized to midnight.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
