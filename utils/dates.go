package utils

import (
	"rental-house-server/models"
)

// DayInRange reports whether day falls within [checkIn, checkOut], endpoints
// included. Both bounds count as occupied: the checkout day is not released
// for a same-day turnover.
func DayInRange(day, checkIn, checkOut models.Date) bool {
	return !day.Before(checkIn) && !day.After(checkOut)
}

// RangesOverlap reports whether two inclusive day ranges share at least one
// calendar day. A range always overlaps itself, and a stay ending on the day
// another begins counts as a conflict.
func RangesOverlap(inA, outA, inB, outB models.Date) bool {
	return !inA.After(outB) && !inB.After(outA)
}
