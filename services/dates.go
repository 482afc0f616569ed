package services

import "time"

const dateLayout = "2006-01-02"

// AreDatesConflicting reports whether two date ranges share at least one
// day. Bounds are inclusive: a checkout on another reservation's checkin
// day counts as a conflict.
func AreDatesConflicting(startA, endA, startB, endB time.Time) bool {
	return !startA.After(endB) && !startB.After(endA)
}
