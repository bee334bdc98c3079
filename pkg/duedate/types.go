package duedate

import "math"

// Undefined marks a component that carries no value. It matches the
// platform "undefined" sentinel reminders stores use for a missing hour.
const Undefined = math.MaxInt

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Components is a calendar date with an optional time of day.
type Components struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}
