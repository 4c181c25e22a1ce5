package datemath

import "time"

// DueDate is the result of parsing free text for a due date.
// When Found is false, At and AllDay are meaningless.
type DueDate struct {
	At     time.Time
	AllDay bool
	Found  bool
}

// clockTime is an explicit time-of-day mentioned in the input.
type clockTime struct {
	hours   int
	minutes int
}
