package service

import "time"

const (
	MinPageLimit = 1
	MaxPageLimit = 50

	DefaultTopMessagesLimit = 10
	DefaultInterval         = "hour"

	// MaxTimeseriesBuckets caps the size of a zero-filled grid.
	MaxTimeseriesBuckets = 10000
)

// ListEventsInput is a page request. Level is the raw value from the caller,
// a nil Since or Until leaves that side of the window open.
type ListEventsInput struct {
	ApplicationID int64
	Level         string
	Since         *time.Time
	Until         *time.Time
	Limit         int
	Offset        int
}

// WindowInput is a closed window. Both bounds are always applied, the zero
// time included.
type WindowInput struct {
	ApplicationID int64
	Since         time.Time
	Until         time.Time
}

type TimeseriesInput struct {
	WindowInput
	Interval string
	Level    string
}

type TopMessagesInput struct {
	WindowInput
	Level string
	Limit int
}
