package domain

import "time"

// Event is a single ingested error/log record. ReceivedAt and ID are assigned
// by the store when the row is accepted.
type Event struct {
	ID            int64
	ApplicationID int64
	OccurredAt    time.Time
	ReceivedAt    time.Time
	Level         Level
	Message       string
	Stack         Document
	Tags          Document
}

type EventPage struct {
	Items      []Event
	NextOffset *int
}
