package repotypes

import (
	"time"

	"github.com/Egor213/LogHandler/internal/domain"
)

// EventFilter selects the events of one application. An empty Level or a nil
// Since or Until means "not constrained". Since is inclusive, Until exclusive.
type EventFilter struct {
	ApplicationID int64
	Level         domain.Level
	Since         *time.Time
	Until         *time.Time
}

type Page struct {
	Limit  uint64
	Offset uint64
}
