package pgdb

import (
	"fmt"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

// BuildEventQueryFilters translates the filter into predicates on the event
// table. Every read path goes through it so window edges stay identical.
func BuildEventQueryFilters(filter repotypes.EventFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{
		sq.Eq{"application_id": filter.ApplicationID},
	}

	if filter.Level != "" {
		conds = append(conds, sq.Eq{"level": string(filter.Level)})
	}
	if filter.Since != nil {
		conds = append(conds, sq.GtOrEq{"received_at": *filter.Since})
	}
	if filter.Until != nil {
		conds = append(conds, sq.Lt{"received_at": *filter.Until})
	}

	return conds
}

// bucketExpr aligns received_at to the interval in UTC. The interval comes
// from a closed set, never from raw input.
func bucketExpr(interval domain.Interval) string {
	return fmt.Sprintf("date_trunc('%s', received_at AT TIME ZONE 'UTC')", string(interval))
}

func documentArg(d domain.Document) any {
	if d.IsEmpty() {
		return nil
	}
	return string(d)
}
