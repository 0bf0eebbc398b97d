package pgdb_test

import (
	"testing"
	"time"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo/pgdb"
	"github.com/Egor213/LogHandler/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEventQueryFilters(t *testing.T) {
	since := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var zero time.Time

	testCases := []struct {
		name     string
		filter   repotypes.EventFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "application scope only",
			filter:   repotypes.EventFilter{ApplicationID: 7},
			wantSQL:  "(application_id = ?)",
			wantArgs: []any{int64(7)},
		},
		{
			name: "all constraints",
			filter: repotypes.EventFilter{
				ApplicationID: 7,
				Level:         domain.LevelError,
				Since:         &since,
				Until:         &until,
			},
			wantSQL:  "(application_id = ? AND level = ? AND received_at >= ? AND received_at < ?)",
			wantArgs: []any{int64(7), "ERROR", since, until},
		},
		{
			name:     "open ended window",
			filter:   repotypes.EventFilter{ApplicationID: 1, Until: &until},
			wantSQL:  "(application_id = ? AND received_at < ?)",
			wantArgs: []any{int64(1), until},
		},
		{
			name:     "explicit zero since is still a bound",
			filter:   repotypes.EventFilter{ApplicationID: 1, Since: &zero},
			wantSQL:  "(application_id = ? AND received_at >= ?)",
			wantArgs: []any{int64(1), time.Time{}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := sq.And(pgdb.BuildEventQueryFilters(tc.filter)).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestBuildEventQueryFilters_DollarPlaceholders(t *testing.T) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	filter := repotypes.EventFilter{ApplicationID: 3, Level: domain.LevelInfo}

	sql, _, err := builder.
		Select("id").
		From("event").
		Where(sq.And(pgdb.BuildEventQueryFilters(filter))).
		OrderBy("received_at DESC", "id DESC").
		Limit(10).
		Offset(20).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id FROM event WHERE (application_id = $1 AND level = $2) ORDER BY received_at DESC, id DESC LIMIT 10 OFFSET 20",
		sql,
	)
}
