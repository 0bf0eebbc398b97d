package pgdb

import (
	"context"
	"errors"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogHandler/pkg/errors"
	"github.com/Egor213/LogHandler/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var applicationColumns = []string{"id", "name", "ingest_key", "created_at"}

type ApplicationRepo struct {
	*postgres.Postgres
}

func NewApplicationRepo(pg *postgres.Postgres) *ApplicationRepo {
	return &ApplicationRepo{pg}
}

func (r *ApplicationRepo) CreateApplication(ctx context.Context, name, ingestKey string) (domain.Application, error) {
	sql, args, err := r.Builder.
		Insert("application").
		Columns("name", "ingest_key").
		Values(name, ingestKey).
		Suffix("RETURNING id, name, ingest_key, created_at").
		ToSql()
	if err != nil {
		return domain.Application{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Application{}, errorsUtils.WrapPathErr(err)
	}

	app, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.Application])
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return domain.Application{}, repoerrs.ErrAlreadyExists
		}
		return domain.Application{}, errorsUtils.WrapPathErr(err)
	}

	return app, nil
}

func (r *ApplicationRepo) GetApplication(ctx context.Context, id int64) (domain.Application, error) {
	sql, args, err := r.Builder.
		Select(applicationColumns...).
		From("application").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Application{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Application{}, errorsUtils.WrapPathErr(err)
	}

	app, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Application{}, repoerrs.ErrNotFound
		}
		return domain.Application{}, errorsUtils.WrapPathErr(err)
	}

	return app, nil
}

func (r *ApplicationRepo) ListApplications(ctx context.Context) ([]domain.Application, error) {
	sql, args, err := r.Builder.
		Select(applicationColumns...).
		From("application").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Application])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return apps, nil
}
