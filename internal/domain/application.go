package domain

import "time"

type Application struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	IngestKey string    `db:"ingest_key"`
	CreatedAt time.Time `db:"created_at"`
}
