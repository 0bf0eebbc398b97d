package httpv1

import (
	"time"

	"github.com/Egor213/LogHandler/internal/domain"
)

type appPath struct {
	AppID string `param:"app_id" validate:"required,number"`
}

type createApplicationPath struct {
	Name string `param:"name" validate:"required,max=255"`
}

type listEventsQuery struct {
	Limit  string `query:"limit" validate:"omitempty,number"`
	Offset string `query:"offset" validate:"omitempty,number"`
	Level  string `query:"level"`
	Since  string `query:"since"`
	Until  string `query:"until"`
}

type timeseriesQuery struct {
	Since    string `query:"since" validate:"required"`
	Until    string `query:"until" validate:"required"`
	Interval string `query:"interval"`
	Level    string `query:"level"`
}

type byLevelQuery struct {
	Since string `query:"since" validate:"required"`
	Until string `query:"until" validate:"required"`
}

type topMessagesQuery struct {
	Since string `query:"since" validate:"required"`
	Until string `query:"until" validate:"required"`
	Limit string `query:"limit" validate:"omitempty,number"`
	Level string `query:"level"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type applicationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	IngestKey string    `json:"ingest_key,omitempty"`
}

type eventResponse struct {
	ID            int64           `json:"id"`
	ApplicationID int64           `json:"application_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	ReceivedAt    time.Time       `json:"received_at"`
	Level         string          `json:"level"`
	Message       string          `json:"message"`
	Stack         domain.Document `json:"stack,omitempty"`
	Tags          domain.Document `json:"tags,omitempty"`
}

type eventListResponse struct {
	Items      []eventResponse `json:"items"`
	NextOffset *int            `json:"next_offset"`
}

type bucketResponse struct {
	BucketStart time.Time `json:"bucket_start"`
	Count       int64     `json:"count"`
}

type timeseriesResponse struct {
	Interval string           `json:"interval"`
	Since    time.Time        `json:"since"`
	Until    time.Time        `json:"until"`
	Series   []bucketResponse `json:"series"`
}

type levelCountResponse struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

type byLevelResponse struct {
	Since time.Time            `json:"since"`
	Until time.Time            `json:"until"`
	Items []levelCountResponse `json:"items"`
}

type messageStatResponse struct {
	Message  string    `json:"message"`
	Count    int64     `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

type topMessagesResponse struct {
	Limit int                   `json:"limit"`
	Items []messageStatResponse `json:"items"`
}
