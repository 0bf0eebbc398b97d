package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEventPayload(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		wantErr error
	}{
		{
			name:    "minimal valid",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"ERROR","message":"boom"}`,
		},
		{
			name:    "offset timezone and documents",
			payload: `{"occurred_at":"2024-05-01T13:00:00.123+03:00","level":"INFO","message":"ok","stack":{"frames":[]},"tags":{"env":"prod"}}`,
		},
		{
			name:    "explicit nulls for optional fields",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"DEBUG","message":"m","stack":null,"tags":null}`,
		},
		{
			name:    "not an object",
			payload: `["occurred_at"]`,
			wantErr: service.ErrInvalidPayload,
		},
		{
			name:    "malformed json",
			payload: `{"occurred_at":`,
			wantErr: service.ErrInvalidPayload,
		},
		{
			name:    "empty body",
			payload: ``,
			wantErr: service.ErrInvalidPayload,
		},
		{
			name:    "missing occurred_at",
			payload: `{"level":"ERROR","message":"boom"}`,
			wantErr: service.ErrInvalidTimestamp,
		},
		{
			name:    "timestamp without zone",
			payload: `{"occurred_at":"2024-05-01T10:00:00","level":"ERROR","message":"boom"}`,
			wantErr: service.ErrInvalidTimestamp,
		},
		{
			name:    "unparseable timestamp",
			payload: `{"occurred_at":"yesterday","level":"ERROR","message":"boom"}`,
			wantErr: service.ErrInvalidTimestamp,
		},
		{
			name:    "numeric timestamp",
			payload: `{"occurred_at":1714557600,"level":"ERROR","message":"boom"}`,
			wantErr: service.ErrInvalidTimestamp,
		},
		{
			name:    "unknown level",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"FATAL","message":"boom"}`,
			wantErr: service.ErrInvalidLevel,
		},
		{
			name:    "lowercase level",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"error","message":"boom"}`,
			wantErr: service.ErrInvalidLevel,
		},
		{
			name:    "empty message",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"ERROR","message":"  "}`,
			wantErr: service.ErrInvalidPayload,
		},
		{
			name:    "message with escaped NUL",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"ERROR","message":"boom\u0000x"}`,
			wantErr: service.ErrInvalidPayload,
		},
		{
			name:    "message with invalid UTF-8",
			payload: "{\"occurred_at\":\"2024-05-01T10:00:00Z\",\"level\":\"ERROR\",\"message\":\"bad \xff\"}",
			wantErr: service.ErrInvalidPayload,
		},
		{
			name:    "message too long",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"ERROR","message":"` + strings.Repeat("x", 256) + `"}`,
			wantErr: service.ErrMessageTooLong,
		},
		{
			name:    "stack is a list",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"ERROR","message":"boom","stack":["a","b"]}`,
			wantErr: service.ErrInvalidPayload,
		},
		{
			name:    "tags is a string",
			payload: `{"occurred_at":"2024-05-01T10:00:00Z","level":"ERROR","message":"boom","tags":"env=prod"}`,
			wantErr: service.ErrInvalidPayload,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.ValidateEventPayload([]byte(tc.payload))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateEventPayload_Normalizes(t *testing.T) {
	payload := `{"occurred_at":"2024-05-01T13:00:00+03:00","level":"WARNING","message":"disk almost full","tags":{"z":1, "a":2}}`

	event, err := service.ValidateEventPayload([]byte(payload))
	require.NoError(t, err)

	assert.True(t, event.OccurredAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.LevelWarning, event.Level)
	assert.Equal(t, "disk almost full", event.Message)
	assert.Equal(t, `{"z":1, "a":2}`, string(event.Tags), "documents are kept verbatim")
	assert.Nil(t, event.Stack)
	assert.Zero(t, event.ReceivedAt, "received_at is assigned by the store")
	assert.Zero(t, event.ID)
}

func TestValidateEventPayload_MessageLengthCountsCharacters(t *testing.T) {
	message := strings.Repeat("ж", service.MaxMessageLength)
	payload := `{"occurred_at":"2024-05-01T10:00:00Z","level":"ERROR","message":"` + message + `"}`

	event, err := service.ValidateEventPayload([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, message, event.Message)
}

func TestParseTimestamp(t *testing.T) {
	got, err := service.ParseTimestamp("2024-05-01 10:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))

	_, err = service.ParseTimestamp("2024-05-01")
	assert.ErrorIs(t, err, service.ErrInvalidTimestamp)
}

func TestErrorKind(t *testing.T) {
	_, err := service.ValidateEventPayload([]byte(`{"occurred_at":"2024-05-01T10:00:00Z","level":"NOPE","message":"m"}`))
	assert.Equal(t, "InvalidLevel", service.ErrorKind(err))
	assert.True(t, service.IsValidationError(err))

	assert.Equal(t, "UnknownApplication", service.ErrorKind(service.ErrUnknownApplication))
	assert.False(t, service.IsValidationError(service.ErrUnknownApplication))
	assert.Equal(t, "Conflict", service.ErrorKind(service.ErrApplicationAlreadyExists))
	assert.Equal(t, "Internal", service.ErrorKind(assert.AnError))
}
