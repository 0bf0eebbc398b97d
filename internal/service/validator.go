package service

import (
	"bytes"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/goccy/go-json"
)

const MaxMessageLength = 255

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
}

type eventPayload struct {
	OccurredAt json.RawMessage `json:"occurred_at"`
	Level      json.RawMessage `json:"level"`
	Message    json.RawMessage `json:"message"`
	Stack      json.RawMessage `json:"stack"`
	Tags       json.RawMessage `json:"tags"`
}

// ParseTimestamp accepts RFC 3339 timestamps. The zone designator is
// mandatory: "Z" or a numeric offset.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid(ErrInvalidTimestamp, "%q is not an RFC 3339 timestamp with time zone", s)
}

// ValidateEventPayload turns a raw JSON body into an event ready for insertion.
// ApplicationID, ID and ReceivedAt are left for the caller and the store.
func ValidateEventPayload(payload []byte) (domain.Event, error) {
	trimmed := bytes.TrimSpace(payload)
	if !isObject(trimmed) {
		return domain.Event{}, invalid(ErrInvalidPayload, "payload must be a JSON object")
	}

	var p eventPayload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return domain.Event{}, invalid(ErrInvalidPayload, "malformed JSON: %v", err)
	}

	occurredAt, err := parseOccurredAt(p.OccurredAt)
	if err != nil {
		return domain.Event{}, err
	}

	level, err := parseLevel(p.Level)
	if err != nil {
		return domain.Event{}, err
	}

	message, err := parseMessage(p.Message)
	if err != nil {
		return domain.Event{}, err
	}

	stack, err := parseDocument("stack", p.Stack)
	if err != nil {
		return domain.Event{}, err
	}

	tags, err := parseDocument("tags", p.Tags)
	if err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		OccurredAt: occurredAt,
		Level:      level,
		Message:    message,
		Stack:      stack,
		Tags:       tags,
	}, nil
}

func parseOccurredAt(raw json.RawMessage) (time.Time, error) {
	if isAbsent(raw) {
		return time.Time{}, invalid(ErrInvalidTimestamp, "occurred_at is required")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, invalid(ErrInvalidTimestamp, "occurred_at must be a string")
	}
	return ParseTimestamp(s)
}

func parseLevel(raw json.RawMessage) (domain.Level, error) {
	if isAbsent(raw) {
		return "", invalid(ErrInvalidLevel, "level is required")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalid(ErrInvalidLevel, "level must be a string")
	}
	return ParseLevelParam(s)
}

// ParseLevelParam validates a level coming from a request.
func ParseLevelParam(s string) (domain.Level, error) {
	level, ok := domain.ParseLevel(s)
	if !ok {
		return "", invalid(ErrInvalidLevel, "%q is not one of DEBUG, INFO, WARNING, ERROR, CRITICAL", s)
	}
	return level, nil
}

func parseMessage(raw json.RawMessage) (string, error) {
	if isAbsent(raw) {
		return "", invalid(ErrInvalidPayload, "message is required")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalid(ErrInvalidPayload, "message must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return "", invalid(ErrInvalidPayload, "message must not be empty")
	}
	if !storableText(s) {
		return "", invalid(ErrInvalidPayload, "message must be valid UTF-8 without NUL characters")
	}
	if n := utf8.RuneCountInString(s); n > MaxMessageLength {
		return "", invalid(ErrMessageTooLong, "message has %d characters, at most %d allowed", n, MaxMessageLength)
	}
	return s, nil
}

// storableText reports whether s can be stored in a Postgres text column.
func storableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

func parseDocument(field string, raw json.RawMessage) (domain.Document, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	trimmed := bytes.TrimSpace(raw)
	if !isObject(trimmed) {
		return nil, invalid(ErrInvalidPayload, "%s must be a JSON object", field)
	}
	return domain.Document(bytes.Clone(trimmed)), nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isObject(raw []byte) bool {
	return len(raw) > 0 && raw[0] == '{'
}
