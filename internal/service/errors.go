package service

import (
	"context"
	"errors"
	"fmt"

	errorsUtils "github.com/Egor213/LogHandler/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidLevel     = errors.New("invalid level")
	ErrMessageTooLong   = errors.New("message too long")
	ErrInvalidLimit     = errors.New("invalid limit")
	ErrInvalidOffset    = errors.New("invalid offset")
	ErrInvalidInterval  = errors.New("invalid interval")
	ErrInvalidTimeRange = errors.New("invalid time range")

	ErrUnknownApplication       = errors.New("unknown application")
	ErrInvalidIngestKey         = errors.New("invalid ingest key")
	ErrApplicationAlreadyExists = errors.New("application with this name already exists")

	ErrStoreUnavailable = errors.New("store unavailable")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidPayload, "InvalidPayload"},
	{ErrInvalidTimestamp, "InvalidTimestamp"},
	{ErrInvalidLevel, "InvalidLevel"},
	{ErrMessageTooLong, "MessageTooLong"},
	{ErrInvalidLimit, "InvalidLimit"},
	{ErrInvalidOffset, "InvalidOffset"},
	{ErrInvalidInterval, "InvalidInterval"},
	{ErrInvalidTimeRange, "InvalidTimeRange"},
	{ErrUnknownApplication, "UnknownApplication"},
	{ErrInvalidIngestKey, "InvalidIngestKey"},
	{ErrApplicationAlreadyExists, "Conflict"},
	{ErrStoreUnavailable, "StoreUnavailable"},
	{context.Canceled, "Canceled"},
}

// ErrorKind names the taxonomy entry err belongs to, "Internal" if none.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "Internal"
}

// IsValidationError reports errors caused by the request shape.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidPayload, ErrInvalidTimestamp, ErrInvalidLevel, ErrMessageTooLong,
		ErrInvalidLimit, ErrInvalidOffset, ErrInvalidInterval, ErrInvalidTimeRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func invalid(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// storeErr marks a failed store call. Cancellation by the caller is passed
// through as is.
func storeErr(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	log.WithError(err).Error("store call failed")
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, errorsUtils.WrapPathErr(err))
}
