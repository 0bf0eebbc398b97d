package logginghelper

import (
	"errors"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/service"
	log "github.com/sirupsen/logrus"
)

func LogReceived(source string, appID int64, size int) {
	log.WithFields(log.Fields{
		"source": source,
		"app_id": appID,
		"bytes":  size,
	}).Debugf("Received event via %s", source)
}

func LogSaved(source string, event *domain.Event) {
	log.WithFields(log.Fields{
		"source":      source,
		"app_id":      event.ApplicationID,
		"level":       event.Level,
		"id":          event.ID,
		"received_at": event.ReceivedAt,
	}).Info("Event saved successfully")
}

// LogRejected logs validation and auth failures as warnings, anything else as
// an error.
func LogRejected(source string, appID int64, err error) {
	entry := log.WithFields(log.Fields{
		"source": source,
		"app_id": appID,
		"kind":   service.ErrorKind(err),
		"error":  err,
	})
	if service.IsValidationError(err) ||
		errors.Is(err, service.ErrUnknownApplication) ||
		errors.Is(err, service.ErrInvalidIngestKey) {
		entry.Warn("Event rejected")
		return
	}
	entry.Error("Failed to save event")
}
