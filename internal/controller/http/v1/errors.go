package httpv1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Egor213/LogHandler/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

var errPayloadTooLarge = errors.New("payload too large")

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case service.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownApplication):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidIngestKey):
		return http.StatusForbidden
	case errors.Is(err, service.ErrApplicationAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrStoreUnavailable), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(c echo.Context, err error) error {
	status := StatusFor(err)
	resp := errorResponse{
		Error:   service.ErrorKind(err),
		Message: err.Error(),
	}

	switch status {
	case http.StatusServiceUnavailable:
		resp.Message = "event store is unavailable, try again later"
	case http.StatusInternalServerError:
		log.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
		resp.Message = "internal error"
	}

	return c.JSON(status, resp)
}

// ErrorHandler renders errors that escape handlers, such as unknown routes,
// in the same body shape as handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp := errorResponse{
			Error:   strings.ReplaceAll(http.StatusText(he.Code), " ", ""),
			Message: fmt.Sprint(he.Message),
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = c.JSON(he.Code, resp)
		}
		if err != nil {
			log.WithError(err).Error("Failed to write error response")
		}
		return
	}

	if err := writeError(c, err); err != nil {
		log.WithError(err).Error("Failed to write error response")
	}
}
