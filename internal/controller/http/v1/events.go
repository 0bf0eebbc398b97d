package httpv1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	logginghelper "github.com/Egor213/LogHandler/internal/controller/common/logging"
	"github.com/Egor213/LogHandler/internal/metrics"
	"github.com/Egor213/LogHandler/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	IngestKeyHeader = "X-INGEST-KEY"
	source          = "http"
)

type EventController struct {
	eventService service.Event
	counters     *metrics.Counters
	maxBodyBytes int64
}

func NewEventController(es service.Event, cnt *metrics.Counters, maxBodyBytes int64) *EventController {
	return &EventController{
		eventService: es,
		counters:     cnt,
		maxBodyBytes: maxBodyBytes,
	}
}

// IngestEvent handles POST /apps/:app_id/events. The raw body goes to the
// service untouched so validation sees exactly what the caller sent.
func (ec *EventController) IngestEvent(c echo.Context) error {
	appID, err := appIDFromPath(c)
	if err != nil {
		return ec.reject(c, appID, err)
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, ec.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: %w: body exceeds %d bytes", service.ErrInvalidPayload, errPayloadTooLarge, tooLarge.Limit)
		} else {
			err = fmt.Errorf("%w: reading body: %v", service.ErrInvalidPayload, err)
		}
		return ec.reject(c, appID, err)
	}

	logginghelper.LogReceived(source, appID, len(body))

	event, err := ec.eventService.IngestEvent(c.Request().Context(), appID, c.Request().Header.Get(IngestKeyHeader), body)
	if err != nil {
		return ec.reject(c, appID, err)
	}

	logginghelper.LogSaved(source, &event)
	ec.counters.EventsIngested.Inc(source, event.Level.String())

	return c.JSON(http.StatusCreated, toEventResponse(event))
}

func (ec *EventController) reject(c echo.Context, appID int64, err error) error {
	logginghelper.LogRejected(source, appID, err)
	ec.counters.EventsRejected.Inc(source, service.ErrorKind(err))
	return writeError(c, err)
}

// ListEvents handles GET /apps/:app_id/events. limit defaults to the maximum
// page size and offset to zero.
func (ec *EventController) ListEvents(c echo.Context) error {
	appID, err := appIDFromPath(c)
	if err != nil {
		return writeError(c, err)
	}

	var q listEventsQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}

	limit, err := parseInt(q.Limit, service.MaxPageLimit, service.ErrInvalidLimit, "limit")
	if err != nil {
		return writeError(c, err)
	}
	offset, err := parseInt(q.Offset, 0, service.ErrInvalidOffset, "offset")
	if err != nil {
		return writeError(c, err)
	}
	since, until, err := parseWindow(q.Since, q.Until)
	if err != nil {
		return writeError(c, err)
	}

	page, err := ec.eventService.ListEvents(c.Request().Context(), service.ListEventsInput{
		ApplicationID: appID,
		Level:         q.Level,
		Since:         since,
		Until:         until,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toEventListResponse(page))
}
