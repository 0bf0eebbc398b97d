package kafkactrl

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Egor213/LogHandler/internal/broker"
	logginghelper "github.com/Egor213/LogHandler/internal/controller/common/logging"
	"github.com/Egor213/LogHandler/internal/metrics"
	"github.com/Egor213/LogHandler/internal/service"
	errorsUtils "github.com/Egor213/LogHandler/pkg/errors"
	"github.com/goccy/go-json"
)

const (
	AppIDHeader     = "app-id"
	IngestKeyHeader = "x-ingest-key"

	source = "kafka"
)

// DeadLetter is written for every message that could not be stored.
type DeadLetter struct {
	AppID     string `json:"app_id"`
	ErrorKind string `json:"error_kind"`
	Error     string `json:"error"`
	Payload   string `json:"payload"`
}

type IngestController struct {
	eventService service.Event
	deadLetter   broker.Producer
	counters     *metrics.Counters
}

func NewIngestController(es service.Event, dl broker.Producer, cnt *metrics.Counters) *IngestController {
	return &IngestController{
		eventService: es,
		deadLetter:   dl,
		counters:     cnt,
	}
}

// Handle ingests one message. Messages that can never be stored are
// dead-lettered and reported as handled. Store failures and a failed
// dead-letter write are returned so the offset stays uncommitted.
func (ic *IngestController) Handle(ctx context.Context, msg broker.Message) error {
	rawAppID := msg.Headers[AppIDHeader]

	appID, err := strconv.ParseInt(rawAppID, 10, 64)
	if err != nil || appID <= 0 {
		return ic.reject(ctx, msg, 0,
			fmt.Errorf("%w: header %s is %q", service.ErrUnknownApplication, AppIDHeader, rawAppID))
	}

	logginghelper.LogReceived(source, appID, len(msg.Value))

	event, err := ic.eventService.IngestEvent(ctx, appID, msg.Headers[IngestKeyHeader], msg.Value)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		if !rejectable(err) {
			logginghelper.LogRejected(source, appID, err)
			ic.counters.KafkaMessages.Inc("retry")
			return errorsUtils.WrapPathErr(err)
		}
		return ic.reject(ctx, msg, appID, err)
	}

	logginghelper.LogSaved(source, &event)
	ic.counters.EventsIngested.Inc(source, event.Level.String())
	ic.counters.KafkaMessages.Inc("ingested")

	return nil
}

// rejectable reports errors that redelivery cannot fix.
func rejectable(err error) bool {
	return service.IsValidationError(err) ||
		errors.Is(err, service.ErrUnknownApplication) ||
		errors.Is(err, service.ErrInvalidIngestKey)
}

func (ic *IngestController) reject(ctx context.Context, msg broker.Message, appID int64, cause error) error {
	kind := service.ErrorKind(cause)
	logginghelper.LogRejected(source, appID, cause)
	ic.counters.EventsRejected.Inc(source, kind)

	envelope, err := json.Marshal(DeadLetter{
		AppID:     msg.Headers[AppIDHeader],
		ErrorKind: kind,
		Error:     cause.Error(),
		Payload:   string(msg.Value),
	})
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := ic.deadLetter.SendMessage(ctx, msg.Key, envelope); err != nil {
		ic.counters.KafkaMessages.Inc("dead_letter_failed")
		return errorsUtils.WrapPathErr(err)
	}

	ic.counters.KafkaMessages.Inc("dead_lettered")
	return nil
}
