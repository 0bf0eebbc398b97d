package kafkactrl_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Egor213/LogHandler/internal/broker"
	kafkactrl "github.com/Egor213/LogHandler/internal/controller/kafka"
	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/metrics"
	counter_mock "github.com/Egor213/LogHandler/internal/mocks/counters"
	service_mock "github.com/Egor213/LogHandler/internal/mocks/service"
	"github.com/Egor213/LogHandler/internal/service"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingProducer struct {
	sent [][]byte
	err  error
}

func (p *recordingProducer) SendMessage(_ context.Context, _, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, value)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

const payload = `{"occurred_at":"2024-05-01T10:00:00Z","level":"ERROR","message":"boom"}`

func message(appID, key string) broker.Message {
	return broker.Message{
		Value:   []byte(payload),
		Headers: map[string]string{kafkactrl.AppIDHeader: appID, kafkactrl.IngestKeyHeader: key},
	}
}

func TestIngestController_Handle(t *testing.T) {
	type mockBehavior func(es *service_mock.MockEvent, ingested, rejected, kafka *counter_mock.MockCounter)

	testCases := []struct {
		name         string
		msg          broker.Message
		producerErr  error
		mockBehavior mockBehavior
		wantKind     string
		wantErr      bool
		wantErrIs    error
	}{
		{
			name: "ingested",
			msg:  message("1", "secret"),
			mockBehavior: func(es *service_mock.MockEvent, ingested, rejected, kafka *counter_mock.MockCounter) {
				es.EXPECT().IngestEvent(gomock.Any(), int64(1), "secret", []byte(payload)).
					Return(domain.Event{ID: 1, ApplicationID: 1, Level: domain.LevelError}, nil)
				ingested.EXPECT().Inc("kafka", "ERROR")
				kafka.EXPECT().Inc("ingested")
			},
		},
		{
			name: "bad app id header",
			msg:  message("abc", "secret"),
			mockBehavior: func(es *service_mock.MockEvent, ingested, rejected, kafka *counter_mock.MockCounter) {
				rejected.EXPECT().Inc("kafka", "UnknownApplication")
				kafka.EXPECT().Inc("dead_lettered")
			},
			wantKind: "UnknownApplication",
		},
		{
			name: "validation failure",
			msg:  message("1", "secret"),
			mockBehavior: func(es *service_mock.MockEvent, ingested, rejected, kafka *counter_mock.MockCounter) {
				es.EXPECT().IngestEvent(gomock.Any(), int64(1), "secret", gomock.Any()).
					Return(domain.Event{}, service.ErrInvalidLevel)
				rejected.EXPECT().Inc("kafka", "InvalidLevel")
				kafka.EXPECT().Inc("dead_lettered")
			},
			wantKind: "InvalidLevel",
		},
		{
			name:        "dead letter write fails",
			msg:         message("1", "wrong"),
			producerErr: errors.New("broker down"),
			mockBehavior: func(es *service_mock.MockEvent, ingested, rejected, kafka *counter_mock.MockCounter) {
				es.EXPECT().IngestEvent(gomock.Any(), int64(1), "wrong", gomock.Any()).
					Return(domain.Event{}, service.ErrInvalidIngestKey)
				rejected.EXPECT().Inc("kafka", "InvalidIngestKey")
				kafka.EXPECT().Inc("dead_letter_failed")
			},
			wantErr: true,
		},
		{
			name: "store unavailable is returned for redelivery",
			msg:  message("1", "secret"),
			mockBehavior: func(es *service_mock.MockEvent, ingested, rejected, kafka *counter_mock.MockCounter) {
				es.EXPECT().IngestEvent(gomock.Any(), int64(1), "secret", gomock.Any()).
					Return(domain.Event{}, fmt.Errorf("%w: conn refused", service.ErrStoreUnavailable))
				kafka.EXPECT().Inc("retry")
			},
			wantErr:   true,
			wantErrIs: service.ErrStoreUnavailable,
		},
		{
			name: "unexpected error is returned for redelivery",
			msg:  message("1", "secret"),
			mockBehavior: func(es *service_mock.MockEvent, ingested, rejected, kafka *counter_mock.MockCounter) {
				es.EXPECT().IngestEvent(gomock.Any(), int64(1), "secret", gomock.Any()).
					Return(domain.Event{}, errors.New("unexpected"))
				kafka.EXPECT().Inc("retry")
			},
			wantErr: true,
		},
		{
			name: "cancelled is not dead-lettered",
			msg:  message("1", "secret"),
			mockBehavior: func(es *service_mock.MockEvent, ingested, rejected, kafka *counter_mock.MockCounter) {
				es.EXPECT().IngestEvent(gomock.Any(), int64(1), "secret", gomock.Any()).
					Return(domain.Event{}, context.Canceled)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			es := service_mock.NewMockEvent(ctrl)
			ingested := counter_mock.NewMockCounter(ctrl)
			rejected := counter_mock.NewMockCounter(ctrl)
			kafka := counter_mock.NewMockCounter(ctrl)
			tc.mockBehavior(es, ingested, rejected, kafka)

			producer := &recordingProducer{err: tc.producerErr}
			ic := kafkactrl.NewIngestController(es, producer, &metrics.Counters{
				EventsIngested: ingested,
				EventsRejected: rejected,
				KafkaMessages:  kafka,
			})

			err := ic.Handle(context.Background(), tc.msg)
			if tc.wantErr {
				assert.Error(t, err)
				if tc.wantErrIs != nil {
					assert.ErrorIs(t, err, tc.wantErrIs)
				}
				assert.Empty(t, producer.sent)
				return
			}
			require.NoError(t, err)

			if tc.wantKind == "" {
				assert.Empty(t, producer.sent)
				return
			}

			require.Len(t, producer.sent, 1)
			var dl kafkactrl.DeadLetter
			require.NoError(t, json.Unmarshal(producer.sent[0], &dl))
			assert.Equal(t, tc.wantKind, dl.ErrorKind)
			assert.Equal(t, tc.msg.Headers[kafkactrl.AppIDHeader], dl.AppID)
			assert.Equal(t, payload, dl.Payload)
		})
	}
}
