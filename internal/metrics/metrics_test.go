package metrics_test

import (
	"testing"

	"github.com/Egor213/LogHandler/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCounters_PrivateRegistries(t *testing.T) {
	firstReg, secondReg := prometheus.NewRegistry(), prometheus.NewRegistry()
	first := metrics.NewCounters(firstReg)
	second := metrics.NewCounters(secondReg)

	first.EventsIngested.Inc("http", "ERROR")
	second.EventsRejected.Inc("kafka", "InvalidLevel")
	second.KafkaMessages.Inc("retry")

	families, err := firstReg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "events_ingested_total", families[0].GetName())

	families, err = secondReg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}
