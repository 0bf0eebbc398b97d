package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	EventsIngested Counter
	EventsRejected Counter

	KafkaMessages Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loghandler",
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: newCounterVec(name, help, labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

// NewCounters registers the counter set on reg.
func NewCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		EventsIngested: NewPrometheusCounter(reg,
			"events_ingested_total",
			"Number of events persisted, by level",
			[]string{"source", "level"},
		),
		EventsRejected: NewPrometheusCounter(reg,
			"events_rejected_total",
			"Number of events rejected, by error kind",
			[]string{"source", "kind"},
		),
		KafkaMessages: NewPrometheusCounter(reg,
			"kafka_messages_total",
			"Number of kafka ingest messages, by outcome",
			[]string{"status"},
		),
	}
}

func New() *Counters {
	return NewCounters(prometheus.DefaultRegisterer)
}
