package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentMetrics records outcomes of the ready/approve pipeline.
type PaymentMetrics struct {
	readyTotal      *prometheus.CounterVec
	approveTotal    *prometheus.CounterVec
	approveDuration *prometheus.HistogramVec
	recoveries      *prometheus.CounterVec
	sweptBatches    prometheus.Counter
}

func NewPaymentMetrics(registerer prometheus.Registerer) *PaymentMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &PaymentMetrics{
		readyTotal: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "gift_payment_ready_total",
			Help: "Payment ready calls by outcome",
		}, []string{"outcome"}),
		approveTotal: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "gift_payment_approve_total",
			Help: "Payment approve calls by outcome",
		}, []string{"outcome"}),
		approveDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "gift_payment_approve_duration_seconds",
			Help:    "Duration of payment approve calls in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{"outcome"}),
		recoveries: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "gift_payment_commit_recoveries_total",
			Help: "Approved batches whose commit failed, by recovery action",
		}, []string{"recovery"}),
		sweptBatches: registerCounter(registerer, prometheus.CounterOpts{
			Name: "gift_payment_staging_swept_total",
			Help: "Expired staged batches removed by the sweeper",
		}),
	}
}

func (m *PaymentMetrics) ReadyCompleted(outcome string) {
	m.readyTotal.WithLabelValues(outcome).Inc()
}

func (m *PaymentMetrics) ApproveCompleted(outcome string, elapsed time.Duration) {
	m.approveTotal.WithLabelValues(outcome).Inc()
	m.approveDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *PaymentMetrics) CommitRecovered(recovery string) {
	m.recoveries.WithLabelValues(recovery).Inc()
}

func (m *PaymentMetrics) StagingSwept(n int64) {
	if n > 0 {
		m.sweptBatches.Add(float64(n))
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
