//go:build unit

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"gift-commerce/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMetrics(t *testing.T) {
	t.Run("counts outcomes per label", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.NewPaymentMetrics(reg)

		m.ReadyCompleted("success")
		m.ReadyCompleted("success")
		m.ReadyCompleted("invalid_amount")
		m.StagingSwept(3)
		m.StagingSwept(0)

		expected := `
# HELP gift_payment_ready_total Payment ready calls by outcome
# TYPE gift_payment_ready_total counter
gift_payment_ready_total{outcome="invalid_amount"} 1
gift_payment_ready_total{outcome="success"} 2
# HELP gift_payment_staging_swept_total Expired staged batches removed by the sweeper
# TYPE gift_payment_staging_swept_total counter
gift_payment_staging_swept_total 3
`
		err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
			"gift_payment_ready_total", "gift_payment_staging_swept_total")
		require.NoError(t, err)
	})

	t.Run("approve records count and duration", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.NewPaymentMetrics(reg)

		m.ApproveCompleted("staging_not_found", 20*time.Millisecond)

		count, err := testutil.GatherAndCount(reg, "gift_payment_approve_total", "gift_payment_approve_duration_seconds")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("re-registration reuses existing collectors", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		first := metrics.NewPaymentMetrics(reg)
		second := metrics.NewPaymentMetrics(reg)

		first.CommitRecovered("escalated")
		second.CommitRecovered("escalated")

		expected := `
# HELP gift_payment_commit_recoveries_total Approved batches whose commit failed, by recovery action
# TYPE gift_payment_commit_recoveries_total counter
gift_payment_commit_recoveries_total{recovery="escalated"} 2
`
		err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "gift_payment_commit_recoveries_total")
		require.NoError(t, err)
	})
}
