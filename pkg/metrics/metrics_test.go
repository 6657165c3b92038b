package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegistry("test-service", prometheus.NewRegistry())

	m.IncOperation("toggle_item", "applied")
	m.IncOperation("toggle_item", "applied")
	m.IncOperation("choose_complexity", "rejected")
	m.AddValidationErrors(3)
	m.AddValidationErrors(0)
	m.IncOrderSubmitted("success")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsApplied.WithLabelValues("toggle_item", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsApplied.WithLabelValues("choose_complexity", "rejected")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ValidationErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersSubmitted.WithLabelValues("success")))
}
