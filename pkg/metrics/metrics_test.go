package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQuote(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveQuote("cabin", "priced", 180000)
	m.ObserveQuote("cabin", "below_minimum_stay", 0)
	m.ObserveQuote("cabin", "priced", 90000)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QuotesTotal.WithLabelValues("cabin", "priced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuotesTotal.WithLabelValues("cabin", "below_minimum_stay")))
}

func TestObserveQuote_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveQuote("pool", "priced", 1) })
}
