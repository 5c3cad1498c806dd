// Package metrics exposes drawer activity as Prometheus collectors.
package metrics

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ShiftMetrics is a ShiftObserver that turns committed shift transitions into metrics.
// Amounts are converted to float64 for export only; nothing reads them back.
type ShiftMetrics struct {
	opened       prometheus.Counter
	closed       *prometheus.CounterVec
	openShifts   prometheus.Gauge
	drops        prometheus.Counter
	dropAmount   prometheus.Counter
	variance     prometheus.Histogram
	expectedCash prometheus.Histogram
}

var _ portssvc.ShiftObserver = (*ShiftMetrics)(nil)

// NewShiftMetrics registers the shift collectors on reg.
func NewShiftMetrics(reg prometheus.Registerer) *ShiftMetrics {
	factory := promauto.With(reg)
	return &ShiftMetrics{
		opened: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "shift",
			Name:      "opened_total",
			Help:      "Total shifts opened.",
		}),
		closed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "shift",
			Name:      "closed_total",
			Help:      "Total shifts closed by variance status.",
		}, []string{"variance"}),
		openShifts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pos",
			Subsystem: "shift",
			Name:      "open",
			Help:      "Shifts opened minus shifts closed since process start.",
		}),
		drops: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "drawer",
			Name:      "cash_drops_total",
			Help:      "Total cash drops recorded.",
		}),
		dropAmount: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "drawer",
			Name:      "cash_dropped_amount_total",
			Help:      "Sum of cash removed from drawers by drops, in store currency units.",
		}),
		variance: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pos",
			Subsystem: "shift",
			Name:      "close_variance",
			Help:      "Counted minus expected cash at close, in store currency units.",
			Buckets:   []float64{-100, -20, -5, -1, -0.01, 0, 0.01, 1, 5, 20, 100},
		}),
		expectedCash: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pos",
			Subsystem: "shift",
			Name:      "expected_balance",
			Help:      "Expected drawer balance at close, in store currency units.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		}),
	}
}

func (m *ShiftMetrics) ShiftOpened(_ context.Context, _ domain.Shift) {
	m.opened.Inc()
	m.openShifts.Inc()
}

func (m *ShiftMetrics) CashDropRecorded(_ context.Context, _ domain.Shift, event domain.ShiftEvent) {
	m.drops.Inc()
	m.dropAmount.Add(event.Amount.InexactFloat64())
}

func (m *ShiftMetrics) ShiftClosed(_ context.Context, shift domain.Shift) {
	m.openShifts.Dec()
	if shift.Closing == nil {
		return
	}
	v := shift.Closing.Variance()
	m.closed.WithLabelValues(string(v.Status)).Inc()
	m.variance.Observe(v.Amount.InexactFloat64())
	m.expectedCash.Observe(shift.Closing.ExpectedBalance.InexactFloat64())
}
