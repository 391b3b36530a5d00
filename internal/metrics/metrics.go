package metrics

import (
	"context"
	"net/http"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/selebrow/dbquota/pkg/event"
	evmodels "github.com/selebrow/dbquota/pkg/event/models"
	"github.com/selebrow/dbquota/pkg/models"
)

const (
	namespace  = "dbquota"
	subscriber = "metrics"

	resultSuccess = "success"
	resultFailure = "failure"
	resultSkipped = "skipped"
)

// QuotaMetrics translates enforcer events into prometheus metrics.
type QuotaMetrics struct {
	reg           *prometheus.Registry
	dbSize        *prometheus.GaugeVec
	overQuota     *prometheus.GaugeVec
	limit         prometheus.Gauge
	transitions   *prometheus.CounterVec
	cycles        *prometheus.CounterVec
	cycleDuration prometheus.Histogram
	mu            sync.Mutex
	series        map[string]string // database -> user
	wg            sync.WaitGroup
	l             *zap.SugaredLogger
}

func NewQuotaMetrics(l *zap.Logger) *QuotaMetrics {
	m := &QuotaMetrics{
		reg: prometheus.NewRegistry(),
		dbSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "database_size_bytes",
			Help:      "Last measured size of tenant database.",
		}, []string{"database", "user"}),
		overQuota: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "database_over_quota",
			Help:      "Whether write access to tenant database is revoked (1) or not (0).",
		}, []string{"database", "user"}),
		limit: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_database_size_bytes",
			Help:      "Configured storage quota per database.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_transitions_total",
			Help:      "Number of write access changes.",
		}, []string{"action"}),
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enforcement_cycles_total",
			Help:      "Number of enforcement cycles by result.",
		}, []string{"result"}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "enforcement_cycle_duration_seconds",
			Help:      "Duration of enforcement cycles which were not skipped.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		series: make(map[string]string),
		l:      l.Sugar(),
	}

	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.dbSize,
		m.overQuota,
		m.limit,
		m.transitions,
		m.cycles,
		m.cycleDuration,
	)
	for _, r := range []string{resultSuccess, resultFailure, resultSkipped} {
		m.cycles.WithLabelValues(r)
	}
	return m
}

// Start consumes broker events until broker is shut down or ctx is cancelled.
func (m *QuotaMetrics) Start(ctx context.Context, eb event.EventBroker) {
	ch := eb.Subscribe(subscriber,
		evmodels.TenantMeasuredEventType,
		evmodels.QuotaStateChangedEventType,
		evmodels.CycleCompletedEventType)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return
				}
				m.Handle(ev)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *QuotaMetrics) Wait() {
	m.wg.Wait()
}

func (m *QuotaMetrics) Handle(ev evmodels.IEvent) {
	switch e := ev.(type) {
	case *evmodels.Event[evmodels.TenantMeasured]:
		a := e.Attributes
		m.limit.Set(float64(a.Limit))
		m.track(a.Tenant)
		m.dbSize.WithLabelValues(a.Tenant.Name, a.Tenant.User).Set(float64(a.Size))
		m.overQuota.WithLabelValues(a.Tenant.Name, a.Tenant.User).Set(boolToFloat(a.Tenant.QuotaExceeded))
	case *evmodels.Event[evmodels.QuotaStateChanged]:
		a := e.Attributes
		action := "grant"
		if a.To == models.QuotaOverQuota {
			action = "revoke"
		}
		m.transitions.WithLabelValues(action).Inc()
		m.track(a.Tenant)
		m.overQuota.WithLabelValues(a.Tenant.Name, a.Tenant.User).Set(boolToFloat(a.To == models.QuotaOverQuota))
	case *evmodels.Event[evmodels.CycleCompleted]:
		r := e.Attributes.Report
		switch {
		case r.Skipped():
			m.cycles.WithLabelValues(resultSkipped).Inc()
			return
		case r.Failed():
			m.cycles.WithLabelValues(resultFailure).Inc()
		default:
			m.cycles.WithLabelValues(resultSuccess).Inc()
			m.prune(e.Attributes.Tenants)
		}
		m.cycleDuration.Observe(r.Duration.Seconds())
	default:
		m.l.Warnw("unexpected event", zap.String("type", ev.EventType()))
	}
}

func (m *QuotaMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// track remembers label values of tenant series, dropping series left behind by a user change.
func (m *QuotaMetrics) track(t models.Tenant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.series[t.Name]; ok && user != t.User {
		m.deleteSeries(t.Name, user)
	}
	m.series[t.Name] = t.User
}

// prune drops series of tenants which are no longer in the store.
func (m *QuotaMetrics) prune(tenants []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, user := range m.series {
		if !slices.Contains(tenants, name) {
			m.deleteSeries(name, user)
			delete(m.series, name)
		}
	}
}

func (m *QuotaMetrics) deleteSeries(name, user string) {
	m.dbSize.DeleteLabelValues(name, user)
	m.overQuota.DeleteLabelValues(name, user)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
