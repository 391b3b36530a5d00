package status

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/selebrow/dbquota/pkg/dto"
	"github.com/selebrow/dbquota/pkg/event"
	evmodels "github.com/selebrow/dbquota/pkg/event/models"
	"github.com/selebrow/dbquota/pkg/kubeapi"
	"github.com/selebrow/dbquota/pkg/models"
)

const subscriber = "status"

type StatusService interface {
	Status() *dto.Status
	Tenants() []dto.TenantStatus
}

// QuotaStatusTracker remembers outcome of the last enforcement cycle and latest measurement of every tenant.
type QuotaStatusTracker struct {
	mtx     sync.RWMutex
	limit   int64
	gate    kubeapi.LeaderGate
	last    *dto.CycleReport
	tenants map[string]*dto.TenantStatus
	wg      sync.WaitGroup
	l       *zap.SugaredLogger
}

func NewQuotaStatusTracker(limit int64, gate kubeapi.LeaderGate, l *zap.Logger) *QuotaStatusTracker {
	return &QuotaStatusTracker{
		limit:   limit,
		gate:    gate,
		tenants: make(map[string]*dto.TenantStatus),
		l:       l.Sugar(),
	}
}

func (s *QuotaStatusTracker) Start(ctx context.Context, eb event.EventBroker) {
	ch := eb.Subscribe(subscriber,
		evmodels.TenantMeasuredEventType,
		evmodels.QuotaStateChangedEventType,
		evmodels.CycleCompletedEventType)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return
				}
				s.Handle(ev)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *QuotaStatusTracker) Wait() {
	s.wg.Wait()
}

func (s *QuotaStatusTracker) Handle(ev evmodels.IEvent) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	switch e := ev.(type) {
	case *evmodels.Event[evmodels.TenantMeasured]:
		a := e.Attributes
		s.tenants[a.Tenant.Name] = &dto.TenantStatus{
			Name:          a.Tenant.Name,
			User:          a.Tenant.User,
			Size:          a.Size,
			QuotaExceeded: a.Tenant.QuotaExceeded,
			Measured:      e.EventTime(),
		}
	case *evmodels.Event[evmodels.QuotaStateChanged]:
		a := e.Attributes
		if t, ok := s.tenants[a.Tenant.Name]; ok {
			t.QuotaExceeded = a.To == models.QuotaOverQuota
		}
	case *evmodels.Event[evmodels.CycleCompleted]:
		r := e.Attributes.Report
		if r.Skipped() {
			return
		}
		s.last = dto.NewCycleReport(&r)
		if !r.Failed() {
			// tenants missing from complete cycle were deprovisioned, a lost measurement event
			// only leaves the previous one in place
			for name := range s.tenants {
				if !slices.Contains(e.Attributes.Tenants, name) {
					delete(s.tenants, name)
				}
			}
		}
	default:
		s.l.Warnw("unexpected event", zap.String("type", ev.EventType()))
	}
}

func (s *QuotaStatusTracker) Status() *dto.Status {
	res := &dto.Status{
		MaxDBSize: s.limit,
		Leader:    s.gate.IsLeader(),
		Tenants:   s.Tenants(),
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()
	if s.last != nil {
		last := *s.last
		res.LastCycle = &last
	}
	return res
}

// Tenants returns latest known tenant states ordered by name.
func (s *QuotaStatusTracker) Tenants() []dto.TenantStatus {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]dto.TenantStatus, 0, len(s.tenants))
	for _, t := range s.tenants {
		res = append(res, *t)
	}
	slices.SortFunc(res, func(a, b dto.TenantStatus) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}
