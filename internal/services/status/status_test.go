package status

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/dbquota/mocks"
	"github.com/selebrow/dbquota/pkg/dto"
	"github.com/selebrow/dbquota/pkg/event"
	evmodels "github.com/selebrow/dbquota/pkg/event/models"
	"github.com/selebrow/dbquota/pkg/kubeapi"
	"github.com/selebrow/dbquota/pkg/models"
)

var measuredAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func measured(cycleID, name, user string, size int64, exceeded bool) evmodels.IEvent {
	return evmodels.NewEvent(evmodels.TenantMeasuredEventType, measuredAt, evmodels.TenantMeasured{
		CycleID: cycleID,
		Tenant:  models.Tenant{Name: name, User: user, QuotaExceeded: exceeded},
		Size:    size,
		Limit:   1000,
	})
}

func completed(r models.CycleReport, tenants ...string) evmodels.IEvent {
	return evmodels.NewCycleCompletedEvent(evmodels.CycleCompleted{Report: r, Tenants: tenants})
}

func TestQuotaStatusTracker_Status(t *testing.T) {
	g := NewWithT(t)
	s := NewQuotaStatusTracker(1000, kubeapi.AlwaysLeader{}, zaptest.NewLogger(t))

	g.Expect(s.Status()).To(Equal(&dto.Status{
		MaxDBSize: 1000,
		Leader:    true,
		Tenants:   []dto.TenantStatus{},
	}))

	s.Handle(measured("c1", "d2", "u2", 1500, false))
	s.Handle(measured("c1", "d1", "u1", 10, false))
	s.Handle(evmodels.NewQuotaStateChangedEvent(evmodels.QuotaStateChanged{
		CycleID: "c1",
		Tenant:  models.Tenant{Name: "d2", User: "u2", QuotaExceeded: true},
		Size:    1500,
		Limit:   1000,
		From:    models.QuotaOK,
		To:      models.QuotaOverQuota,
	}))
	s.Handle(completed(models.CycleReport{ID: "c1", Started: measuredAt, Duration: time.Second, Processed: 2, Revoked: 1}, "d2", "d1"))

	g.Expect(s.Status()).To(Equal(&dto.Status{
		MaxDBSize: 1000,
		Leader:    true,
		LastCycle: &dto.CycleReport{
			ID:        "c1",
			Started:   measuredAt,
			Duration:  time.Second,
			Processed: 2,
			Revoked:   1,
		},
		Tenants: []dto.TenantStatus{
			{Name: "d1", User: "u1", Size: 10, Measured: measuredAt},
			{Name: "d2", User: "u2", Size: 1500, QuotaExceeded: true, Measured: measuredAt},
		},
	}))
}

func TestQuotaStatusTracker_FailedAndSkippedCycles(t *testing.T) {
	g := NewWithT(t)
	gate := new(mocks.LeaderGate)
	gate.EXPECT().IsLeader().Return(false)
	s := NewQuotaStatusTracker(1000, gate, zaptest.NewLogger(t))

	s.Handle(measured("c1", "d1", "u1", 10, false))
	s.Handle(measured("c1", "d2", "u2", 10, false))
	s.Handle(completed(models.CycleReport{ID: "c1", Processed: 2}, "d1", "d2"))

	// failed cycle measured only d1, d2 must be kept
	s.Handle(measured("c2", "d1", "u1", 20, false))
	s.Handle(completed(models.CycleReport{ID: "c2", Processed: 0, Err: errors.New("lost connection")}, "d1"))

	st := s.Status()
	g.Expect(st.Leader).To(BeFalse())
	g.Expect(st.LastCycle.ID).To(Equal("c2"))
	g.Expect(st.LastCycle.Error).To(Equal("lost connection"))
	g.Expect(st.Tenants).To(HaveLen(2))

	s.Handle(completed(models.CycleReport{ID: "c3", Err: models.ErrCycleInProgress}))
	g.Expect(s.Status().LastCycle.ID).To(Equal("c2"))
}

func TestQuotaStatusTracker_DropsDeprovisioned(t *testing.T) {
	g := NewWithT(t)
	s := NewQuotaStatusTracker(1000, kubeapi.AlwaysLeader{}, zaptest.NewLogger(t))

	s.Handle(measured("c1", "d1", "u1", 10, false))
	s.Handle(measured("c1", "d2", "u2", 10, false))
	s.Handle(completed(models.CycleReport{ID: "c1", Processed: 2}, "d1", "d2"))

	s.Handle(measured("c2", "d2", "u2", 30, false))
	s.Handle(completed(models.CycleReport{ID: "c2", Processed: 1}, "d2"))

	g.Expect(s.Tenants()).To(Equal([]dto.TenantStatus{
		{Name: "d2", User: "u2", Size: 30, Measured: measuredAt},
	}))
}

func TestQuotaStatusTracker_KeepsTenantWithLostMeasurement(t *testing.T) {
	g := NewWithT(t)
	s := NewQuotaStatusTracker(1000, kubeapi.AlwaysLeader{}, zaptest.NewLogger(t))

	s.Handle(measured("c1", "d1", "u1", 10, false))
	s.Handle(measured("c1", "d2", "u2", 10, false))
	s.Handle(completed(models.CycleReport{ID: "c1", Processed: 2}, "d1", "d2"))

	// d1 measurement of c2 never reached the tracker
	s.Handle(measured("c2", "d2", "u2", 30, false))
	s.Handle(completed(models.CycleReport{ID: "c2", Processed: 2}, "d1", "d2"))

	g.Expect(s.Tenants()).To(Equal([]dto.TenantStatus{
		{Name: "d1", User: "u1", Size: 10, Measured: measuredAt},
		{Name: "d2", User: "u2", Size: 30, Measured: measuredAt},
	}))
}

func TestQuotaStatusTracker_Start(t *testing.T) {
	g := NewWithT(t)
	l := zaptest.NewLogger(t)
	eb := event.NewEventBrokerImpl(10, l)
	s := NewQuotaStatusTracker(1000, kubeapi.AlwaysLeader{}, l)
	s.Start(context.Background(), eb)

	eb.Publish(measured("c1", "d1", "u1", 10, false))
	g.Eventually(s.Tenants).Should(HaveLen(1))

	g.Expect(eb.ShutDown(context.TODO())).To(Succeed())
	s.Wait()
}
