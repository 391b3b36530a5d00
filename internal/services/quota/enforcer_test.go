package quota

import (
	"context"
	"fmt"
	"testing"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/selebrow/dbquota/mocks"
	"github.com/selebrow/dbquota/pkg/event"
	evmodels "github.com/selebrow/dbquota/pkg/event/models"
	"github.com/selebrow/dbquota/pkg/models"
)

const testLimit = 1000

var testStarted = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func testClock() func() time.Time {
	cur := testStarted
	return func() time.Time {
		t := cur
		cur = cur.Add(time.Second)
		return t
	}
}

func newTestEnforcer(t *testing.T, e *fakeEngine, st *fakeStore, eb event.EventBroker, l *zap.Logger) *StorageQuotaEnforcer {
	t.Helper()
	toggle := NewEnginePrivilegeToggle(e, NewEnginePrivilegeInspector(e), NewEngineSessionTerminator(e, l), st, l)
	return NewStorageQuotaEnforcer(
		e,
		st,
		NewEngineSizeInspector(e),
		toggle,
		eb,
		EnforcerOpts{MaxDBSize: testLimit, AdminDB: "mysql"},
		func() string { return "c1" },
		testClock(),
		l,
	)
}

func TestStorageQuotaEnforcer_Revoke(t *testing.T) {
	g := NewWithT(t)
	e := newFakeEngine()
	e.sizes["x"] = 1500
	e.granted["x"] = true
	e.procs = []models.Process{
		{ID: 1, User: "a", DB: "x"},
		{ID: 2, User: "a", DB: "y"},
		{ID: 3, User: "b", DB: "x"},
	}
	st := &fakeStore{tenants: []models.Tenant{{Name: "x", User: "a"}}}
	core, logs := observer.New(zap.InfoLevel)

	s := newTestEnforcer(t, e, st, event.NewEventBrokerImpl(10, zaptest.NewLogger(t)), zap.New(core))
	report := s.EnforceStorageQuota(context.TODO())

	g.Expect(report.Err).ToNot(HaveOccurred())
	g.Expect(report.ID).To(Equal("c1"))
	g.Expect(report.Started).To(Equal(testStarted))
	g.Expect(report.Duration).To(Equal(time.Second))
	g.Expect(report.Processed).To(Equal(1))
	g.Expect(report.Revoked).To(Equal(1))
	g.Expect(report.Restored).To(BeZero())

	g.Expect(e.selected).To(Equal("mysql"))
	g.Expect(e.granted["x"]).To(BeFalse())
	g.Expect(e.killed).To(Equal([]uint64{1}))
	g.Expect(st.get("x").QuotaExceeded).To(BeTrue())
	g.Expect(e.releases).To(Equal(1))

	revoked := logs.FilterMessageSnippet("access revoked").All()
	g.Expect(revoked).To(HaveLen(1))
	g.Expect(revoked[0].Level).To(Equal(zap.InfoLevel))
	g.Expect(revoked[0].Message).To(ContainSubstring("<user: 'a' name: 'x' size: 1500>"))
	g.Expect(logs.FilterMessageSnippet("access restored").Len()).To(BeZero())
}

func TestStorageQuotaEnforcer_Restore(t *testing.T) {
	g := NewWithT(t)
	e := newFakeEngine()
	e.sizes["x"] = 500
	e.procs = []models.Process{{ID: 1, User: "a", DB: "x"}}
	st := &fakeStore{tenants: []models.Tenant{{Name: "x", User: "a", QuotaExceeded: true}}}
	core, logs := observer.New(zap.InfoLevel)

	s := newTestEnforcer(t, e, st, event.NewEventBrokerImpl(10, zaptest.NewLogger(t)), zap.New(core))
	report := s.EnforceStorageQuota(context.TODO())

	g.Expect(report.Err).ToNot(HaveOccurred())
	g.Expect(report.Restored).To(Equal(1))
	g.Expect(e.granted["x"]).To(BeTrue())
	g.Expect(e.killed).To(BeEmpty())
	g.Expect(st.get("x").QuotaExceeded).To(BeFalse())

	restored := logs.FilterMessageSnippet("access restored").All()
	g.Expect(restored).To(HaveLen(1))
	g.Expect(restored[0].Level).To(Equal(zap.InfoLevel))
	g.Expect(restored[0].Message).To(ContainSubstring("<user: 'a' name: 'x' size: 500>"))
	g.Expect(logs.FilterMessageSnippet("access revoked").Len()).To(BeZero())
}

func TestStorageQuotaEnforcer_Boundary(t *testing.T) {
	tests := []struct {
		name        string
		size        int64
		exceeded    bool
		wantGranted bool
		wantFlushes int
	}{
		{name: "equal to limit revokes", size: testLimit, exceeded: false, wantGranted: false, wantFlushes: 1},
		{name: "equal to limit keeps over quota", size: testLimit, exceeded: true, wantGranted: false, wantFlushes: 0},
		{name: "one below limit restores", size: testLimit - 1, exceeded: true, wantGranted: true, wantFlushes: 1},
		{name: "below limit keeps ok", size: 10, exceeded: false, wantGranted: true, wantFlushes: 0},
		{name: "empty database keeps ok", size: 0, exceeded: false, wantGranted: true, wantFlushes: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			e := newFakeEngine()
			e.sizes["x"] = tt.size
			e.granted["x"] = !tt.exceeded
			st := &fakeStore{tenants: []models.Tenant{{Name: "x", User: "a", QuotaExceeded: tt.exceeded}}}

			s := newTestEnforcer(t, e, st, event.NewEventBrokerImpl(10, zaptest.NewLogger(t)), zaptest.NewLogger(t))
			report := s.EnforceStorageQuota(context.TODO())

			g.Expect(report.Err).ToNot(HaveOccurred())
			g.Expect(e.granted["x"]).To(Equal(tt.wantGranted))
			g.Expect(e.flushes).To(Equal(tt.wantFlushes))
			g.Expect(st.get("x").QuotaExceeded).To(Equal(!tt.wantGranted))
		})
	}
}

func TestStorageQuotaEnforcer_AbortsOnFailure(t *testing.T) {
	g := NewWithT(t)
	e := newFakeEngine()
	st := &fakeStore{}
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("d%d", i)
		e.sizes[name] = 5000
		e.granted[name] = true
		st.tenants = append(st.tenants, models.Tenant{Name: name, User: fmt.Sprintf("u%d", i)})
	}
	e.sizeErr["d3"] = &gomysql.MySQLError{Number: 2013, Message: "Lost connection to MySQL server during query"}

	core, logs := observer.New(zap.DebugLevel)
	l := zap.New(core)
	eb := event.NewEventBrokerImpl(10, l)
	completed := eb.Subscribe("test", evmodels.CycleCompletedEventType)

	s := newTestEnforcer(t, e, st, eb, l)
	report := s.EnforceStorageQuota(context.TODO())

	g.Expect(report.Failed()).To(BeTrue())
	g.Expect(report.Processed).To(Equal(2))
	g.Expect(report.Revoked).To(Equal(2))

	for _, name := range []string{"d1", "d2"} {
		g.Expect(e.granted[name]).To(BeFalse(), name)
		g.Expect(st.get(name).QuotaExceeded).To(BeTrue(), name)
	}
	for _, name := range []string{"d3", "d4", "d5"} {
		g.Expect(e.granted[name]).To(BeTrue(), name)
		g.Expect(st.get(name).QuotaExceeded).To(BeFalse(), name)
	}

	aborted := logs.FilterMessage("enforcement cycle aborted").All()
	g.Expect(aborted).To(HaveLen(1))
	g.Expect(aborted[0].Level).To(Equal(zap.WarnLevel))
	g.Expect(aborted[0].ContextMap()).To(HaveKeyWithValue("errno", uint16(2013)))
	g.Expect(aborted[0].ContextMap()).To(HaveKeyWithValue("error", "Lost connection to MySQL server during query"))

	var ev evmodels.IEvent
	g.Eventually(completed).Should(Receive(&ev))
	g.Expect(ev.(*evmodels.Event[evmodels.CycleCompleted]).Attributes.Report.Processed).To(Equal(2))
	g.Expect(ev.(*evmodels.Event[evmodels.CycleCompleted]).Attributes.Tenants).To(Equal([]string{"d1", "d2"}))

	// next cycle picks up remaining tenants
	delete(e.sizeErr, "d3")
	report = s.EnforceStorageQuota(context.TODO())
	g.Expect(report.Err).ToNot(HaveOccurred())
	g.Expect(report.Processed).To(Equal(5))
	g.Expect(report.Revoked).To(Equal(3))
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("d%d", i)
		g.Expect(e.granted[name]).To(BeFalse(), name)
	}
}

func TestStorageQuotaEnforcer_StateMatchesPrivileges(t *testing.T) {
	g := NewWithT(t)
	e := newFakeEngine()
	st := &fakeStore{}
	sizes := []int64{0, 999, 1000, 1001, 25000, 3}
	for i, size := range sizes {
		name := fmt.Sprintf("d%d", i)
		e.sizes[name] = size
		exceeded := i%2 == 0
		e.granted[name] = !exceeded
		st.tenants = append(st.tenants, models.Tenant{Name: name, User: "u", QuotaExceeded: exceeded})
	}

	s := newTestEnforcer(t, e, st, event.NewEventBrokerImpl(10, zaptest.NewLogger(t)), zaptest.NewLogger(t))
	for range 2 {
		report := s.EnforceStorageQuota(context.TODO())
		g.Expect(report.Err).ToNot(HaveOccurred())
		g.Expect(report.Processed).To(Equal(len(sizes)))

		for i, size := range sizes {
			name := fmt.Sprintf("d%d", i)
			tn := st.get(name)
			g.Expect(tn.QuotaExceeded).To(Equal(size >= testLimit), name)
			g.Expect(e.granted[name]).To(Equal(!tn.QuotaExceeded), name)
		}
	}
}

func TestStorageQuotaEnforcer_Events(t *testing.T) {
	g := NewWithT(t)
	e := newFakeEngine()
	e.sizes["x"] = 2000
	e.granted["x"] = true
	e.sizes["y"] = 100
	e.granted["y"] = true
	st := &fakeStore{tenants: []models.Tenant{{Name: "x", User: "a"}, {Name: "y", User: "b"}}}

	eb := event.NewEventBrokerImpl(10, zaptest.NewLogger(t))
	measured := eb.Subscribe("measured", evmodels.TenantMeasuredEventType)
	changed := eb.Subscribe("changed", evmodels.QuotaStateChangedEventType)
	completed := eb.Subscribe("completed", evmodels.CycleCompletedEventType)

	s := newTestEnforcer(t, e, st, eb, zaptest.NewLogger(t))
	report := s.EnforceStorageQuota(context.TODO())
	g.Expect(report.Err).ToNot(HaveOccurred())

	g.Expect(measured).To(HaveLen(2))
	g.Expect(changed).To(HaveLen(1))

	ev := (<-changed).(*evmodels.Event[evmodels.QuotaStateChanged])
	g.Expect(ev.Attributes).To(Equal(evmodels.QuotaStateChanged{
		CycleID: "c1",
		Tenant:  models.Tenant{Name: "x", User: "a", QuotaExceeded: true},
		Size:    2000,
		Limit:   testLimit,
		From:    models.QuotaOK,
		To:      models.QuotaOverQuota,
	}))

	g.Expect(completed).To(HaveLen(1))
	done := (<-completed).(*evmodels.Event[evmodels.CycleCompleted])
	g.Expect(done.Attributes.Tenants).To(Equal([]string{"x", "y"}))
}

func TestStorageQuotaEnforcer_CycleInProgress(t *testing.T) {
	g := NewWithT(t)
	e := new(mocks.Engine)
	st := new(mocks.TenantStore)
	eb := event.NewEventBrokerImpl(10, zaptest.NewLogger(t))
	completed := eb.Subscribe("test", evmodels.CycleCompletedEventType)

	s := NewStorageQuotaEnforcer(e, st, nil, nil, eb, EnforcerOpts{MaxDBSize: testLimit, AdminDB: "mysql"},
		func() string { return "c2" }, testClock(), zaptest.NewLogger(t))

	s.m.Lock()
	report := s.EnforceStorageQuota(context.TODO())
	s.m.Unlock()

	g.Expect(report.ID).To(Equal("c2"))
	g.Expect(report.Err).To(MatchError(models.ErrCycleInProgress))
	g.Expect(completed).To(HaveLen(1))
	e.AssertNotCalled(t, "SelectDB", mock.Anything, mock.Anything)
	e.AssertNotCalled(t, "Release")
	st.AssertNotCalled(t, "All", mock.Anything)
}

func TestStorageQuotaEnforcer_SelectDBFailure(t *testing.T) {
	g := NewWithT(t)
	e := new(mocks.Engine)
	st := new(mocks.TenantStore)
	e.EXPECT().SelectDB(mock.Anything, "mysql").
		Return(&gomysql.MySQLError{Number: 1044, Message: "Access denied"}).Once()
	e.EXPECT().Release().Once()

	s := NewStorageQuotaEnforcer(e, st, nil, nil, event.NewEventBrokerImpl(10, zaptest.NewLogger(t)),
		EnforcerOpts{MaxDBSize: testLimit, AdminDB: "mysql"}, func() string { return "c3" }, testClock(), zaptest.NewLogger(t))

	report := s.EnforceStorageQuota(context.TODO())
	g.Expect(report.Failed()).To(BeTrue())
	g.Expect(report.Processed).To(BeZero())

	var me *gomysql.MySQLError
	g.Expect(errors.As(report.Err, &me)).To(BeTrue())
	g.Expect(me.Number).To(Equal(uint16(1044)))

	e.AssertExpectations(t)
	st.AssertNotCalled(t, "All", mock.Anything)
}

func TestStorageQuotaEnforcer_ToggleFailure(t *testing.T) {
	g := NewWithT(t)
	e := new(mocks.Engine)
	st := new(mocks.TenantStore)
	sizes := new(mocks.SizeInspector)
	toggle := new(mocks.PrivilegeToggle)

	t1 := &models.Tenant{Name: "d1", User: "u1"}
	t2 := &models.Tenant{Name: "d2", User: "u2", QuotaExceeded: true}
	t3 := &models.Tenant{Name: "d3", User: "u3"}

	e.EXPECT().SelectDB(mock.Anything, "mysql").Return(nil).Once()
	e.EXPECT().Release().Once()
	st.EXPECT().All(mock.Anything).Return([]*models.Tenant{t1, t2, t3}, nil).Once()
	sizes.EXPECT().SizeOf(mock.Anything, "d1").Return(int64(10), nil).Once()
	sizes.EXPECT().SizeOf(mock.Anything, "d2").Return(int64(10), nil).Once()
	toggle.EXPECT().GrantWriteAccess(mock.Anything, "d2", t2).Return(errors.New("grant failed")).Once()

	s := NewStorageQuotaEnforcer(e, st, sizes, toggle, event.NewEventBrokerImpl(10, zaptest.NewLogger(t)),
		EnforcerOpts{MaxDBSize: testLimit, AdminDB: "mysql"}, func() string { return "c4" }, testClock(), zaptest.NewLogger(t))

	report := s.EnforceStorageQuota(context.TODO())
	g.Expect(report.Err).To(MatchError("grant failed"))
	g.Expect(report.Processed).To(Equal(1))
	g.Expect(report.Restored).To(BeZero())

	e.AssertExpectations(t)
	st.AssertExpectations(t)
	sizes.AssertExpectations(t)
	toggle.AssertExpectations(t)
	sizes.AssertNotCalled(t, "SizeOf", mock.Anything, "d3")
}
