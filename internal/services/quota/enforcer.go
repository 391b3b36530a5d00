package quota

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/dbquota/pkg/engine"
	"github.com/selebrow/dbquota/pkg/event"
	evmodels "github.com/selebrow/dbquota/pkg/event/models"
	"github.com/selebrow/dbquota/pkg/models"
	"github.com/selebrow/dbquota/pkg/quota"
	"github.com/selebrow/dbquota/pkg/store"
)

type EnforcerOpts struct {
	MaxDBSize int64
	AdminDB   string
}

// StorageQuotaEnforcer walks all provisioned tenants and toggles their write access based on database size.
// Any error aborts the rest of the cycle, unprocessed tenants are picked up by the next one.
type StorageQuotaEnforcer struct {
	e      engine.Engine
	store  store.TenantStore
	sizes  quota.SizeInspector
	toggle quota.PrivilegeToggle
	eb     event.EventBroker
	opts   EnforcerOpts
	m      sync.Mutex
	newID  func() string
	now    func() time.Time
	l      *zap.SugaredLogger
}

func NewStorageQuotaEnforcer(
	e engine.Engine,
	st store.TenantStore,
	sizes quota.SizeInspector,
	toggle quota.PrivilegeToggle,
	eb event.EventBroker,
	opts EnforcerOpts,
	newID func() string,
	now func() time.Time,
	l *zap.Logger,
) *StorageQuotaEnforcer {
	logger := l.Sugar()
	logger.Infow("initializing storage quota enforcer",
		zap.Int64("max_db_size", opts.MaxDBSize),
		zap.String("admin_db", opts.AdminDB))
	return &StorageQuotaEnforcer{
		e:      e,
		store:  st,
		sizes:  sizes,
		toggle: toggle,
		eb:     eb,
		opts:   opts,
		newID:  newID,
		now:    now,
		l:      logger,
	}
}

func (s *StorageQuotaEnforcer) EnforceStorageQuota(ctx context.Context) *models.CycleReport {
	report := &models.CycleReport{
		ID:      s.newID(),
		Started: s.now(),
	}
	l := s.l.With(zap.String("cycle", report.ID))

	if !s.m.TryLock() {
		report.Err = models.ErrCycleInProgress
		l.Warn("skipping enforcement cycle, previous one is still running")
		s.eb.Publish(evmodels.NewCycleCompletedEvent(evmodels.CycleCompleted{Report: *report}))
		return report
	}
	defer s.m.Unlock()
	// session lives for one cycle only
	defer s.e.Release()

	l.Debug("enforcement cycle started")
	processed, err := s.enforce(ctx, report, l)
	if err != nil {
		report.Err = err
		ee := models.ClassifyEngineError(err)
		l.Warnw("enforcement cycle aborted",
			zap.Uint16("errno", ee.Number),
			zap.String("error", ee.Message),
			zap.Int("processed", report.Processed),
			zap.String("stacktrace", fmt.Sprintf("%+v", err)))
	}
	report.Duration = s.now().Sub(report.Started)
	l.Debugw("enforcement cycle completed",
		zap.Duration("duration", report.Duration),
		zap.Int("processed", report.Processed),
		zap.Int("revoked", report.Revoked),
		zap.Int("restored", report.Restored))

	s.eb.Publish(evmodels.NewCycleCompletedEvent(evmodels.CycleCompleted{Report: *report, Tenants: processed}))
	return report
}

// enforce returns names of processed tenants, all of them when there is no error.
func (s *StorageQuotaEnforcer) enforce(ctx context.Context, report *models.CycleReport, l *zap.SugaredLogger) ([]string, error) {
	if err := s.e.SelectDB(ctx, s.opts.AdminDB); err != nil {
		return nil, err
	}

	tenants, err := s.store.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	processed := make([]string, 0, len(tenants))
	for _, t := range tenants {
		if err := s.enforceTenant(ctx, t, report, l); err != nil {
			return processed, err
		}
		processed = append(processed, t.Name)
		report.Processed++
	}
	return processed, nil
}

func (s *StorageQuotaEnforcer) enforceTenant(
	ctx context.Context,
	t *models.Tenant,
	report *models.CycleReport,
	l *zap.SugaredLogger,
) error {
	db := t.Name
	size, err := s.sizes.SizeOf(ctx, db)
	if err != nil {
		return err
	}

	s.eb.Publish(evmodels.NewTenantMeasuredEvent(evmodels.TenantMeasured{
		CycleID: report.ID,
		Tenant:  *t,
		Size:    size,
		Limit:   s.opts.MaxDBSize,
	}))

	from := t.State()
	action, to := quota.Transition(from, size, s.opts.MaxDBSize)
	switch action {
	case quota.ActionRevoke:
		if err := s.toggle.RevokeWriteAccess(ctx, db, t); err != nil {
			return err
		}
		report.Revoked++
		l.Infof("Storage quota exceeded: %s -- access revoked", t.Listing(size))
	case quota.ActionGrant:
		if err := s.toggle.GrantWriteAccess(ctx, db, t); err != nil {
			return err
		}
		report.Restored++
		l.Infof("Below storage quota: %s -- access restored", t.Listing(size))
	default:
		return nil
	}

	s.eb.Publish(evmodels.NewQuotaStateChangedEvent(evmodels.QuotaStateChanged{
		CycleID: report.ID,
		Tenant:  *t,
		Size:    size,
		Limit:   s.opts.MaxDBSize,
		From:    from,
		To:      to,
	}))
	return nil
}
