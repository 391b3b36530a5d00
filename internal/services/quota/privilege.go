package quota

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/dbquota/pkg/engine"
	"github.com/selebrow/dbquota/pkg/models"
	"github.com/selebrow/dbquota/pkg/quota"
	"github.com/selebrow/dbquota/pkg/store"
)

const inconsistentStateMsg = "database privileges inconsistent with quota state"

type EnginePrivilegeInspector struct {
	e engine.Engine
}

func NewEnginePrivilegeInspector(e engine.Engine) *EnginePrivilegeInspector {
	return &EnginePrivilegeInspector{e: e}
}

// IsWriteDisabled reports true only when no write privilege is granted on any grant row of db.
func (i *EnginePrivilegeInspector) IsWriteDisabled(ctx context.Context, db string) (bool, error) {
	rows, err := i.e.WritePrivileges(ctx, db)
	if err != nil {
		return false, err
	}
	for _, r := range rows {
		if r.AnyGranted() {
			return false, nil
		}
	}
	return true, nil
}

type EnginePrivilegeToggle struct {
	e         engine.Engine
	inspector quota.PrivilegeInspector
	killer    quota.SessionTerminator
	store     store.TenantStore
	l         *zap.SugaredLogger
}

func NewEnginePrivilegeToggle(
	e engine.Engine,
	inspector quota.PrivilegeInspector,
	killer quota.SessionTerminator,
	st store.TenantStore,
	l *zap.Logger,
) *EnginePrivilegeToggle {
	return &EnginePrivilegeToggle{
		e:         e,
		inspector: inspector,
		killer:    killer,
		store:     st,
		l:         l.Sugar(),
	}
}

func (t *EnginePrivilegeToggle) GrantWriteAccess(ctx context.Context, db string, tenant *models.Tenant) error {
	if err := t.checkConsistency(ctx, db, tenant, true); err != nil {
		return err
	}

	if err := t.setPrivileges(ctx, db, true); err != nil {
		return err
	}

	tenant.SetState(models.QuotaOK)
	return errors.Wrapf(t.store.Save(ctx, tenant), "failed to save tenant %s", tenant.Name)
}

func (t *EnginePrivilegeToggle) RevokeWriteAccess(ctx context.Context, db string, tenant *models.Tenant) error {
	if err := t.checkConsistency(ctx, db, tenant, false); err != nil {
		return err
	}

	if err := t.setPrivileges(ctx, db, false); err != nil {
		return err
	}

	if err := t.killer.KillSessions(ctx, tenant.User, db); err != nil {
		return errors.Wrapf(err, "failed to kill sessions of %s", tenant.User)
	}

	tenant.SetState(models.QuotaOverQuota)
	return errors.Wrapf(t.store.Save(ctx, tenant), "failed to save tenant %s", tenant.Name)
}

// checkConsistency warns when privileges are already in the state the operation is about to set.
// Operation proceeds anyway, the warning means previous cycle didn't complete both engine and store updates.
func (t *EnginePrivilegeToggle) checkConsistency(ctx context.Context, db string, tenant *models.Tenant, granting bool) error {
	disabled, err := t.inspector.IsWriteDisabled(ctx, db)
	if err != nil {
		return err
	}
	if disabled != granting {
		t.l.Warnw(inconsistentStateMsg,
			zap.String("user", tenant.User),
			zap.String("db", db),
			zap.Bool("quota_exceeded", tenant.QuotaExceeded),
			zap.Bool("write_disabled", disabled))
	}
	return nil
}

func (t *EnginePrivilegeToggle) setPrivileges(ctx context.Context, db string, granted bool) error {
	if err := t.e.SetWritePrivileges(ctx, db, granted); err != nil {
		return err
	}
	return t.e.FlushPrivileges(ctx)
}
