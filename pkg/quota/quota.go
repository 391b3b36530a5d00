package quota

import (
	"context"

	"github.com/selebrow/dbquota/pkg/models"
)

type (
	SizeInspector interface {
		SizeOf(ctx context.Context, db string) (int64, error)
		SizeOfAll(ctx context.Context) (map[string]int64, error)
	}

	PrivilegeInspector interface {
		IsWriteDisabled(ctx context.Context, db string) (bool, error)
	}

	PrivilegeToggle interface {
		GrantWriteAccess(ctx context.Context, db string, tenant *models.Tenant) error
		RevokeWriteAccess(ctx context.Context, db string, tenant *models.Tenant) error
	}

	SessionTerminator interface {
		KillSessions(ctx context.Context, user, db string) error
	}

	// Enforcer runs enforcement cycles. Failures never propagate to the caller, they are reported instead.
	Enforcer interface {
		EnforceStorageQuota(ctx context.Context) *models.CycleReport
	}
)
