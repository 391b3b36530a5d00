package store

import (
	"context"

	"github.com/selebrow/dbquota/pkg/models"
)

// TenantStore persists provisioned tenants. Save must update quota_exceeded atomically.
type TenantStore interface {
	All(ctx context.Context) ([]*models.Tenant, error)
	Save(ctx context.Context, tenant *models.Tenant) error
}
