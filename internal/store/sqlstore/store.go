package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/dbquota/internal/engine/mysql"
	"github.com/selebrow/dbquota/pkg/models"
)

// MySQLTenantStore reads provisioned tenants from a table of the service's own bookkeeping database.
// Table is expected to have at least name, user and quota_exceeded columns.
type MySQLTenantStore struct {
	db        *sql.DB
	allQuery  string
	saveQuery string
	l         *zap.SugaredLogger
}

func NewMySQLTenantStore(db *sql.DB, schema, table string, l *zap.Logger) *MySQLTenantStore {
	qualified := mysql.QuoteIdentifier(schema) + "." + mysql.QuoteIdentifier(table)
	return &MySQLTenantStore{
		db:        db,
		allQuery:  fmt.Sprintf("SELECT name, user, quota_exceeded FROM %s ORDER BY name", qualified),
		saveQuery: fmt.Sprintf("UPDATE %s SET quota_exceeded = ? WHERE name = ?", qualified),
		l:         l.Sugar().With(zap.String("table", qualified)),
	}
}

func (s *MySQLTenantStore) All(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := s.db.QueryContext(ctx, s.allQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query tenants")
	}
	defer rows.Close()

	var res []*models.Tenant
	for rows.Next() {
		t := new(models.Tenant)
		if err := rows.Scan(&t.Name, &t.User, &t.QuotaExceeded); err != nil {
			return nil, errors.Wrap(err, "failed to scan tenant")
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read tenants")
	}
	return res, nil
}

func (s *MySQLTenantStore) Save(ctx context.Context, tenant *models.Tenant) error {
	res, err := s.db.ExecContext(ctx, s.saveQuery, tenant.QuotaExceeded, tenant.Name)
	if err != nil {
		return errors.Wrapf(err, "failed to update tenant %s", tenant.Name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "failed to update tenant %s", tenant.Name)
	}
	if n == 0 {
		return errors.Wrapf(models.ErrTenantNotFound, "name=%s", tenant.Name)
	}
	s.l.Debugw("tenant saved", zap.String("name", tenant.Name), zap.Bool("quota_exceeded", tenant.QuotaExceeded))
	return nil
}

func (s *MySQLTenantStore) Shutdown(_ context.Context) error {
	return s.db.Close()
}
