package sqlstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/dbquota/pkg/models"
)

const (
	testAllQuery  = "SELECT name, user, quota_exceeded FROM `mysql_node`.`provisioned_services` ORDER BY name"
	testSaveQuery = "UPDATE `mysql_node`.`provisioned_services` SET quota_exceeded = ? WHERE name = ?"
)

func newTestStore(t *testing.T) (*MySQLTenantStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewMySQLTenantStore(db, "mysql_node", "provisioned_services", zaptest.NewLogger(t)), mock
}

func TestMySQLTenantStore_All(t *testing.T) {
	g := NewWithT(t)
	s, mock := newTestStore(t)

	mock.ExpectQuery(testAllQuery).WillReturnRows(
		sqlmock.NewRows([]string{"name", "user", "quota_exceeded"}).
			AddRow("d1", "u1", int64(0)).
			AddRow("d2", "u2", int64(1)))

	got, err := s.All(context.TODO())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal([]*models.Tenant{
		{Name: "d1", User: "u1"},
		{Name: "d2", User: "u2", QuotaExceeded: true},
	}))
	g.Expect(mock.ExpectationsWereMet()).To(Succeed())
}

func TestMySQLTenantStore_AllError(t *testing.T) {
	g := NewWithT(t)
	s, mock := newTestStore(t)

	queryErr := errors.New("table doesn't exist")
	mock.ExpectQuery(testAllQuery).WillReturnError(queryErr)

	_, err := s.All(context.TODO())
	g.Expect(err).To(MatchError(queryErr))
	g.Expect(err).To(MatchError("failed to query tenants: table doesn't exist"))
	g.Expect(fmt.Sprintf("%+v", err)).To(ContainSubstring("(*MySQLTenantStore).All"))
	g.Expect(mock.ExpectationsWereMet()).To(Succeed())
}

func TestMySQLTenantStore_AllRowError(t *testing.T) {
	g := NewWithT(t)
	s, mock := newTestStore(t)

	mock.ExpectQuery(testAllQuery).WillReturnRows(
		sqlmock.NewRows([]string{"name", "user", "quota_exceeded"}).
			AddRow("d1", "u1", int64(0)).
			AddRow("d2", "u2", int64(1)).
			RowError(1, errors.New("connection reset")))

	got, err := s.All(context.TODO())
	g.Expect(err).To(MatchError("failed to read tenants: connection reset"))
	g.Expect(got).To(BeNil())
}

func TestMySQLTenantStore_Save(t *testing.T) {
	g := NewWithT(t)
	s, mock := newTestStore(t)

	mock.ExpectExec(testSaveQuery).WithArgs(true, "d1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(testSaveQuery).WithArgs(false, "d2").WillReturnResult(sqlmock.NewResult(0, 1))

	g.Expect(s.Save(context.TODO(), &models.Tenant{Name: "d1", User: "u1", QuotaExceeded: true})).To(Succeed())
	g.Expect(s.Save(context.TODO(), &models.Tenant{Name: "d2", User: "u2"})).To(Succeed())
	g.Expect(mock.ExpectationsWereMet()).To(Succeed())
}

func TestMySQLTenantStore_SaveNotFound(t *testing.T) {
	g := NewWithT(t)
	s, mock := newTestStore(t)

	mock.ExpectExec(testSaveQuery).WithArgs(true, "d3").WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Save(context.TODO(), &models.Tenant{Name: "d3", User: "u3", QuotaExceeded: true})
	g.Expect(err).To(MatchError(models.ErrTenantNotFound))
	g.Expect(mock.ExpectationsWereMet()).To(Succeed())
}

func TestMySQLTenantStore_SaveError(t *testing.T) {
	g := NewWithT(t)
	s, mock := newTestStore(t)

	execErr := errors.New("read only")
	mock.ExpectExec(testSaveQuery).WithArgs(true, "d1").WillReturnError(execErr)

	err := s.Save(context.TODO(), &models.Tenant{Name: "d1", User: "u1", QuotaExceeded: true})
	g.Expect(err).To(MatchError(execErr))
	g.Expect(err).To(MatchError("failed to update tenant d1: read only"))
	g.Expect(fmt.Sprintf("%+v", err)).To(ContainSubstring("(*MySQLTenantStore).Save"))
	g.Expect(mock.ExpectationsWereMet()).To(Succeed())
}

func TestMySQLTenantStore_Shutdown(t *testing.T) {
	g := NewWithT(t)
	s, mock := newTestStore(t)
	mock.ExpectClose()

	g.Expect(s.Shutdown(context.TODO())).To(Succeed())
	g.Expect(mock.ExpectationsWereMet()).To(Succeed())
}
