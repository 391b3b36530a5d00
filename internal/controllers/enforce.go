package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/dbquota/pkg/dto"
	"github.com/selebrow/dbquota/pkg/kubeapi"
	"github.com/selebrow/dbquota/pkg/models"
	"github.com/selebrow/dbquota/pkg/quota"
)

type EnforceController struct {
	enforcer quota.Enforcer
	gate     kubeapi.LeaderGate
}

func NewEnforceController(enforcer quota.Enforcer, gate kubeapi.LeaderGate) *EnforceController {
	return &EnforceController{enforcer: enforcer, gate: gate}
}

// Enforce runs a cycle synchronously. Failed cycle is still reported with 200, its error is part of the report.
func (e *EnforceController) Enforce(c echo.Context) error {
	if !e.gate.IsLeader() {
		return models.NewServiceUnavailableError(models.ErrNotLeader)
	}

	report := e.enforcer.EnforceStorageQuota(c.Request().Context())
	if report.Skipped() {
		return models.NewConflictError(report.Err)
	}
	return c.JSON(http.StatusOK, dto.NewCycleReport(report))
}
