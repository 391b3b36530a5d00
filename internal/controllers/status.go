package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/dbquota/internal/services/status"
)

type StatusController struct {
	srv status.StatusService
}

func NewStatusController(srv status.StatusService) *StatusController {
	return &StatusController{srv: srv}
}

func (s *StatusController) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, s.srv.Status())
}

func (s *StatusController) Tenants(c echo.Context) error {
	return c.JSON(http.StatusOK, s.srv.Tenants())
}
