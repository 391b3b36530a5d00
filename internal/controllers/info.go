package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/dbquota/pkg/config"
	"github.com/selebrow/dbquota/pkg/dto"
)

// InfoConfig is the part of configuration exposed by info endpoint, credentials are never included.
type InfoConfig interface {
	config.QuotaConfig
	config.SchedulerConfig
	Store() config.StoreType
}

// InfoController reports build and enforcement settings, both fixed for the process lifetime.
type InfoController struct {
	info dto.AppInfo
}

func NewInfoController(appName, gitRef, gitSha string, cfg InfoConfig) *InfoController {
	return &InfoController{info: dto.AppInfo{
		Name:      appName,
		GitRef:    gitRef,
		GitSha:    gitSha,
		MaxDBSize: cfg.MaxDBSize(),
		AdminDB:   cfg.AdminDB(),
		Schedule:  cfg.Schedule(),
		Store:     string(cfg.Store()),
	}}
}

func (i *InfoController) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, &i.info)
}
