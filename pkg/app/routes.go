package app

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/selebrow/dbquota/html"
	"github.com/selebrow/dbquota/internal/controllers"
	"github.com/selebrow/dbquota/internal/router"
	quotasrv "github.com/selebrow/dbquota/internal/services/quota"
	"github.com/selebrow/dbquota/internal/services/status"
	"github.com/selebrow/dbquota/pkg/config"
	"github.com/selebrow/dbquota/pkg/engine"
	"github.com/selebrow/dbquota/pkg/kubeapi"
	"github.com/selebrow/dbquota/pkg/quota"
)

type (
	StatusController interface {
		Status(c echo.Context) error
		Tenants(c echo.Context) error
	}

	UsageController interface {
		Usage(c echo.Context) error
	}

	EnforceController interface {
		Enforce(c echo.Context) error
	}

	InfoController interface {
		Info(c echo.Context) error
	}
)

func initEcho(cfg config.Config, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.ErrorHandler

	// Middleware
	InitMiddleware(cfg, e, l)
	return e
}

func InitMiddlewareFunc(_ config.Config, e *echo.Echo, srvLogger *zap.Logger) {
	isQuiet := func(c echo.Context) bool {
		p := c.Request().URL.Path
		return strings.HasPrefix(p, router.StaticRoot) || strings.HasPrefix(p, router.UIRoot) || p == router.MetricsPath
	}

	if srvLogger.Core().Enabled(zap.DebugLevel) {
		accLogger := srvLogger.Named("access").Sugar()
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: isQuiet,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				l := accLogger.With(zap.Time("start_time", v.StartTime),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("remote_ip", v.RemoteIP),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					l = l.With(zap.Error(v.Error))
				}
				l.Debug()
				return nil
			},
			LogLatency:  true,
			LogRemoteIP: true,
			LogMethod:   true,
			LogURI:      true,
			LogStatus:   true,
			LogError:    true,
			HandleError: true,
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true, // this will be handled by zap logger
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			srvLogger.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))
}

func InitAPIFunc(
	_ config.Config,
	e *echo.Echo,
	statusController StatusController,
	usageController UsageController,
	enforceController EnforceController,
	infoController InfoController,
	metricsHandler http.Handler,
) {
	e.GET(router.StatusPath, statusController.Status)
	e.GET(router.TenantsPath, statusController.Tenants)
	e.GET(router.UsagePath, usageController.Usage)
	e.POST(router.EnforcePath, enforceController.Enforce)
	e.GET(router.InfoPath, infoController.Info)
	e.GET(router.MetricsPath, echo.WrapHandler(metricsHandler))
}

func initUI(cfg config.Config, e *echo.Echo, srv status.StatusService, enforcer quota.Enforcer, gate kubeapi.LeaderGate) {
	if !cfg.UI() {
		return
	}
	initRenderer(e)

	uictrl := controllers.NewUIController(srv, enforcer, gate, listen(cfg))

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, router.UIRoot)
	})
	e.StaticFS(router.StaticRoot, echo.MustSubFS(html.StaticFS(), html.StaticFSRoot))

	ui := e.Group(router.UIRoot, middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusTemporaryRedirect,
	}))
	ui.GET("", uictrl.Index)
	ui.POST(router.UIEnforcePath, uictrl.Enforce)

	InitLog.Infof("UI initialized at %s", uictrl.URL())
}

func initRenderer(e *echo.Echo) {
	r, err := html.NewTemplateRenderer(html.TemplatesFS())
	if err != nil {
		InitLog.Fatalw("failed to initialize template renderer", zap.Error(err))
	}
	e.Renderer = r
}

func initStatusController(srv status.StatusService) *controllers.StatusController {
	return controllers.NewStatusController(srv)
}

func initUsageController(cfg config.Config, e engine.Engine) *controllers.UsageController {
	return controllers.NewUsageController(quotasrv.NewEngineSizeInspector(e), cfg.MaxDBSize())
}

func initEnforceController(enforcer quota.Enforcer, gate kubeapi.LeaderGate) *controllers.EnforceController {
	return controllers.NewEnforceController(enforcer, gate)
}

func initInfoController(cfg config.Config, appName, gitRef, gitSha string) *controllers.InfoController {
	return controllers.NewInfoController(appName, gitRef, gitSha, cfg)
}
