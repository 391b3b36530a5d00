package app

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/selebrow/dbquota/internal/scheduler"
	"github.com/selebrow/dbquota/pkg/config"
	"github.com/selebrow/dbquota/pkg/event"
	"github.com/selebrow/dbquota/pkg/kubeapi"
	"github.com/selebrow/dbquota/pkg/quota"
	"github.com/selebrow/dbquota/pkg/signal"
	"github.com/selebrow/dbquota/pkg/store"
)

var (
	InitLogger        func() *zap.Logger                                      = InitLoggerFunc
	InitConfig        func() config.Config                                    = InitConfigFunc
	InitSignalHandler func(config.Config) *signal.Handler                     = InitSignalHandlerFunc
	InitEventBroker   func(config.Config, *signal.Handler) event.EventBroker  = InitEventBrokerFunc
	InitDatabase      func(config.Config, string) *sql.DB                     = InitDatabaseFunc
	InitTenantStore   func(config.Config) store.TenantStore                   = InitTenantStoreFunc
	InitLeaderGate    func(config.Config, *signal.Handler) kubeapi.LeaderGate = InitLeaderGateFunc
	InitMiddleware    func(config.Config, *echo.Echo, *zap.Logger)            = InitMiddlewareFunc
	InitScheduler     func(
		config.Config,
		quota.Enforcer,
		kubeapi.LeaderGate,
		*signal.Handler,
	) *scheduler.Scheduler = InitSchedulerFunc
	InitAPI func(
		config.Config,
		*echo.Echo,
		StatusController,
		UsageController,
		EnforceController,
		InfoController,
		http.Handler,
	) = InitAPIFunc
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)
	initDriverLogger()

	db := InitDatabase(cfg, "")
	// hooks of the db group run in reverse: scheduler waits for the running cycle, engines release
	// their sessions and the pool is closed last
	sig.RegisterShutdownHook(db, closeDatabase(db))
	eng := initEngine(db, "engine")
	sig.RegisterShutdownHook(db, eng.Shutdown)
	// on demand measurements get their own session, so they never interleave with a running cycle
	usageEng := initEngine(db, "usage")
	sig.RegisterShutdownHook(db, usageEng.Shutdown)

	st := InitTenantStore(cfg)
	if s, ok := st.(shutdowner); ok {
		sig.RegisterShutdownHook(db, s.Shutdown)
	}
	eb := InitEventBroker(cfg, sig)
	gate := InitLeaderGate(cfg, sig)

	enforcer := initEnforcer(cfg, eng, st, eb)
	metrics := initMetrics(sig, eb)
	tracker := initStatusTracker(cfg, gate, eb, sig)

	sched := InitScheduler(cfg, enforcer, gate, sig)
	sig.RegisterShutdownHook(db, sched.Shutdown)
	sched.Start()

	statusController := initStatusController(tracker)
	usageController := initUsageController(cfg, usageEng)
	enforceController := initEnforceController(enforcer, gate)
	infoController := initInfoController(cfg, appName, gitRef, gitSha)

	srvLog := l.Named("server")
	e := initEcho(cfg, srvLog)
	// Routes
	initUI(cfg, e, tracker, enforcer, gate)
	InitAPI(
		cfg,
		e,
		statusController,
		usageController,
		enforceController,
		infoController,
		metrics.Handler(),
	)

	// Start server
	go func() {
		lstn := listen(cfg)
		sl := srvLog.Sugar()
		sl.Infof("listening on %s", lstn)
		if err := e.Start(lstn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()

	sig.RegisterShutdownHook(nil, e.Shutdown)
	os.Exit(sig.Start())
}
