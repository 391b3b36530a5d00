package app

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/selebrow/dbquota/internal/engine/mysql"
	"github.com/selebrow/dbquota/internal/metrics"
	quotasrv "github.com/selebrow/dbquota/internal/services/quota"
	"github.com/selebrow/dbquota/internal/services/status"
	"github.com/selebrow/dbquota/internal/scheduler"
	"github.com/selebrow/dbquota/internal/store/file"
	"github.com/selebrow/dbquota/internal/store/sqlstore"
	"github.com/selebrow/dbquota/pkg/config"
	"github.com/selebrow/dbquota/pkg/event"
	"github.com/selebrow/dbquota/pkg/kubeapi"
	"github.com/selebrow/dbquota/pkg/log"
	"github.com/selebrow/dbquota/pkg/quota"
	"github.com/selebrow/dbquota/pkg/signal"
	"github.com/selebrow/dbquota/pkg/store"
)

const (
	defaultEventBufferSize = 100
	shutdownTimeout        = 30 * time.Second
)

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

var (
	InitLog *zap.SugaredLogger

	InContainer = kubeapi.InContainer
)

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitSignalHandlerFunc(_ config.Config) *signal.Handler {
	l := log.GetLogger().Named("signal")
	// running cycle may take a while to finish on a large server
	return signal.NewHandler(shutdownTimeout, l)
}

func initDriverLogger() {
	if err := mysql.SetDriverLogger(log.GetLogger().Named("driver")); err != nil {
		InitLog.Warnw("failed to set mysql driver logger", zap.Error(err))
	}
}

// InitDatabaseFunc opens connection pool to the engine and waits until server is reachable.
func InitDatabaseFunc(cfg config.Config, dbName string) *sql.DB {
	db, err := mysql.Open(cfg, dbName)
	if err != nil {
		InitLog.Fatalw("failed to open database", zap.Error(err))
	}

	l := log.GetLogger().Named("database")
	if err := mysql.WaitReady(context.Background(), db, connectBackoff(cfg), l); err != nil {
		InitLog.Fatalw("database is not reachable", zap.Error(err), zap.String("db", dbName))
	}
	return db
}

func connectBackoff(cfg config.EngineConfig) wait.Backoff {
	return wait.Backoff{
		Duration: time.Second,
		Factor:   2,
		Jitter:   0.1,
		Steps:    max(cfg.MySQLConnectRetries(), 1),
		Cap:      30 * time.Second,
	}
}

func closeDatabase(db *sql.DB) signal.ShutdownHook {
	return func(_ context.Context) error {
		return db.Close()
	}
}

func initEngine(db *sql.DB, name string) *mysql.Engine {
	return mysql.NewEngine(db, log.GetLogger().Named(name))
}

func InitTenantStoreFunc(cfg config.Config) store.TenantStore {
	l := log.GetLogger().Named("store")
	InitLog.Infof("initializing %s tenant store", cfg.Store())

	if cfg.Store() == config.StoreMySQL {
		db := InitDatabase(cfg, cfg.StoreDB())
		return sqlstore.NewMySQLTenantStore(db, cfg.StoreDB(), cfg.StoreTable(), l)
	}

	s, err := file.NewYamlTenantStore(cfg.TenantsFile(), l)
	if err != nil {
		InitLog.Fatalw("failed to initialize tenant store", zap.Error(err))
	}
	if err := s.Watch(); err != nil {
		InitLog.Warnw("tenants file changes will not be picked up", zap.Error(err))
	}
	return s
}

func InitEventBrokerFunc(_ config.Config, sig *signal.Handler) event.EventBroker {
	l := log.GetLogger().Named("event")
	eb := event.NewEventBrokerImpl(defaultEventBufferSize, l)
	sig.RegisterShutdownHook(eb, eb.ShutDown)
	return eb
}

func InitLeaderGateFunc(cfg config.Config, sig *signal.Handler) kubeapi.LeaderGate {
	if !cfg.LeaderElect() {
		return kubeapi.AlwaysLeader{}
	}

	l := log.GetLogger().Named("leader")
	client, err := kubeapi.NewClient(cfg, l)
	if err != nil {
		InitLog.Fatalw("failed to initialize kubernetes client", zap.Error(err))
	}
	gate, err := kubeapi.NewLeaseLeaderGate(client.Clientset(), client.Namespace(), cfg.LeaseName(), l)
	if err != nil {
		InitLog.Fatalw("failed to initialize leader election", zap.Error(err))
	}
	InitLog.Infow("leader election enabled",
		zap.String("lease", cfg.LeaseName()),
		zap.String("namespace", client.Namespace()),
		zap.String("identity", gate.Identity()))

	// lease is released once signal context is cancelled
	go gate.Run(sig.Context())
	return gate
}

func initEnforcer(cfg config.Config, eng *mysql.Engine, st store.TenantStore, eb event.EventBroker) *quotasrv.StorageQuotaEnforcer {
	l := log.GetLogger().Named("quota")
	toggle := quotasrv.NewEnginePrivilegeToggle(
		eng,
		quotasrv.NewEnginePrivilegeInspector(eng),
		quotasrv.NewEngineSessionTerminator(eng, l),
		st,
		l,
	)
	return quotasrv.NewStorageQuotaEnforcer(
		eng,
		st,
		quotasrv.NewEngineSizeInspector(eng),
		toggle,
		eb,
		quotasrv.EnforcerOpts{MaxDBSize: cfg.MaxDBSize(), AdminDB: cfg.AdminDB()},
		uuid.NewString,
		time.Now,
		l,
	)
}

func initMetrics(sig *signal.Handler, eb event.EventBroker) *metrics.QuotaMetrics {
	m := metrics.NewQuotaMetrics(log.GetLogger().Named("metrics"))
	m.Start(sig.Context(), eb)
	return m
}

func initStatusTracker(cfg config.Config, gate kubeapi.LeaderGate, eb event.EventBroker, sig *signal.Handler) *status.QuotaStatusTracker {
	t := status.NewQuotaStatusTracker(cfg.MaxDBSize(), gate, log.GetLogger().Named("status"))
	t.Start(sig.Context(), eb)
	return t
}

func InitSchedulerFunc(cfg config.Config, enforcer quota.Enforcer, gate kubeapi.LeaderGate, sig *signal.Handler) *scheduler.Scheduler {
	s, err := scheduler.NewScheduler(sig.Context(), cfg.Schedule(), enforcer, gate, log.GetLogger().Named("scheduler"))
	if err != nil {
		InitLog.Fatalw("failed to initialize scheduler", zap.Error(err))
	}
	return s
}

func listen(cfg config.Config) string {
	if val := cfg.Listen(); val != "" {
		return val
	}
	if InContainer() {
		return config.DefaultListen
	}
	return config.DefaultLocalListen
}
