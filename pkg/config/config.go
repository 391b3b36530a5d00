package config

import (
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/apimachinery/pkg/api/resource"
)

var ConfigPrefix = "DQ"

type StoreType string

const (
	StoreFile  StoreType = "file"
	StoreMySQL StoreType = "mysql"

	DefaultListen      = "0.0.0.0:8080"
	DefaultLocalListen = "127.0.0.1:8080"

	listen = "listen"
	ui     = "ui"

	mysqlHost           = "mysql-host"
	mysqlPort           = "mysql-port"
	mysqlSocket         = "mysql-socket"
	mysqlUser           = "mysql-user"
	mysqlPassword       = "mysql-password"
	mysqlTimeout        = "mysql-timeout"
	mysqlReadTimeout    = "mysql-read-timeout"
	mysqlConnectRetries = "mysql-connect-retries"
	adminDB             = "admin-db"

	maxDBSize = "max-db-size"
	schedule  = "schedule"

	store       = "store"
	tenantsFile = "tenants-file"
	storeDB     = "store-db"
	storeTable  = "store-table"

	leaderElect        = "leader-elect"
	namespace          = "namespace"
	leaseName          = "lease-name"
	kubeConfig         = "kube-config"
	kubeClusterModeOut = "kube-cluster-mode-out"

	defaultConfigPath  = "config/"
	defaultTenantsFile = defaultConfigPath + "tenants.yaml"
)

var (
	envReplacer = strings.NewReplacer("-", "_")

	validStores     = []StoreType{StoreFile, StoreMySQL}
	validStoresHelp = quoteStrings(validStores)

	cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
)

type (
	EngineConfig interface {
		MySQLHost() string
		MySQLPort() int
		MySQLSocket() string
		MySQLUser() string
		MySQLPassword() string
		MySQLTimeout() time.Duration
		MySQLReadTimeout() time.Duration
		MySQLConnectRetries() int
	}

	QuotaConfig interface {
		MaxDBSize() int64
		AdminDB() string
	}

	SchedulerConfig interface {
		Schedule() string
	}

	StoreConfig interface {
		Store() StoreType
		TenantsFile() string
		StoreDB() string
		StoreTable() string
	}

	KubeConfig interface {
		LeaderElect() bool
		Namespace() string
		LeaseName() string
		KubeClusterModeOut() bool
		KubeConfig() string
	}

	Config interface {
		EngineConfig
		QuotaConfig
		SchedulerConfig
		StoreConfig
		KubeConfig
		Listen() string
		UI() bool
	}

	ConfigViper struct {
		v         *viper.Viper
		maxDBSize int64
		store     StoreType
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	size, err := parseSize(v.GetString(maxDBSize))
	if err != nil {
		return nil, err
	}

	st := StoreType(strings.ToLower(v.GetString(store)))
	if !slices.Contains(validStores, st) {
		return nil, errors.Errorf("invalid store parameter specified (%s), valid options are: %s", st, validStoresHelp)
	}

	if _, err := cronParser.Parse(v.GetString(schedule)); err != nil {
		return nil, errors.Wrapf(err, "invalid schedule specified (%s)", v.GetString(schedule))
	}

	return &ConfigViper{
		v:         v,
		maxDBSize: size,
		store:     st,
	}, nil
}

func (c *ConfigViper) MySQLHost() string {
	return c.v.GetString(mysqlHost)
}

func (c *ConfigViper) MySQLPort() int {
	return c.v.GetInt(mysqlPort)
}

func (c *ConfigViper) MySQLSocket() string {
	return c.v.GetString(mysqlSocket)
}

func (c *ConfigViper) MySQLUser() string {
	return c.v.GetString(mysqlUser)
}

func (c *ConfigViper) MySQLPassword() string {
	return c.v.GetString(mysqlPassword)
}

func (c *ConfigViper) MySQLTimeout() time.Duration {
	return c.v.GetDuration(mysqlTimeout)
}

func (c *ConfigViper) MySQLReadTimeout() time.Duration {
	return c.v.GetDuration(mysqlReadTimeout)
}

func (c *ConfigViper) MySQLConnectRetries() int {
	return c.v.GetInt(mysqlConnectRetries)
}

func (c *ConfigViper) MaxDBSize() int64 {
	return c.maxDBSize
}

func (c *ConfigViper) AdminDB() string {
	return c.v.GetString(adminDB)
}

func (c *ConfigViper) Schedule() string {
	return c.v.GetString(schedule)
}

func (c *ConfigViper) Store() StoreType {
	return c.store
}

func (c *ConfigViper) TenantsFile() string {
	return c.v.GetString(tenantsFile)
}

func (c *ConfigViper) StoreDB() string {
	return c.v.GetString(storeDB)
}

func (c *ConfigViper) StoreTable() string {
	return c.v.GetString(storeTable)
}

func (c *ConfigViper) LeaderElect() bool {
	return c.v.GetBool(leaderElect)
}

func (c *ConfigViper) Namespace() string {
	return c.v.GetString(namespace)
}

func (c *ConfigViper) LeaseName() string {
	return c.v.GetString(leaseName)
}

func (c *ConfigViper) KubeClusterModeOut() bool {
	return c.v.GetBool(kubeClusterModeOut)
}

func (c *ConfigViper) KubeConfig() string {
	return c.v.GetString(kubeConfig)
}

func (c *ConfigViper) Listen() string {
	return c.v.GetString(listen)
}

func (c *ConfigViper) UI() bool {
	return c.v.GetBool(ui)
}

// parseSize accepts plain byte counts as well as quantities like 20Mi or 1G.
func parseSize(s string) (int64, error) {
	q, err := resource.ParseQuantity(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid max database size specified (%s)", s)
	}
	size := q.Value()
	if size <= 0 {
		return 0, errors.Errorf("max database size must be positive, got %s", s)
	}
	return size, nil
}

func bindEnvVars(v *viper.Viper) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)

	// lease namespace is read from POD_NAMESPACE only, no DQ_ prefix
	return v.BindEnv(namespace, "POD_NAMESPACE")
}

func quoteStrings[T ~string](vals []T) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune('"')
		sb.WriteString(string(v))
		sb.WriteRune('"')
	}
	return sb.String()
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
