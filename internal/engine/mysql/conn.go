package mysql

import (
	"context"
	"database/sql"
	"net"
	"strconv"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/selebrow/dbquota/pkg/config"
)

// DriverConfig builds driver configuration for connecting to dbName, empty dbName means no default database.
func DriverConfig(cfg config.EngineConfig, dbName string) *gomysql.Config {
	c := gomysql.NewConfig()
	c.User = cfg.MySQLUser()
	c.Passwd = cfg.MySQLPassword()
	if socket := cfg.MySQLSocket(); socket != "" {
		c.Net = "unix"
		c.Addr = socket
	} else {
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(cfg.MySQLHost(), strconv.Itoa(cfg.MySQLPort()))
	}
	c.DBName = dbName
	c.Timeout = cfg.MySQLTimeout()
	c.ReadTimeout = cfg.MySQLReadTimeout()
	c.WriteTimeout = cfg.MySQLReadTimeout()
	// matched rather than changed rows are reported for UPDATE
	c.ClientFoundRows = true
	return c
}

func Open(cfg config.EngineConfig, dbName string) (*sql.DB, error) {
	connector, err := gomysql.NewConnector(DriverConfig(cfg, dbName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mysql connector")
	}
	return sql.OpenDB(connector), nil
}

// SetDriverLogger redirects driver internal logging (connection errors mostly) to zap.
func SetDriverLogger(l *zap.Logger) error {
	return gomysql.SetLogger(zap.NewStdLog(l))
}

// WaitReady pings database until it responds or backoff is exhausted.
func WaitReady(ctx context.Context, db *sql.DB, backoff wait.Backoff, l *zap.Logger) error {
	sl := l.Sugar()
	var lastErr error
	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(ctx context.Context) (bool, error) {
		if lastErr = db.PingContext(ctx); lastErr != nil {
			sl.Warnw("database is not ready yet", zap.Error(lastErr))
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		if lastErr != nil {
			return errors.Wrap(lastErr, "database is not available")
		}
		return errors.Wrap(err, "database is not available")
	}
	return nil
}
