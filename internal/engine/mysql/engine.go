package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/dbquota/pkg/models"
)

const (
	privGranted = "Y"
	privDenied  = "N"

	schemaSizeQuery = "SELECT SUM(data_length + index_length) FROM information_schema.TABLES " +
		"WHERE table_schema = ? GROUP BY table_schema"
	schemaSizesQuery = "SELECT table_schema, SUM(data_length + index_length) FROM information_schema.TABLES " +
		"GROUP BY table_schema"
	listDatabasesQuery   = "SHOW DATABASES"
	writePrivilegesQuery = "SELECT insert_priv, create_priv, update_priv FROM db WHERE Db = ?"
	setWritePrivQuery    = "UPDATE db SET insert_priv = ?, create_priv = ?, update_priv = ? WHERE Db = ?"
	flushPrivilegesQuery = "FLUSH PRIVILEGES"
	listProcessesQuery   = "SELECT ID, USER, DB FROM information_schema.PROCESSLIST"
)

// Engine runs statements on a single connection pinned from the pool until Release.
// Connection is also dropped after any failed statement so the next caller starts with a fresh session.
type Engine struct {
	db   *sql.DB
	conn *sql.Conn
	m    sync.Mutex
	l    *zap.SugaredLogger
}

func NewEngine(db *sql.DB, l *zap.Logger) *Engine {
	return &Engine{
		db: db,
		l:  l.Sugar(),
	}
}

func (e *Engine) SelectDB(ctx context.Context, name string) error {
	return e.withConn(ctx, func(c *sql.Conn) error {
		_, err := c.ExecContext(ctx, "USE "+QuoteIdentifier(name))
		return errors.Wrapf(err, "failed to select database %s", name)
	})
}

func (e *Engine) SchemaSize(ctx context.Context, schema string) (int64, error) {
	var size int64
	err := e.withConn(ctx, func(c *sql.Conn) error {
		rows, err := c.QueryContext(ctx, schemaSizeQuery, schema)
		if err != nil {
			return errors.Wrapf(err, "failed to query size of %s", schema)
		}
		defer rows.Close()

		for rows.Next() {
			var s sql.NullInt64
			if err := rows.Scan(&s); err != nil {
				return errors.Wrap(err, "failed to scan schema size")
			}
			size += s.Int64
		}
		return errors.Wrap(rows.Err(), "failed to read schema size")
	})
	return size, err
}

func (e *Engine) SchemaSizes(ctx context.Context) (map[string]int64, error) {
	sizes := make(map[string]int64)
	err := e.withConn(ctx, func(c *sql.Conn) error {
		rows, err := c.QueryContext(ctx, schemaSizesQuery)
		if err != nil {
			return errors.Wrap(err, "failed to query schema sizes")
		}
		defer rows.Close()

		for rows.Next() {
			var (
				name string
				s    sql.NullInt64
			)
			if err := rows.Scan(&name, &s); err != nil {
				return errors.Wrap(err, "failed to scan schema sizes")
			}
			sizes[name] = s.Int64
		}
		return errors.Wrap(rows.Err(), "failed to read schema sizes")
	})
	if err != nil {
		return nil, err
	}
	return sizes, nil
}

func (e *Engine) ListDatabases(ctx context.Context) ([]string, error) {
	var dbs []string
	err := e.withConn(ctx, func(c *sql.Conn) error {
		rows, err := c.QueryContext(ctx, listDatabasesQuery)
		if err != nil {
			return errors.Wrap(err, "failed to list databases")
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return errors.Wrap(err, "failed to scan database name")
			}
			dbs = append(dbs, name)
		}
		return errors.Wrap(rows.Err(), "failed to read databases")
	})
	if err != nil {
		return nil, err
	}
	return dbs, nil
}

func (e *Engine) WritePrivileges(ctx context.Context, db string) ([]models.PrivilegeState, error) {
	var res []models.PrivilegeState
	err := e.withConn(ctx, func(c *sql.Conn) error {
		rows, err := c.QueryContext(ctx, writePrivilegesQuery, db)
		if err != nil {
			return errors.Wrapf(err, "failed to query privileges of %s", db)
		}
		defer rows.Close()

		for rows.Next() {
			var ins, cr, upd string
			if err := rows.Scan(&ins, &cr, &upd); err != nil {
				return errors.Wrap(err, "failed to scan privileges")
			}
			res = append(res, models.PrivilegeState{
				Insert: isGranted(ins),
				Create: isGranted(cr),
				Update: isGranted(upd),
			})
		}
		return errors.Wrap(rows.Err(), "failed to read privileges")
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) SetWritePrivileges(ctx context.Context, db string, granted bool) error {
	priv := privDenied
	if granted {
		priv = privGranted
	}
	return e.withConn(ctx, func(c *sql.Conn) error {
		_, err := c.ExecContext(ctx, setWritePrivQuery, priv, priv, priv, db)
		return errors.Wrapf(err, "failed to set write privileges of %s to %s", db, priv)
	})
}

func (e *Engine) FlushPrivileges(ctx context.Context) error {
	return e.withConn(ctx, func(c *sql.Conn) error {
		_, err := c.ExecContext(ctx, flushPrivilegesQuery)
		return errors.Wrap(err, "failed to flush privileges")
	})
}

func (e *Engine) ListProcesses(ctx context.Context) ([]models.Process, error) {
	var res []models.Process
	err := e.withConn(ctx, func(c *sql.Conn) error {
		rows, err := c.QueryContext(ctx, listProcessesQuery)
		if err != nil {
			return errors.Wrap(err, "failed to list processes")
		}
		defer rows.Close()

		for rows.Next() {
			var (
				p        models.Process
				user, db sql.NullString
			)
			if err := rows.Scan(&p.ID, &user, &db); err != nil {
				return errors.Wrap(err, "failed to scan process")
			}
			p.User = user.String
			p.DB = db.String
			res = append(res, p)
		}
		return errors.Wrap(rows.Err(), "failed to read processes")
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) KillConnection(ctx context.Context, id uint64) error {
	return e.withConn(ctx, func(c *sql.Conn) error {
		_, err := c.ExecContext(ctx, fmt.Sprintf("KILL CONNECTION %d", id))
		return errors.Wrapf(err, "failed to kill connection %d", id)
	})
}

// Release returns pinned connection to the pool, so idle sessions between cycles are subject
// to pool lifetime checks instead of server wait_timeout.
func (e *Engine) Release() {
	e.m.Lock()
	defer e.m.Unlock()
	e.releaseConn()
}

// Shutdown releases pinned connection, pool itself is owned by the caller.
func (e *Engine) Shutdown(_ context.Context) error {
	e.Release()
	return nil
}

func (e *Engine) withConn(ctx context.Context, fn func(c *sql.Conn) error) error {
	e.m.Lock()
	defer e.m.Unlock()

	if e.conn == nil {
		c, err := e.db.Conn(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to acquire engine connection")
		}
		e.conn = c
	}

	if err := fn(e.conn); err != nil {
		e.l.Debugw("dropping engine connection after failed statement", zap.Error(err))
		e.releaseConn()
		return err
	}
	return nil
}

func (e *Engine) releaseConn() {
	if e.conn == nil {
		return
	}
	if err := e.conn.Close(); err != nil {
		e.l.Warnw("failed to release engine connection", zap.Error(err))
	}
	e.conn = nil
}

func isGranted(priv string) bool {
	return strings.EqualFold(priv, privGranted)
}

// QuoteIdentifier quotes MySQL identifier with backticks.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
