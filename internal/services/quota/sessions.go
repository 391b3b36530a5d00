package quota

import (
	"context"

	"go.uber.org/zap"

	"github.com/selebrow/dbquota/pkg/engine"
)

type EngineSessionTerminator struct {
	e engine.Engine
	l *zap.SugaredLogger
}

func NewEngineSessionTerminator(e engine.Engine, l *zap.Logger) *EngineSessionTerminator {
	return &EngineSessionTerminator{
		e: e,
		l: l.Sugar(),
	}
}

// KillSessions terminates every session of user connected to db, sessions matching only one of them are kept.
func (t *EngineSessionTerminator) KillSessions(ctx context.Context, user, db string) error {
	procs, err := t.e.ListProcesses(ctx)
	if err != nil {
		return err
	}

	for _, p := range procs {
		if p.User != user || p.DB != db {
			continue
		}
		if err := t.e.KillConnection(ctx, p.ID); err != nil {
			return err
		}
		t.l.Debugw("session killed", zap.Uint64("id", p.ID), zap.String("user", user), zap.String("db", db))
	}
	return nil
}
