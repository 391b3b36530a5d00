package scheduler

import (
	"context"

	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/selebrow/dbquota/pkg/kubeapi"
	"github.com/selebrow/dbquota/pkg/quota"
)

// Scheduler triggers enforcement cycles on a cron schedule, replicas not holding leadership skip their ticks.
type Scheduler struct {
	c        *cron.Cron
	enforcer quota.Enforcer
	gate     kubeapi.LeaderGate
	ctx      context.Context
	l        *zap.SugaredLogger
}

// NewScheduler creates scheduler for spec, cycles run with ctx which is expected to be cancelled on shutdown.
func NewScheduler(
	ctx context.Context,
	spec string,
	enforcer quota.Enforcer,
	gate kubeapi.LeaderGate,
	l *zap.Logger,
) (*Scheduler, error) {
	cl := zapr.NewLogger(l.Named("cron"))
	s := &Scheduler{
		c: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		enforcer: enforcer,
		gate:     gate,
		ctx:      ctx,
		l:        l.Sugar().With(zap.String("schedule", spec)),
	}
	if _, err := s.c.AddFunc(spec, s.Tick); err != nil {
		return nil, errors.Wrapf(err, "invalid schedule %s", spec)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.c.Start()
	s.l.Info("scheduler started")
}

// Tick runs a single scheduled cycle.
func (s *Scheduler) Tick() {
	if !s.gate.IsLeader() {
		s.l.Debug("not a leader, skipping scheduled enforcement")
		return
	}
	report := s.enforcer.EnforceStorageQuota(s.ctx)
	s.l.Debugw("scheduled enforcement finished", zap.String("cycle", report.ID), zap.Bool("failed", report.Failed()))
}

// Shutdown stops scheduling new cycles and waits for the running one.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	stopped := s.c.Stop()
	select {
	case <-stopped.Done():
		s.l.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "timed out waiting for running enforcement cycle")
	}
}
