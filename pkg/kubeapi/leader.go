package kubeapi

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/leaderelection"
	"k8s.io/client-go/tools/leaderelection/resourcelock"
)

var (
	leaseDuration = 15 * time.Second
	renewDeadline = 10 * time.Second
	retryPeriod   = 2 * time.Second
)

type LeaderGate interface {
	IsLeader() bool
}

// AlwaysLeader is used when leader election is disabled.
type AlwaysLeader struct{}

func (AlwaysLeader) IsLeader() bool {
	return true
}

type LeaseLeaderGate struct {
	elector  *leaderelection.LeaderElector
	identity string
	leading  atomic.Bool
	l        *zap.SugaredLogger
}

func NewLeaseLeaderGate(clientset kubernetes.Interface, namespace, lease string, l *zap.Logger) (*LeaseLeaderGate, error) {
	g := &LeaseLeaderGate{
		identity: newIdentity(),
		l:        l.Sugar().With(zap.String("lease", lease), zap.String("namespace", namespace)),
	}

	lock := &resourcelock.LeaseLock{
		LeaseMeta: metav1.ObjectMeta{
			Name:      lease,
			Namespace: namespace,
		},
		Client: clientset.CoordinationV1(),
		LockConfig: resourcelock.ResourceLockConfig{
			Identity: g.identity,
		},
	}

	elector, err := leaderelection.NewLeaderElector(leaderelection.LeaderElectionConfig{
		Lock:            lock,
		LeaseDuration:   leaseDuration,
		RenewDeadline:   renewDeadline,
		RetryPeriod:     retryPeriod,
		ReleaseOnCancel: true,
		Name:            lease,
		Callbacks: leaderelection.LeaderCallbacks{
			OnStartedLeading: func(_ context.Context) {
				g.leading.Store(true)
				g.l.Infow("started leading", zap.String("identity", g.identity))
			},
			OnStoppedLeading: func() {
				g.leading.Store(false)
				g.l.Infow("stopped leading", zap.String("identity", g.identity))
			},
			OnNewLeader: func(identity string) {
				if identity != g.identity {
					g.l.Infow("new leader elected", zap.String("leader", identity))
				}
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create leader elector")
	}
	g.elector = elector
	return g, nil
}

// Run campaigns for the lease until ctx is cancelled, leadership loss triggers a new campaign.
func (g *LeaseLeaderGate) Run(ctx context.Context) {
	for ctx.Err() == nil {
		g.elector.Run(ctx)
	}
}

func (g *LeaseLeaderGate) IsLeader() bool {
	return g.leading.Load()
}

func (g *LeaseLeaderGate) Identity() string {
	return g.identity
}

func newIdentity() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return uuid.NewString()
	}
	return host + "_" + uuid.NewString()
}
