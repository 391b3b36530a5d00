package quota

import (
	"context"
	"sync"

	"github.com/selebrow/dbquota/pkg/models"
)

// fakeEngine keeps server state in memory: sizes, a single grant row per database and active sessions.
type fakeEngine struct {
	mu       sync.Mutex
	selected string
	sizes    map[string]int64
	granted  map[string]bool
	procs    []models.Process
	killed   []uint64
	sizeErr  map[string]error
	flushes  int
	releases int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		sizes:   make(map[string]int64),
		granted: make(map[string]bool),
		sizeErr: make(map[string]error),
	}
}

func (f *fakeEngine) SelectDB(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = name
	return nil
}

func (f *fakeEngine) SchemaSize(_ context.Context, schema string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.sizeErr[schema]; err != nil {
		return 0, err
	}
	return f.sizes[schema], nil
}

func (f *fakeEngine) SchemaSizes(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make(map[string]int64)
	for k, v := range f.sizes {
		if v > 0 {
			res[k] = v
		}
	}
	return res, nil
}

func (f *fakeEngine) ListDatabases(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []string
	for k := range f.sizes {
		res = append(res, k)
	}
	return res, nil
}

func (f *fakeEngine) WritePrivileges(_ context.Context, db string) ([]models.PrivilegeState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := f.granted[db]
	return []models.PrivilegeState{{Insert: g, Create: g, Update: g}}, nil
}

func (f *fakeEngine) SetWritePrivileges(_ context.Context, db string, granted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.granted[db] = granted
	return nil
}

func (f *fakeEngine) FlushPrivileges(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return nil
}

func (f *fakeEngine) ListProcesses(_ context.Context) ([]models.Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Process(nil), f.procs...), nil
}

func (f *fakeEngine) KillConnection(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.killed = append(f.killed, id)
	for i, p := range f.procs {
		if p.ID == id {
			f.procs = append(f.procs[:i], f.procs[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeEngine) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releases++
}

type fakeStore struct {
	mu      sync.Mutex
	tenants []models.Tenant
}

func (s *fakeStore) All(_ context.Context) ([]*models.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]*models.Tenant, 0, len(s.tenants))
	for _, t := range s.tenants {
		t := t
		res = append(res, &t)
	}
	return res, nil
}

func (s *fakeStore) Save(_ context.Context, tenant *models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tenants {
		if s.tenants[i].Name == tenant.Name {
			s.tenants[i] = *tenant
			return nil
		}
	}
	return models.ErrTenantNotFound
}

func (s *fakeStore) get(name string) models.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tenants {
		if t.Name == name {
			return t
		}
	}
	return models.Tenant{}
}
