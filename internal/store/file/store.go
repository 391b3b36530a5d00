package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/selebrow/dbquota/pkg/models"
)

type tenantsDocument struct {
	Tenants []models.Tenant `yaml:"tenants"`
}

// YamlTenantStore keeps tenants listed in a YAML file. Quota state changes are written back to the same file,
// external edits are picked up by Watch.
type YamlTenantStore struct {
	path    string
	mtx     sync.RWMutex
	tenants []models.Tenant
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
	l       *zap.SugaredLogger
}

func NewYamlTenantStore(path string, l *zap.Logger) (*YamlTenantStore, error) {
	s := &YamlTenantStore{
		path: path,
		l:    l.Sugar().With(zap.String("file", path)),
	}
	tenants, err := s.load()
	if err != nil {
		return nil, err
	}
	s.tenants = tenants
	s.l.Infof("loaded %d tenants", len(tenants))
	return s, nil
}

func (s *YamlTenantStore) All(_ context.Context) ([]*models.Tenant, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*models.Tenant, len(s.tenants))
	for i := range s.tenants {
		t := s.tenants[i]
		res[i] = &t
	}
	return res, nil
}

// Save updates quota state of the tenant with the same name and rewrites the file.
// In-memory state is left unchanged if the file can't be written.
func (s *YamlTenantStore) Save(_ context.Context, tenant *models.Tenant) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := -1
	for i := range s.tenants {
		if s.tenants[i].Name == tenant.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.Wrapf(models.ErrTenantNotFound, "name=%s", tenant.Name)
	}

	updated := make([]models.Tenant, len(s.tenants))
	copy(updated, s.tenants)
	updated[idx].QuotaExceeded = tenant.QuotaExceeded

	if err := s.write(updated); err != nil {
		return err
	}
	s.tenants = updated
	return nil
}

// Watch starts reloading tenants whenever the file is changed. Parent directory is watched,
// so editors replacing the file by rename are handled as well.
func (s *YamlTenantStore) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, "failed to watch %s", filepath.Dir(s.path))
	}
	s.watcher = w

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.watch(w)
	}()
	return nil
}

func (s *YamlTenantStore) Shutdown(_ context.Context) error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.wg.Wait()
	s.l.Info("tenant file watcher stopped")
	return err
}

func (s *YamlTenantStore) watch(w *fsnotify.Watcher) {
	target := filepath.Clean(s.path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			s.reload()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.l.Warnw("file watcher error", zap.Error(err))
		}
	}
}

func (s *YamlTenantStore) reload() {
	tenants, err := s.load()
	if err != nil {
		s.l.Warnw("failed to reload tenants, keeping previous list", zap.Error(err))
		return
	}

	s.mtx.Lock()
	s.tenants = tenants
	s.mtx.Unlock()
	s.l.Debugf("reloaded %d tenants", len(tenants))
}

func (s *YamlTenantStore) load() ([]models.Tenant, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tenants file")
	}

	var doc tenantsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse tenants file")
	}
	if err := validate(doc.Tenants); err != nil {
		return nil, err
	}
	return doc.Tenants, nil
}

func (s *YamlTenantStore) write(tenants []models.Tenant) error {
	data, err := yaml.Marshal(tenantsDocument{Tenants: tenants})
	if err != nil {
		return errors.Wrap(err, "failed to encode tenants")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary tenants file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "failed to write tenants file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to write tenants file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "failed to replace tenants file")
}

func validate(tenants []models.Tenant) error {
	seen := make(map[string]struct{}, len(tenants))
	for i, t := range tenants {
		if t.Name == "" || t.User == "" {
			return errors.Errorf("tenant #%d: name and user are required", i)
		}
		if _, ok := seen[t.Name]; ok {
			return errors.Errorf("duplicate tenant %s", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}
