package controllers

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/dbquota/internal/router"
	"github.com/selebrow/dbquota/internal/services/status"
	"github.com/selebrow/dbquota/pkg/dto"
	"github.com/selebrow/dbquota/pkg/kubeapi"
	"github.com/selebrow/dbquota/pkg/models"
	"github.com/selebrow/dbquota/pkg/quota"
)

type UIController struct {
	srv      status.StatusService
	enforcer quota.Enforcer
	gate     kubeapi.LeaderGate
	url      string
}

type cycleData struct {
	ID        string
	Started   time.Time
	Duration  time.Duration
	Processed int
	Revoked   int
	Restored  int
	Error     string
}

// sizes are raw byte counts, template formats them
type tenantItem struct {
	Name      string
	User      string
	Size      int64
	OverQuota bool
	Measured  time.Time
}

type indexData struct {
	Limit       int64
	Leader      bool
	EnforceLink string
	LastCycle   *cycleData
	Tenants     []tenantItem
}

func NewUIController(srv status.StatusService, enforcer quota.Enforcer, gate kubeapi.LeaderGate, listen string) *UIController {
	return &UIController{
		srv:      srv,
		enforcer: enforcer,
		gate:     gate,
		url:      getURL(listen),
	}
}

func (u *UIController) Index(c echo.Context) error {
	st := u.srv.Status()
	data := &indexData{
		Limit:       st.MaxDBSize,
		Leader:      st.Leader,
		EnforceLink: router.UIRoot + router.UIEnforcePath,
		Tenants:     make([]tenantItem, len(st.Tenants)),
	}
	if r := st.LastCycle; r != nil {
		data.LastCycle = &cycleData{
			ID:        r.ID,
			Started:   r.Started,
			Duration:  r.Duration,
			Processed: r.Processed,
			Revoked:   r.Revoked,
			Restored:  r.Restored,
			Error:     r.Error,
		}
	}
	for i, t := range st.Tenants {
		data.Tenants[i] = newTenantItem(t)
	}
	return c.Render(http.StatusOK, "index.tmpl", data)
}

// Enforce triggers a cycle from UI form and redirects back to the index page.
func (u *UIController) Enforce(c echo.Context) error {
	if !u.gate.IsLeader() {
		return models.NewServiceUnavailableError(models.ErrNotLeader)
	}
	if report := u.enforcer.EnforceStorageQuota(c.Request().Context()); report.Skipped() {
		return models.NewConflictError(report.Err)
	}
	return c.Redirect(http.StatusSeeOther, router.UIRoot)
}

func (u *UIController) URL() string {
	return u.url
}

func newTenantItem(t dto.TenantStatus) tenantItem {
	return tenantItem{
		Name:      t.Name,
		User:      t.User,
		Size:      t.Size,
		OverQuota: t.QuotaExceeded,
		Measured:  t.Measured,
	}
}

func getURL(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return listen
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}

	hostport := host
	if port != "" {
		iPort, err := net.DefaultResolver.LookupPort(context.Background(), "tcp", port)
		if err != nil {
			return listen
		}
		hostport = fmt.Sprintf("%s:%d", host, iPort)
	}

	u := url.URL{
		Scheme: "http",
		Host:   hostport,
		Path:   router.UIRoot,
	}
	return u.String()
}
