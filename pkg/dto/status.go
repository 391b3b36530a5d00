package dto

import "time"

type AppInfo struct {
	Name      string `json:"name"`
	GitRef    string `json:"gitRef"`
	GitSha    string `json:"gitSha"`
	MaxDBSize int64  `json:"maxDbSize"`
	AdminDB   string `json:"adminDb"`
	Schedule  string `json:"schedule"`
	Store     string `json:"store"`
}

type Status struct {
	MaxDBSize int64          `json:"maxDbSize"`
	Leader    bool           `json:"leader"`
	LastCycle *CycleReport   `json:"lastCycle,omitempty"`
	Tenants   []TenantStatus `json:"tenants"`
}

type CycleReport struct {
	ID        string        `json:"id"`
	Started   time.Time     `json:"started"`
	Duration  time.Duration `json:"duration"`
	Processed int           `json:"processed"`
	Revoked   int           `json:"revoked"`
	Restored  int           `json:"restored"`
	Error     string        `json:"error,omitempty"`
}

type TenantStatus struct {
	Name          string    `json:"name"`
	User          string    `json:"user"`
	Size          int64     `json:"size"`
	QuotaExceeded bool      `json:"quotaExceeded"`
	Measured      time.Time `json:"measured"`
}

type Usage struct {
	MaxDBSize int64            `json:"maxDbSize"`
	Databases map[string]int64 `json:"databases"`
}
