package models

import "fmt"

type QuotaState int

const (
	QuotaOK QuotaState = iota
	QuotaOverQuota
)

func (s QuotaState) String() string {
	switch s {
	case QuotaOK:
		return "ok"
	case QuotaOverQuota:
		return "over_quota"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Tenant is a provisioned database and the engine login owning it.
type Tenant struct {
	Name          string `yaml:"name" json:"name"`
	User          string `yaml:"user" json:"user"`
	QuotaExceeded bool   `yaml:"quota_exceeded" json:"quotaExceeded"`
}

func (t *Tenant) State() QuotaState {
	if t.QuotaExceeded {
		return QuotaOverQuota
	}
	return QuotaOK
}

func (t *Tenant) SetState(s QuotaState) {
	t.QuotaExceeded = s == QuotaOverQuota
}

// Listing renders tenant with its measured size the same way across all quota logs.
func (t *Tenant) Listing(size int64) string {
	return fmt.Sprintf("<user: '%s' name: '%s' size: %d>", t.User, t.Name, size)
}
