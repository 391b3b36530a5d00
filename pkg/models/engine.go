package models

// PrivilegeState is a single grant table row restricted to write related privileges.
type PrivilegeState struct {
	Insert bool
	Create bool
	Update bool
}

func (p PrivilegeState) AnyGranted() bool {
	return p.Insert || p.Create || p.Update
}

// Process is an active engine session.
type Process struct {
	ID   uint64
	User string
	// DB is empty when session has no default database selected
	DB string
}

type DatabaseSize struct {
	Name string
	Size int64
}
