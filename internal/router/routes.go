package router

const (
	StatusPath  = "/status"
	TenantsPath = "/tenants"
	UsagePath   = "/usage"
	EnforcePath = "/enforce"
	InfoPath    = "/info"
	MetricsPath = "/metrics"

	UIRoot        = "/ui"
	UIEnforcePath = "/enforce"
	StaticRoot    = "/static/"
)
