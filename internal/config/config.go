package config

const (
	DefaultTimeZone = "Africa/Nairobi"

	// Cache Refresh Constants
	DefaultRefreshSchedule = "@every 30s"
	DefaultCacheTTLSeconds = 30

	// Grid Constants
	DefaultPageSize = 10
	MaxUploadBytes  = 10 << 20 // 10MB cap on document uploads

	CurrencyPrefix = "KSh"
)

// AllowedPageSizes mirrors the page-size choices offered by the grid UI.
var AllowedPageSizes = []int{5, 10, 25, 50}
