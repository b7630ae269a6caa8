package keys

import (
	"strings"
)

const (
	// PfxAsset is used for prefixing supported-asset cache keys
	PfxAsset = "asset"
	// PfxHealthCheck is used for prefixing health check probe keys
	PfxHealthCheck = "healthcheck"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join the cache key by componets
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
