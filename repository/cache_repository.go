package repository

// CacheRepository memoizes computed scenario outputs keyed by an input
// fingerprint. Values are opaque serialized payloads.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
