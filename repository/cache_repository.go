package repository

// CacheRepository caches serialized calculation results keyed by a
// hash of their input.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
