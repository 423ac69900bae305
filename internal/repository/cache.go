package repository

// Cache stores marshaled evaluation reports keyed by a hash of their
// input parameters. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Flush() error
}
