package pkgconfig

import "time"

// Config is the read-only view of application configuration.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	// GetMillis reads an integer number of milliseconds, e.g. "*_ms" keys.
	GetMillis(key string) time.Duration
	Close() error
}
