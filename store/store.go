package store

import (
	"fmt"

	"hotel-ops-backend/config"
)

// Store is a named key-value store holding one JSON document per key.
//
// Load never fails the caller: a missing key, a driver error or an
// unreadable value is logged and the supplied default comes back instead.
// Save reports failures so callers can log them, but a failed save leaves
// the in-memory state authoritative.
type Store interface {
	Load(key string, def []byte) []byte
	Save(key string, value []byte) error
}

// Open builds the store driver selected by the configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverFile:
		return NewFileStore(cfg.DataDir)
	case config.DriverMySQL:
		return OpenMySQL(cfg.MySQLDSN)
	case config.DriverRedis:
		return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), nil
	case config.DriverMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
