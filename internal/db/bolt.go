package db

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// OpenBolt opens the embedded document store.
func OpenBolt(path string) (*bolt.DB, error) {
	database, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	return database, nil
}
