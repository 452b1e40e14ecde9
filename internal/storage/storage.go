package storage

import "errors"

// Store is the persisted client-side state: small keyed blobs that survive
// restarts (token, cached user record). The running client is the only
// writer.
type Store interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
	Delete(key string) error
}

// ErrNotFound is returned by Load when the key has never been saved or was
// deleted.
var ErrNotFound = errors.New("storage: value not found")
