package ports

import "context"

// KV is the local persistence abstraction. Values are opaque JSON documents
// keyed by fixed strings; typed repositories layer on top of it.
type KV interface {
	KVReader
	KVWriter

	// Tx runs fn against a transactional view. Writes are atomic: either all
	// of them land or none do. Read-modify-write sequences that span keys
	// must go through Tx.
	Tx(ctx context.Context, fn func(tx KVTx) error) error
}

// KVTx is the transactional view handed to Tx callbacks.
type KVTx interface {
	KVReader
	KVWriter
}

type KVReader interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
}

type KVWriter interface {
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
