package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

// getJSON decodes the value at key into dest, reporting whether the key
// exists. A value that fails to decode is surfaced as an error rather than
// left to break callers downstream.
func getJSON(ctx context.Context, r ports.KVReader, key string, dest any) (bool, error) {
	raw, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return true, fmt.Errorf("kvstore: decode %q: %w", key, err)
	}
	return true, nil
}

func putJSON(ctx context.Context, w ports.KVWriter, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: encode %q: %w", key, err)
	}
	return w.Put(ctx, key, raw)
}
