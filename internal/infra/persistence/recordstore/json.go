package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadList decodes the JSON array stored under key. A missing key is an empty
// list.
func LoadList[T any](ctx context.Context, s *Store, key Key) ([]T, error) {
	raw, ok, err := s.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// SaveList encodes items as a JSON array under key. nil is stored as [].
func SaveList[T any](ctx context.Context, s *Store, key Key, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Save(ctx, key, raw)
}
