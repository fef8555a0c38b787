// Package kv implements the domain repositories over a whole-collection
// key-value blob store. Each collection is stored as a single JSON
// document; reads load the full collection and writes replace it.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
)

const (
	collectionEmployees   = "employees"
	collectionAttendance  = "attendance"
	collectionPunishments = "punishments"
	collectionActivity    = "activity"
	collectionSettings    = "settings"
	collectionUsers       = "users"
)

// loadCollection unmarshals a collection into dst. A missing collection
// leaves dst at its zero value, so first reads behave like an empty list.
func loadCollection(ctx context.Context, store kvstore.Store, name string, dst any) error {
	raw, err := store.Read(ctx, name)
	if err != nil {
		if errors.Is(err, kvstore.ErrCollectionNotFound) {
			return nil
		}
		return fmt.Errorf("read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode collection %s: %w", name, err)
	}
	return nil
}

func saveCollection(ctx context.Context, store kvstore.Store, name string, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	if err := store.Write(ctx, name, raw); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}
