package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stafftrack/stafftrack-go/internal/domain/settings"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
)

type settingsRepository struct {
	store    kvstore.Store
	defaults settings.Settings
}

// NewSettingsRepository serves defaults until the first Update persists a
// settings document.
func NewSettingsRepository(store kvstore.Store, defaults settings.Settings) settings.Repository {
	return &settingsRepository{store: store, defaults: defaults}
}

func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	raw, err := r.store.Read(ctx, collectionSettings)
	if err != nil {
		if errors.Is(err, kvstore.ErrCollectionNotFound) {
			return r.defaults, nil
		}
		return settings.Settings{}, fmt.Errorf("read collection %s: %w", collectionSettings, err)
	}

	var s settings.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return settings.Settings{}, fmt.Errorf("decode collection %s: %w", collectionSettings, err)
	}
	return s, nil
}

func (r *settingsRepository) Update(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	if err := saveCollection(ctx, r.store, collectionSettings, s); err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}
