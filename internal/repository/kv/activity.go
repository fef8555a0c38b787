package kv

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
)

// maxActivityEntries caps the stored log so the collection blob does not
// grow without bound. Oldest entries are dropped first.
const maxActivityEntries = 500

type activityRepository struct {
	store kvstore.Store
}

func NewActivityRepository(store kvstore.Store) activity.Repository {
	return &activityRepository{store: store}
}

func (r *activityRepository) List(ctx context.Context, limit int) ([]activity.Entry, error) {
	var entries []activity.Entry
	if err := loadCollection(ctx, r.store, collectionActivity, &entries); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *activityRepository) Append(ctx context.Context, entry activity.Entry) (activity.Entry, error) {
	var entries []activity.Entry
	if err := loadCollection(ctx, r.store, collectionActivity, &entries); err != nil {
		return activity.Entry{}, err
	}

	if entry.ID == "" {
		entry.ID = "act-" + uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	entries = append(entries, entry)
	if len(entries) > maxActivityEntries {
		entries = entries[len(entries)-maxActivityEntries:]
	}
	if err := saveCollection(ctx, r.store, collectionActivity, entries); err != nil {
		return activity.Entry{}, err
	}
	return entry, nil
}
