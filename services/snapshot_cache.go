package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/utils"
)

const (
	snapshotKeyPrefix  = "menu:snapshot:"
	DefaultSnapshotTTL = 5 * time.Minute
)

// CachedSnapshotRepository puts a redis read-through cache in front of
// another repository. Failed loads are never cached, and a redis outage only
// costs a cache miss.
type CachedSnapshotRepository struct {
	next   SnapshotRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedSnapshotRepository(next SnapshotRepository, client *redis.Client, ttl time.Duration) *CachedSnapshotRepository {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &CachedSnapshotRepository{next: next, client: client, ttl: ttl}
}

func snapshotKey(slug string) string {
	return snapshotKeyPrefix + slug
}

func (r *CachedSnapshotRepository) FindBySlug(ctx context.Context, slug string) (*models.Snapshot, error) {
	key := snapshotKey(slug)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var snap models.Snapshot
		if jsonErr := json.Unmarshal(raw, &snap); jsonErr == nil && snap.Menu != nil {
			return &snap, nil
		}
		// entri rusak, buang saja
		r.client.Del(ctx, key)
	case !errors.Is(err, redis.Nil):
		utils.Error(logrus.Fields{"slug": slug, "error": err}).Warn("snapshot cache read failed")
	}

	snap, err := r.next.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(snap); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			utils.Error(logrus.Fields{"slug": slug, "error": err}).Warn("snapshot cache write failed")
		}
	}
	return snap, nil
}

func (r *CachedSnapshotRepository) ImportSnapshot(ctx context.Context, snapshot *models.Snapshot) (*models.Menu, error) {
	menu, err := r.next.ImportSnapshot(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	r.Invalidate(ctx, menu.Slug)
	return menu, nil
}

// Invalidate drops the cached snapshot of slug.
func (r *CachedSnapshotRepository) Invalidate(ctx context.Context, slug string) {
	if err := r.client.Del(ctx, snapshotKey(slug)).Err(); err != nil {
		utils.Error(logrus.Fields{"slug": slug, "error": err}).Warn("snapshot cache invalidate failed")
	}
}
