// Package cache keeps the current snapshot per user in memory so dashboard,
// nudge and chat reads do not hit the database on every view.
package cache

import (
	"github.com/dgraph-io/ristretto"

	"github.com/growai/fincoach/internal/models"
)

// SnapshotCache is a read-through cache keyed by user ID.
type SnapshotCache struct {
	cache *ristretto.Cache
}

// NewSnapshotCache builds a cache sized for tens of thousands of users.
func NewSnapshotCache() (*SnapshotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100_000,
		MaxCost:     10_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &SnapshotCache{cache: c}, nil
}

// Get returns the cached snapshot for a user, if present.
func (c *SnapshotCache) Get(userID int64) (*models.FinancialSnapshot, bool) {
	value, ok := c.cache.Get(userID)
	if !ok {
		return nil, false
	}
	snap, ok := value.(*models.FinancialSnapshot)
	return snap, ok
}

// Set stores the snapshot for a user. It waits for the write to become
// visible so a regenerate followed by a dashboard read sees the new snapshot.
func (c *SnapshotCache) Set(userID int64, snap *models.FinancialSnapshot) {
	c.cache.Set(userID, snap, 1)
	c.cache.Wait()
}

// Invalidate drops the cached snapshot for a user.
func (c *SnapshotCache) Invalidate(userID int64) {
	c.cache.Del(userID)
}
