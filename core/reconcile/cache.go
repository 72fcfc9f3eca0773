package reconcile

import (
	"context"
	"strings"
	"sync"
	"time"

	"gear-tracker/core/utils"

	"golang.org/x/sync/singleflight"
)

// seedEntry holds a seeded context for one character and window start.
type seedEntry struct {
	// Context is the seeded state. It is cloned before being handed out.
	Context ReconciliationContext

	// Days is the number of days that contributed to the seed.
	Days int

	// Built is the timestamp when this entry was built.
	Built time.Time

	// TTL is the time-to-live for this entry.
	TTL time.Duration
}

// IsExpired returns true if this entry has expired based on its TTL.
func (e *seedEntry) IsExpired() bool {
	if e.TTL == 0 {
		return true // No caching
	}
	return time.Since(e.Built) > e.TTL
}

// seedStore holds seeded contexts keyed by seedKey.
type seedStore struct {
	mu      sync.RWMutex
	entries map[string]*seedEntry
	sf      singleflight.Group
}

// globalSeedStore is the singleton cache shared by all replays.
var globalSeedStore = &seedStore{
	entries: make(map[string]*seedEntry),
}

func seedKey(character Character, before time.Time, opts Options) string {
	key := character.ID + "|" + utils.FormatDate(before)
	if !opts.HistoryStart.IsZero() {
		key += "|" + utils.FormatDate(opts.HistoryStart)
	}
	return key + "|" + strings.Join(opts.excluded(), ",")
}

// GetOrBuildSeed returns the seeded context for a window starting at
// 'before', building it with Seed when it is not cached or has expired.
// Concurrent requests for the same key share one build.
func GetOrBuildSeed(ctx context.Context, src Source, character Character, before time.Time, opts Options) (ReconciliationContext, int, error) {
	before = utils.Day(before)
	if opts.CacheTTL <= 0 {
		return Seed(ctx, src, character, before, opts)
	}

	key := seedKey(character, before, opts)

	// Fast path: check if entry exists and is fresh
	globalSeedStore.mu.RLock()
	entry, exists := globalSeedStore.entries[key]
	globalSeedStore.mu.RUnlock()

	if !exists || entry.IsExpired() {
		result, err, _ := globalSeedStore.sf.Do(key, func() (interface{}, error) {
			globalSeedStore.mu.RLock()
			entry, exists := globalSeedStore.entries[key]
			globalSeedStore.mu.RUnlock()

			if exists && !entry.IsExpired() {
				return entry, nil
			}

			rc, days, err := Seed(ctx, src, character, before, opts)
			if err != nil {
				return nil, err
			}
			fresh := &seedEntry{Context: rc, Days: days, Built: time.Now(), TTL: opts.CacheTTL}

			globalSeedStore.mu.Lock()
			globalSeedStore.entries[key] = fresh
			globalSeedStore.mu.Unlock()

			return fresh, nil
		})
		if err != nil {
			return ReconciliationContext{}, 0, err
		}
		entry = result.(*seedEntry)
	}

	rc := entry.Context.Clone()
	// The display name can change between runs; it is not part of the key.
	rc.Character = character
	return rc, entry.Days, nil
}

// InvalidateSeeds drops every cached seed of a character, e.g. after new
// captures were uploaded for days before a cached window.
func InvalidateSeeds(characterID string) {
	prefix := characterID + "|"
	globalSeedStore.mu.Lock()
	for key := range globalSeedStore.entries {
		if strings.HasPrefix(key, prefix) {
			delete(globalSeedStore.entries, key)
		}
	}
	globalSeedStore.mu.Unlock()
}
