package reconcile

import (
	"time"

	"gear-tracker/core/equipment"
	"gear-tracker/core/utils"
)

// BuildSnapshot folds one day's capture into a bucketed snapshot.
// Items from every loadout variant are merged, exact duplicates collapse,
// and a non-empty ring exchange record is added as a seed ring.
func BuildSnapshot(date time.Time, capture *equipment.Capture, exchange *equipment.RingExchange) *Snapshot {
	snap := &Snapshot{
		Date:       utils.Day(date),
		Buckets:    make(map[string][]equipment.Item),
		SeedHashes: make(HashSet),
	}

	for _, item := range capture.Items() {
		snap.insert(BucketKey(item.Slot), item)
	}
	if !exchange.IsEmpty() {
		snap.insert(BucketRing, exchange.Item())
	}

	return snap
}

// insert appends item to its bucket unless an identical item is already there.
func (s *Snapshot) insert(bucket string, item equipment.Item) {
	hash := FullHash(item)
	for _, existing := range s.Buckets[bucket] {
		if FullHash(existing) == hash {
			return
		}
	}
	s.Buckets[bucket] = append(s.Buckets[bucket], item)
	if IsSeedRing(item) {
		s.SeedHashes.Add(SeedHash(item))
	}
}

// emptySnapshot stands in for a missing previous day.
func emptySnapshot(date time.Time) *Snapshot {
	return &Snapshot{
		Date:       date,
		Buckets:    map[string][]equipment.Item{},
		SeedHashes: HashSet{},
	}
}
