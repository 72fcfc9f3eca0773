package reconcile

import (
	"encoding/json"
	"sort"

	"gear-tracker/core/equipment"
)

// Diff compares two adjacent-day snapshots and returns the change events of
// curr, in bucket-key order. rc supplies the character and the historical
// seen sets; it is only read.
func Diff(rc ReconciliationContext, prev, curr *Snapshot) []ChangeEvent {
	if curr == nil {
		return nil
	}
	if prev == nil {
		prev = emptySnapshot(curr.Date)
	}

	var events []ChangeEvent
	for _, key := range unionKeys(prev, curr) {
		events = append(events, diffBucket(rc, key, prev, curr)...)
	}
	return events
}

func unionKeys(a, b *Snapshot) []string {
	set := make(map[string]struct{})
	for k := range a.Buckets {
		set[k] = struct{}{}
	}
	for k := range b.Buckets {
		set[k] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// diffBucket reconciles one bucket. Positions inside a bucket are not
// tracked; only membership is.
func diffBucket(rc ReconciliationContext, key string, prev, curr *Snapshot) []ChangeEvent {
	olds := append([]equipment.Item(nil), prev.Buckets[key]...)
	news := append([]equipment.Item(nil), curr.Buckets[key]...)
	olds, news = removeExactMatches(olds, news)

	var events []ChangeEvent
	for _, item := range news {
		if IsSeedRing(item) {
			hash := SeedHash(item)
			if prev.SeedHashes.Has(hash) || rc.SeenSeed.Has(hash) {
				continue
			}
			if i := indexByName(olds, item); i >= 0 {
				old := olds[i]
				olds = removeAt(olds, i)
				events = append(events, newEvent(rc, curr, key, ChangeOption, old.Name, item, CompareItemOptions(&old, item)))
				continue
			}
			events = append(events, newEvent(rc, curr, key, ChangeNewItem, NoItem, item, CompareItemOptions(nil, item)))
			continue
		}

		if i := bestMatch(olds, item); i >= 0 {
			old := olds[i]
			olds = removeAt(olds, i)
			if rc.ExcludedBuckets.Has(key) {
				continue
			}
			if diffs := CompareItemOptions(&old, item); len(diffs) > 0 {
				events = append(events, newEvent(rc, curr, key, ChangeOption, old.Name, item, diffs))
			}
			continue
		}

		if len(olds) > 0 {
			old := olds[0]
			olds = olds[1:]
			events = append(events, newEvent(rc, curr, key, ChangeReplace, old.Name, item, CompareItemOptions(nil, item)))
			continue
		}

		if rc.SeenFull.Has(FullHash(item)) {
			continue
		}
		events = append(events, newEvent(rc, curr, key, ChangeNewItem, NoItem, item, CompareItemOptions(nil, item)))
	}
	return events
}

// removeExactMatches drops every structurally identical old/new pair.
// Each old item can absorb at most one new item.
func removeExactMatches(olds, news []equipment.Item) ([]equipment.Item, []equipment.Item) {
	var unmatched []equipment.Item
	for _, item := range news {
		hash := FullHash(item)
		matched := -1
		for i, old := range olds {
			if FullHash(old) == hash {
				matched = i
				break
			}
		}
		if matched >= 0 {
			olds = removeAt(olds, matched)
			continue
		}
		unmatched = append(unmatched, item)
	}
	return olds, unmatched
}

// indexByName returns the first old item sharing item's normalized name, or -1.
func indexByName(olds []equipment.Item, item equipment.Item) int {
	name := NormalizeName(item.Name)
	for i, old := range olds {
		if NormalizeName(old.Name) == name {
			return i
		}
	}
	return -1
}

// bestMatch returns the same-named old item with the highest similarity to
// item, or -1. Ties go to the earliest candidate.
func bestMatch(olds []equipment.Item, item equipment.Item) int {
	name := NormalizeName(item.Name)
	best, bestScore := -1, -1
	for i, old := range olds {
		if NormalizeName(old.Name) != name {
			continue
		}
		if score := SimilarityScore(old, item); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func removeAt(items []equipment.Item, i int) []equipment.Item {
	out := make([]equipment.Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func newEvent(rc ReconciliationContext, curr *Snapshot, slot string, kind ChangeKind, oldName string, item equipment.Item, diffs []OptionDiff) ChangeEvent {
	payload, _ := json.Marshal(item)
	return ChangeEvent{
		Date:          curr.Date,
		CharacterID:   rc.Character.ID,
		CharacterName: rc.Character.Name,
		Slot:          slot,
		OldName:       oldName,
		NewName:       item.Name,
		Kind:          kind,
		Summary:       Summarize(kind, oldName, item.Name, diffs),
		Diffs:         diffs,
		Payload:       payload,
		Icon:          item.Icon,
	}
}
