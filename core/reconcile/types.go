package reconcile

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"gear-tracker/core/equipment"
)

// HashSet is a set of item fingerprints.
type HashSet map[string]struct{}

// Has reports whether key is in the set.
func (s HashSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add inserts key into the set.
func (s HashSet) Add(key string) {
	s[key] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s HashSet) Clone() HashSet {
	out := make(HashSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Sorted returns the keys in ascending order.
func (s HashSet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Character identifies whose equipment is being reconciled.
type Character struct {
	// ID is the upstream character identifier (ocid).
	ID string `json:"id"`
	// Name is the display name at the time of the run.
	Name string `json:"name"`
}

// Snapshot is one day's equipment, folded into slot buckets.
type Snapshot struct {
	// Date is the calendar day the capture belongs to.
	Date time.Time
	// Buckets maps a bucket key to the distinct items it holds.
	Buckets map[string][]equipment.Item
	// SeedHashes holds the seed hash of every seed ring anywhere in the snapshot.
	SeedHashes HashSet
}

// Keys returns the bucket keys in sorted order.
func (s *Snapshot) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.Buckets))
	for k := range s.Buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of items across all buckets.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, items := range s.Buckets {
		n += len(items)
	}
	return n
}

// ChangeKind classifies a ChangeEvent.
type ChangeKind string

const (
	// ChangeNewItem is an item that appeared in an otherwise empty position.
	ChangeNewItem ChangeKind = "new_item"
	// ChangeReplace is an item that took the place of a differently named item.
	ChangeReplace ChangeKind = "replace"
	// ChangeOption is an in-place change of an item's rolled attributes.
	ChangeOption ChangeKind = "option_change"
)

// ParseChangeKind maps a string to a ChangeKind. ok is false for unknown values.
func ParseChangeKind(s string) (kind ChangeKind, ok bool) {
	switch ChangeKind(strings.ToLower(strings.TrimSpace(s))) {
	case ChangeNewItem:
		return ChangeNewItem, true
	case ChangeReplace:
		return ChangeReplace, true
	case ChangeOption:
		return ChangeOption, true
	}
	return "", false
}

// DiffKind tags a single attribute-level difference.
type DiffKind string

const (
	DiffNewItem         DiffKind = "new_item"
	DiffStarforce       DiffKind = "starforce"
	DiffPotentialGrade  DiffKind = "potential_grade"
	DiffPotentialLines  DiffKind = "potential_lines"
	DiffAdditionalGrade DiffKind = "additional_grade"
	DiffAdditionalLines DiffKind = "additional_lines"
	DiffAddOption       DiffKind = "add_option"
	DiffScroll          DiffKind = "scroll"
	DiffSoul            DiffKind = "soul"
	DiffSeedRingLevel   DiffKind = "seed_ring_level"
)

var diffLabels = map[DiffKind]string{
	DiffNewItem:         "New item",
	DiffStarforce:       "Starforce",
	DiffPotentialGrade:  "Potential grade",
	DiffPotentialLines:  "Potential",
	DiffAdditionalGrade: "Additional potential grade",
	DiffAdditionalLines: "Additional potential",
	DiffAddOption:       "Bonus stats",
	DiffScroll:          "Scrolls",
	DiffSoul:            "Soul",
	DiffSeedRingLevel:   "Ring level",
}

// Label returns a short human readable name for the kind.
func (k DiffKind) Label() string {
	if l, ok := diffLabels[k]; ok {
		return l
	}
	return string(k)
}

// StatDelta is one stat that differs between two option groups.
type StatDelta struct {
	Stat string `json:"stat"`
	Old  int    `json:"old"`
	New  int    `json:"new"`
}

// OptionDiff is one structured difference produced by CompareItemOptions.
// Entries describing a brand new item carry only New.
type OptionDiff struct {
	Kind  DiffKind    `json:"kind"`
	Old   string      `json:"old,omitempty"`
	New   string      `json:"new,omitempty"`
	Grade string      `json:"grade,omitempty"`
	Lines []string    `json:"lines,omitempty"`
	Stats []StatDelta `json:"stats,omitempty"`
}

// String renders the before/after pair, e.g. "17 → 19". New-item entries
// carry no old value and render bare.
func (d OptionDiff) String() string {
	if d.Old == "" {
		return d.New
	}
	return d.Old + " → " + d.New
}

// ChangeEvent is the durable record of one detected equipment change.
type ChangeEvent struct {
	Date          time.Time       `json:"date"`
	CharacterID   string          `json:"character_id"`
	CharacterName string          `json:"character_name"`
	Slot          string          `json:"slot"`
	OldName       string          `json:"old_name"`
	NewName       string          `json:"new_name"`
	Kind          ChangeKind      `json:"kind"`
	Summary       string          `json:"summary"`
	Diffs         []OptionDiff    `json:"diffs"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Icon          string          `json:"icon,omitempty"`
}

// NoItem is the old name reported for new items.
const NoItem = "none"

// ReconciliationContext is the rolling state of one character's run.
// Step never mutates a context it is given; it returns the next one.
type ReconciliationContext struct {
	Character Character
	// Prev is the last snapshot that had data. Nil before the first one.
	Prev *Snapshot
	// SeenFull holds every full hash observed so far, window included.
	SeenFull HashSet
	// SeenSeed holds every seed hash observed so far, window included.
	SeenSeed HashSet
	// ExcludedBuckets lists buckets whose in-place option churn is ignored.
	ExcludedBuckets HashSet
}

// NewContext returns an empty context for character.
func NewContext(character Character, excludedBuckets []string) ReconciliationContext {
	excluded := make(HashSet, len(excludedBuckets))
	for _, b := range excludedBuckets {
		if b = strings.ToLower(strings.TrimSpace(b)); b != "" {
			excluded.Add(b)
		}
	}
	return ReconciliationContext{
		Character:       character,
		SeenFull:        make(HashSet),
		SeenSeed:        make(HashSet),
		ExcludedBuckets: excluded,
	}
}

// Clone returns a deep copy of the hash sets. Snapshots are shared since they are never mutated.
func (rc ReconciliationContext) Clone() ReconciliationContext {
	return ReconciliationContext{
		Character:       rc.Character,
		Prev:            rc.Prev,
		SeenFull:        rc.SeenFull.Clone(),
		SeenSeed:        rc.SeenSeed.Clone(),
		ExcludedBuckets: rc.ExcludedBuckets.Clone(),
	}
}

// absorb records every fingerprint of snap as seen and makes it the previous snapshot.
func (rc *ReconciliationContext) absorb(snap *Snapshot) {
	for _, items := range snap.Buckets {
		for _, item := range items {
			rc.SeenFull.Add(FullHash(item))
		}
	}
	for h := range snap.SeedHashes {
		rc.SeenSeed.Add(h)
	}
	rc.Prev = snap
}

// ReplayPlan is the outcome of replaying a date range. It is not persisted
// until ApplyPlan is called.
type ReplayPlan struct {
	Character Character     `json:"character"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	Events    []ChangeEvent `json:"events"`
	Summary   PlanSummary   `json:"summary"`

	// Context is the state after the last processed day.
	Context ReconciliationContext `json:"-"`
}

// PlanSummary provides aggregate statistics for a replay.
type PlanSummary struct {
	// SeededDays counts days before the window that fed the seen sets.
	SeededDays int `json:"seeded_days"`
	// Days is the number of calendar days in the window.
	Days int `json:"days"`
	// DaysWithData counts days that had an equipment capture.
	DaysWithData int `json:"days_with_data"`
	// Gaps lists the days in the window without a usable capture.
	Gaps []string `json:"gaps"`
	// NewItems counts ChangeNewItem events.
	NewItems int `json:"new_items"`
	// Replacements counts ChangeReplace events.
	Replacements int `json:"replacements"`
	// OptionChanges counts ChangeOption events.
	OptionChanges int `json:"option_changes"`
}

// ApplyOptions controls whether a plan is written to the recorder.
type ApplyOptions struct {
	// DryRun prevents any write if true.
	DryRun bool
	// Confirmed indicates the caller approved writing. Nothing is written otherwise.
	Confirmed bool
}
