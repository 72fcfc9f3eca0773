package reconcile

import (
	"fmt"
	"strings"
	"time"

	"gear-tracker/core/utils"

	"go.uber.org/zap"
)

// Config holds the replay settings loaded from the environment.
type Config struct {
	// HistoryStart is the first day (YYYY-MM-DD) walked while seeding a source
	// that cannot list its dates. Empty disables calendar walking.
	HistoryStart string `mapstructure:"history_start" default:""`
	// CacheTTLSeconds is how long a seeded context is reused. Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// ExcludedBuckets is a comma separated list of buckets whose in-place
	// option changes are not reported.
	ExcludedBuckets string `mapstructure:"excluded_buckets" default:"title,medal"`
}

// Options converts the configuration into engine options.
func (c Config) Options(l *zap.Logger) (Options, error) {
	opts := Options{
		CacheTTL:        time.Duration(c.CacheTTLSeconds) * time.Second,
		ExcludedBuckets: []string{},
		Logger:          l,
	}

	if s := strings.TrimSpace(c.HistoryStart); s != "" {
		start, err := utils.ParseDate(s)
		if err != nil {
			return Options{}, fmt.Errorf("invalid replay history start: %w", err)
		}
		opts.HistoryStart = start
	}

	for _, b := range strings.Split(c.ExcludedBuckets, ",") {
		if b = strings.ToLower(strings.TrimSpace(b)); b != "" {
			opts.ExcludedBuckets = append(opts.ExcludedBuckets, b)
		}
	}
	return opts, nil
}

// Bucket keys for slots that share a bucket.
const (
	BucketRing    = "ring"
	BucketPendant = "pendant"
)

// DefaultExcludedBuckets are cosmetic buckets whose rolled options churn too
// often to report in-place changes for.
var DefaultExcludedBuckets = []string{"title", "medal"}

// seedRingNames lists seed rings by normalized, lower-cased name.
// Items with a populated seed ring level are recognised without this table.
var seedRingNames = map[string]struct{}{
	"ring of restraint":        {},
	"weapon jump s ring":       {},
	"weapon jump i ring":       {},
	"weapon jump l ring":       {},
	"weapon jump d ring":       {},
	"ultimatum ring":           {},
	"risk taker ring":          {},
	"totalling ring":           {},
	"critical damage ring":     {},
	"critical defense ring":    {},
	"crisis - hm ring":         {},
	"crisis - h ring":          {},
	"crisis - m ring":          {},
	"level jump s ring":        {},
	"level jump i ring":        {},
	"level jump l ring":        {},
	"level jump d ring":        {},
	"health cut ring":          {},
	"mana cut ring":            {},
	"durability ring":          {},
	"clean stance ring":        {},
	"clean defense ring":       {},
	"reflective ring":          {},
	"swift ring":               {},
	"continuous ring":          {},
	"oz ring":                  {},
	"tower boost ring":         {},
	"cosmos ring":              {},
	"ring of ambition":         {},
	"limit ring":               {},
	"helpful ring":             {},
	"burden ring":              {},
	"overpass ring":            {},
	"thunder ring":             {},
	"critical shift ring":      {},
	"stance shift ring":        {},
	"restraint special ring":   {},
	"weapon jump special ring": {},
}

// BucketKey folds an equipment slot name into its bucket.
// Every ring slot shares BucketRing and every pendant slot shares
// BucketPendant; earrings keep their own bucket.
func BucketKey(slot string) string {
	s := strings.ToLower(strings.TrimSpace(slot))
	switch {
	case strings.Contains(s, "pendant"):
		return BucketPendant
	case strings.Contains(s, "ring") && !strings.Contains(s, "earring"):
		return BucketRing
	default:
		return s
	}
}
