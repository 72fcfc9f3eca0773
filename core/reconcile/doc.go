// Package reconcile reconstructs a character's equipment history from daily
// snapshots of what the character had equipped.
//
// Each day's capture is folded into a Snapshot and compared with the previous
// day. The comparison yields ChangeEvents of three kinds: a new item, a
// replacement, or an in-place change of rolled attributes (starforce,
// potential, bonus stats, scrolls, soul, seed ring level). Reordering within
// a slot bucket, and seed rings moving between the worn ring slots and the
// ring exchange slot, produce no events.
//
// # Architecture
//
// The engine consists of five parts:
//
// 1. Snapshot Builder (snapshot.go): merges all loadout presets of a capture,
// folds slots into buckets (all rings share "ring", all pendants share
// "pendant") and drops exact duplicates.
//
// 2. Identity Hasher (hash.go): FullHash fingerprints every rolled attribute,
// SeedHash identifies seed rings by name and level, and SimilarityScore ranks
// same-named candidates.
//
// 3. Snapshot Differ (differ.go): removes exact matches, then classifies the
// remaining items of each bucket as new, replaced or changed.
//
// 4. Change Classifier (classify.go): turns a matched pair into typed
// OptionDiff entries.
//
// 5. Replay Driver (engine.go): seeds the seen fingerprint sets from every
// day before the window and threads a ReconciliationContext through Step.
//
// The engine performs no I/O of its own. Captures come from a Source and
// events go to a Recorder; both are supplied by the caller.
//
// # Idempotence
//
// Step is pure: it returns a new context instead of mutating its input. A
// NewItem is suppressed when its fingerprint was already seen on any earlier
// day, so replaying the same window with the same history produces the same
// events. Recorders add a second guard by ignoring duplicates.
//
// # Usage Example
//
//	opts := reconcile.Options{CacheTTL: 5 * time.Minute, Logger: log}
//	plan, err := reconcile.Replay(ctx, source, reconcile.Character{ID: ocid, Name: name}, from, to, opts)
//	if err != nil {
//	    return err
//	}
//	recorded, err := reconcile.ApplyPlan(ctx, store, plan, reconcile.ApplyOptions{Confirmed: true})
package reconcile
