package reconcile

import (
	"context"
	"fmt"

	"gear-tracker/core/utils"
)

// ApplyPlan writes the events of a plan to the recorder.
// Returns the number of events newly recorded; duplicates already present in
// the store are not counted. Requires opts.Confirmed=true and
// opts.DryRun=false to actually write.
func ApplyPlan(ctx context.Context, recorder Recorder, plan *ReplayPlan, opts ApplyOptions) (recorded int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	if plan == nil || len(plan.Events) == 0 {
		return 0, nil
	}

	if batch, ok := recorder.(BatchRecorder); ok {
		n, err := batch.RecordChanges(ctx, plan.Events)
		if err != nil {
			return n, fmt.Errorf("failed to batch record changes: %w", err)
		}
		return n, nil
	}

	// Fallback to one-at-a-time
	for _, ev := range plan.Events {
		inserted, err := recorder.RecordChange(ctx, ev)
		if err != nil {
			return recorded, fmt.Errorf("failed to record change %s/%s on %s: %w",
				ev.Slot, ev.NewName, utils.FormatDate(ev.Date), err)
		}
		if inserted {
			recorded++
		}
	}
	return recorded, nil
}

// ReplayAndApply is a convenience wrapper that replays a window and
// optionally records its events. It returns the plan, the number of events
// recorded, and any error.
func ReplayAndApply(ctx context.Context, src Source, recorder Recorder, character Character, from, to string, opts Options, apply ApplyOptions) (*ReplayPlan, int, error) {
	fromDay, toDay, err := parseRange(from, to)
	if err != nil {
		return nil, 0, err
	}

	plan, err := Replay(ctx, src, character, fromDay, toDay, opts)
	if err != nil {
		return nil, 0, err
	}

	recorded, err := ApplyPlan(ctx, recorder, plan, apply)
	return plan, recorded, err
}
