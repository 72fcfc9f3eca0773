package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gear-tracker/core/utils"

	"go.uber.org/zap"
)

// Options controls seeding and replay.
type Options struct {
	// HistoryStart is the first day walked while seeding when the source
	// cannot list its dates. Zero disables calendar walking.
	HistoryStart time.Time

	// CacheTTL is the time-to-live for seeded contexts. If zero, caching is disabled.
	CacheTTL time.Duration

	// ExcludedBuckets overrides DefaultExcludedBuckets when non-nil.
	ExcludedBuckets []string

	// Logger receives gap warnings and run totals. Nil means no logging.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) excluded() []string {
	if o.ExcludedBuckets == nil {
		return DefaultExcludedBuckets
	}
	return o.ExcludedBuckets
}

// Step processes one day. It diffs snap against rc.Prev and returns the
// next context, in which snap is the previous snapshot and its fingerprints
// are seen. rc itself is left untouched. A nil snap is a day without data
// and yields an unchanged copy of rc.
func Step(rc ReconciliationContext, snap *Snapshot) (ReconciliationContext, []ChangeEvent) {
	if snap == nil {
		return rc.Clone(), nil
	}
	events := Diff(rc, rc.Prev, snap)
	next := rc.Clone()
	next.absorb(snap)
	return next, events
}

// Seed builds the starting context for a window beginning at 'before'.
// Every day with data strictly before the window marks its fingerprints as
// seen, and the last such day becomes the previous snapshot. It returns the
// context and the number of days that contributed.
func Seed(ctx context.Context, src Source, character Character, before time.Time, opts Options) (ReconciliationContext, int, error) {
	rc := NewContext(character, opts.excluded())
	before = utils.Day(before)

	days, err := seedDays(ctx, src, character.ID, before, opts)
	if err != nil {
		return rc, 0, err
	}

	seeded := 0
	for _, day := range days {
		snap, err := loadDay(ctx, src, character.ID, day, opts.logger())
		if err != nil {
			return rc, seeded, err
		}
		if snap == nil {
			continue
		}
		rc.absorb(snap)
		seeded++
	}
	return rc, seeded, nil
}

func seedDays(ctx context.Context, src Source, characterID string, before time.Time, opts Options) ([]time.Time, error) {
	if lister, ok := src.(DateLister); ok {
		dates, err := lister.ListCaptureDates(ctx, characterID)
		if err != nil {
			return nil, fmt.Errorf("failed to list capture dates: %w", err)
		}
		var days []time.Time
		for _, d := range dates {
			if d = utils.Day(d); d.Before(before) {
				days = append(days, d)
			}
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
		return days, nil
	}

	if opts.HistoryStart.IsZero() {
		return nil, nil
	}
	return utils.DaysInRange(opts.HistoryStart, before.AddDate(0, 0, -1)), nil
}

// Replay reconciles every day in [from, to] for one character.
// The starting context is seeded from all days before 'from', so replaying
// a window again yields the same events. Days without data are reported as
// gaps and leave the rolling state untouched.
func Replay(ctx context.Context, src Source, character Character, from, to time.Time, opts Options) (*ReplayPlan, error) {
	from, to = utils.Day(from), utils.Day(to)
	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: %s is before %s", utils.FormatDate(to), utils.FormatDate(from))
	}

	rc, seeded, err := GetOrBuildSeed(ctx, src, character, from, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to seed history: %w", err)
	}

	plan, err := ReplayFrom(ctx, src, rc, from, to, opts)
	if err != nil {
		return nil, err
	}
	plan.Summary.SeededDays = seeded
	return plan, nil
}

// ReplayFrom walks [from, to] starting from an already seeded context.
func ReplayFrom(ctx context.Context, src Source, rc ReconciliationContext, from, to time.Time, opts Options) (*ReplayPlan, error) {
	l := opts.logger().With(zap.String("character", rc.Character.ID))

	plan := &ReplayPlan{
		Character: rc.Character,
		From:      utils.FormatDate(from),
		To:        utils.FormatDate(to),
		Events:    []ChangeEvent{},
		Summary:   PlanSummary{Gaps: []string{}},
	}

	for _, day := range utils.DaysInRange(from, to) {
		plan.Summary.Days++

		snap, err := loadDay(ctx, src, rc.Character.ID, day, l)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			plan.Summary.Gaps = append(plan.Summary.Gaps, utils.FormatDate(day))
			continue
		}
		plan.Summary.DaysWithData++

		var events []ChangeEvent
		rc, events = Step(rc, snap)
		plan.Events = append(plan.Events, events...)
	}

	for _, ev := range plan.Events {
		switch ev.Kind {
		case ChangeNewItem:
			plan.Summary.NewItems++
		case ChangeReplace:
			plan.Summary.Replacements++
		case ChangeOption:
			plan.Summary.OptionChanges++
		}
	}
	plan.Context = rc

	if len(plan.Summary.Gaps) > 0 {
		l.Warn("Replay window has days without captures; changes are attributed to the next day with data",
			zap.Strings("gaps", plan.Summary.Gaps))
	}
	l.Info("Replay completed",
		zap.String("from", plan.From),
		zap.String("to", plan.To),
		zap.Int("days_with_data", plan.Summary.DaysWithData),
		zap.Int("events", len(plan.Events)),
	)

	return plan, nil
}

// loadDay builds the snapshot of one day, or returns nil when the day has no
// usable equipment capture. Store failures other than cancellation are
// treated as missing data.
func loadDay(ctx context.Context, src Source, characterID string, day time.Time, l *zap.Logger) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	capture, err := src.LoadDailyEquipment(ctx, characterID, day)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		l.Warn("Failed to load equipment capture", zap.String("date", utils.FormatDate(day)), zap.Error(err))
		return nil, nil
	}
	if capture.IsEmpty() {
		return nil, nil
	}

	exchange, err := src.LoadDailySeedRingExchange(ctx, characterID, day)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		l.Warn("Failed to load ring exchange capture", zap.String("date", utils.FormatDate(day)), zap.Error(err))
		exchange = nil
	}

	return BuildSnapshot(day, capture, exchange), nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	fromDay, err := utils.ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toDay, err := utils.ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return fromDay, toDay, nil
}
