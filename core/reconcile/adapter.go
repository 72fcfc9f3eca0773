package reconcile

import (
	"context"
	"time"

	"gear-tracker/core/equipment"
)

// Source supplies raw daily captures to the replay driver.
// Both loaders return (nil, nil) when a day has no data; errors are reserved
// for failures of the underlying store.
type Source interface {
	// LoadDailyEquipment returns the equipment capture of one character for one day.
	LoadDailyEquipment(ctx context.Context, characterID string, date time.Time) (*equipment.Capture, error)

	// LoadDailySeedRingExchange returns the ring exchange slot capture for one day.
	LoadDailySeedRingExchange(ctx context.Context, characterID string, date time.Time) (*equipment.RingExchange, error)
}

// DateLister is implemented by sources that can enumerate the days they hold.
// Seeding uses it to skip empty days instead of walking the calendar.
type DateLister interface {
	// ListCaptureDates returns the days with an equipment capture, in ascending order.
	ListCaptureDates(ctx context.Context, characterID string) ([]time.Time, error)
}

// Recorder persists change events. Implementations should be idempotent on
// (date, character, slot, new name); inserted is false for a duplicate.
type Recorder interface {
	RecordChange(ctx context.Context, event ChangeEvent) (inserted bool, err error)
}

// BatchRecorder is an optional Recorder extension that writes many events at once.
type BatchRecorder interface {
	RecordChanges(ctx context.Context, events []ChangeEvent) (inserted int, err error)
}
