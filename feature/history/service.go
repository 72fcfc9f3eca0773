package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gear-tracker/core/reconcile"
	"gear-tracker/core/utils"

	"go.uber.org/zap"
)

// ErrInvalidInput marks errors caused by the request rather than the stores.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ReplayRequest describes one replay run.
type ReplayRequest struct {
	Character reconcile.Character
	From      string
	To        string
	// DryRun computes the plan without recording it.
	DryRun bool
	// Rebuild deletes the recorded changes of the window before recording.
	Rebuild bool
}

// ReplayResult is the outcome of a replay run.
type ReplayResult struct {
	Plan     *reconcile.ReplayPlan `json:"plan"`
	DryRun   bool                  `json:"dry_run"`
	Deleted  int                   `json:"deleted"`
	Recorded int                   `json:"recorded"`
}

// Service runs replays and serves the recorded history.
type Service struct {
	store  *Store
	source reconcile.Source
	opts   reconcile.Options
	logger *zap.Logger
}

// NewService creates a new history service replaying from source.
func NewService(store *Store, source reconcile.Source, opts reconcile.Options, logger *zap.Logger) *Service {
	if opts.Logger == nil {
		opts.Logger = logger
	}
	return &Service{store: store, source: source, opts: opts, logger: logger}
}

func parseWindow(from, to string) (time.Time, time.Time, error) {
	fromDay, err := utils.ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("from: %v", err)
	}
	toDay, err := utils.ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("to: %v", err)
	}
	if toDay.Before(fromDay) {
		return time.Time{}, time.Time{}, invalid("to %s is before from %s", to, from)
	}
	return fromDay, toDay, nil
}

// Replay reconciles the requested window and records the resulting events
// unless the request is a dry run.
func (s *Service) Replay(ctx context.Context, req ReplayRequest) (*ReplayResult, error) {
	if req.Character.ID == "" {
		return nil, invalid("character id is required")
	}
	fromDay, toDay, err := parseWindow(req.From, req.To)
	if err != nil {
		return nil, err
	}

	l := s.logger.With(zap.String("character", req.Character.ID))
	result := &ReplayResult{DryRun: req.DryRun}

	if req.Rebuild && !req.DryRun {
		deleted, err := s.store.Delete(ctx, req.Character.ID, fromDay, toDay)
		if err != nil {
			return nil, err
		}
		result.Deleted = deleted
		l.Info("Recorded changes cleared for rebuild", zap.Int("deleted", deleted))
	}

	plan, recorded, err := reconcile.ReplayAndApply(ctx, s.source, s.store, req.Character,
		req.From, req.To, s.opts, reconcile.ApplyOptions{DryRun: req.DryRun, Confirmed: !req.DryRun})
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Recorded = recorded

	l.Info("Replay applied",
		zap.Bool("dry_run", req.DryRun),
		zap.Int("events", len(plan.Events)),
		zap.Int("recorded", recorded))
	return result, nil
}

// Plan computes the replay plan of a window without recording anything.
func (s *Service) Plan(ctx context.Context, req ReplayRequest) (*reconcile.ReplayPlan, error) {
	if req.Character.ID == "" {
		return nil, invalid("character id is required")
	}
	fromDay, toDay, err := parseWindow(req.From, req.To)
	if err != nil {
		return nil, err
	}
	return reconcile.Replay(ctx, s.source, req.Character, fromDay, toDay, s.opts)
}

// Apply records a plan computed by Plan. It clears the window first when
// the request asks for a rebuild.
func (s *Service) Apply(ctx context.Context, req ReplayRequest, plan *reconcile.ReplayPlan) (*ReplayResult, error) {
	result := &ReplayResult{Plan: plan}
	if req.Rebuild {
		fromDay, toDay, err := parseWindow(plan.From, plan.To)
		if err != nil {
			return nil, err
		}
		if result.Deleted, err = s.store.Delete(ctx, plan.Character.ID, fromDay, toDay); err != nil {
			return nil, err
		}
	}

	recorded, err := reconcile.ApplyPlan(ctx, s.store, plan, reconcile.ApplyOptions{Confirmed: true})
	if err != nil {
		return result, err
	}
	result.Recorded = recorded
	return result, nil
}

// History lists the recorded changes of a character. from, to and kind are
// optional.
func (s *Service) History(ctx context.Context, characterID, from, to, kind string) ([]reconcile.ChangeEvent, error) {
	if characterID == "" {
		return nil, invalid("character id is required")
	}

	q := Query{CharacterID: characterID}
	var err error
	if from != "" {
		if q.From, err = utils.ParseDate(from); err != nil {
			return nil, invalid("from: %v", err)
		}
	}
	if to != "" {
		if q.To, err = utils.ParseDate(to); err != nil {
			return nil, invalid("to: %v", err)
		}
	}
	if kind != "" {
		k, ok := reconcile.ParseChangeKind(kind)
		if !ok {
			return nil, invalid("unknown kind %q", kind)
		}
		q.Kind = k
	}

	return s.store.List(ctx, q)
}
