package capture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gear-tracker/core/equipment"
	"gear-tracker/core/reconcile"
	"gear-tracker/core/utils"

	"go.uber.org/zap"
)

// ErrInvalidInput marks errors caused by the request rather than the store.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// UploadResult describes a stored capture document.
type UploadResult struct {
	Character string `json:"character"`
	Kind      Kind   `json:"kind"`
	Date      string `json:"date"`
	Key       string `json:"key"`
	Items     int    `json:"items"`
}

// DatesReport lists the days a character has captures for.
type DatesReport struct {
	Character    string   `json:"character"`
	Equipment    []string `json:"equipment"`
	RingExchange []string `json:"ring_exchange"`
}

// GapReport lists the days in a window without an equipment capture.
type GapReport struct {
	Character string   `json:"character"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Days      int      `json:"days"`
	Missing   []string `json:"missing"`
}

// Service validates and stores captures.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new capture service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ValidateCharacterID rejects identifiers that cannot be used as an object
// key segment.
func ValidateCharacterID(id string) error {
	if id == "" || len(id) > 128 {
		return invalid("character id must be 1 to 128 characters")
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return invalid("character id contains %q", r)
		}
	}
	return nil
}

func parseDay(s string) (time.Time, error) {
	day, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, invalid("%v", err)
	}
	return day, nil
}

// Upload validates a raw capture document and stores it unchanged.
func (s *Service) Upload(ctx context.Context, characterID string, kind Kind, date string, body []byte) (*UploadResult, error) {
	if err := ValidateCharacterID(characterID); err != nil {
		return nil, err
	}
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	items := 0
	switch kind {
	case KindEquipment:
		var capture equipment.Capture
		if err := json.Unmarshal(body, &capture); err != nil {
			return nil, invalid("malformed equipment capture: %v", err)
		}
		if msg := capture.Validate(); msg != "" {
			return nil, invalid("%s", msg)
		}
		items = len(capture.Items())
	case KindRingExchange:
		var exchange equipment.RingExchange
		if err := json.Unmarshal(body, &exchange); err != nil {
			return nil, invalid("malformed ring exchange capture: %v", err)
		}
		if !exchange.IsEmpty() {
			items = 1
		}
	default:
		return nil, invalid("unknown capture kind %q", kind)
	}

	if err := s.store.Put(ctx, characterID, kind, day, body); err != nil {
		return nil, err
	}
	reconcile.InvalidateSeeds(characterID)

	s.logger.Info("Capture stored",
		zap.String("character", characterID),
		zap.String("kind", string(kind)),
		zap.String("date", utils.FormatDate(day)),
		zap.Int("items", items))

	return &UploadResult{
		Character: characterID,
		Kind:      kind,
		Date:      utils.FormatDate(day),
		Key:       ObjectKey(characterID, kind, day),
		Items:     items,
	}, nil
}

// Dates lists the stored capture days of a character.
func (s *Service) Dates(ctx context.Context, characterID string) (*DatesReport, error) {
	if err := ValidateCharacterID(characterID); err != nil {
		return nil, err
	}

	report := &DatesReport{Character: characterID, Equipment: []string{}, RingExchange: []string{}}
	equipmentDays, err := s.store.listDates(ctx, characterID, KindEquipment)
	if err != nil {
		return nil, err
	}
	for _, d := range equipmentDays {
		report.Equipment = append(report.Equipment, utils.FormatDate(d))
	}

	exchangeDays, err := s.store.listDates(ctx, characterID, KindRingExchange)
	if err != nil {
		return nil, err
	}
	for _, d := range exchangeDays {
		report.RingExchange = append(report.RingExchange, utils.FormatDate(d))
	}
	return report, nil
}

// Gaps lists the days in [from, to] without an equipment capture.
func (s *Service) Gaps(ctx context.Context, characterID, from, to string) (*GapReport, error) {
	if err := ValidateCharacterID(characterID); err != nil {
		return nil, err
	}
	fromDay, err := parseDay(from)
	if err != nil {
		return nil, err
	}
	toDay, err := parseDay(to)
	if err != nil {
		return nil, err
	}
	if toDay.Before(fromDay) {
		return nil, invalid("%s is before %s", to, from)
	}

	days, err := s.store.ListCaptureDates(ctx, characterID)
	if err != nil {
		return nil, err
	}
	have := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		have[d] = struct{}{}
	}

	report := &GapReport{
		Character: characterID,
		From:      utils.FormatDate(fromDay),
		To:        utils.FormatDate(toDay),
		Missing:   []string{},
	}
	for _, d := range utils.DaysInRange(fromDay, toDay) {
		report.Days++
		if _, ok := have[d]; !ok {
			report.Missing = append(report.Missing, utils.FormatDate(d))
		}
	}
	return report, nil
}

// Delete removes one capture document.
func (s *Service) Delete(ctx context.Context, characterID string, kind Kind, date string) error {
	if err := ValidateCharacterID(characterID); err != nil {
		return err
	}
	day, err := parseDay(date)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, characterID, kind, day); err != nil {
		return err
	}
	reconcile.InvalidateSeeds(characterID)
	return nil
}

// Purge removes every capture of a character.
func (s *Service) Purge(ctx context.Context, characterID string) (int, error) {
	if err := ValidateCharacterID(characterID); err != nil {
		return 0, err
	}
	n, err := s.store.Purge(ctx, characterID)
	reconcile.InvalidateSeeds(characterID)
	if err != nil {
		return n, err
	}
	s.logger.Warn("Captures purged", zap.String("character", characterID), zap.Int("objects", n))
	return n, nil
}
