package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gear-tracker/core/database"
	"gear-tracker/core/reconcile"
	"gear-tracker/feature/history/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize bounds the rows per INSERT statement.
const batchSize = 200

// Store persists change events in the relational database. It implements
// reconcile.Recorder and reconcile.BatchRecorder.
type Store struct {
	db *gorm.DB
}

// NewStore creates a history store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the change table and verifies its columns.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.ChangeRecord{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", models.ChangeRecord{}.TableName(), err)
	}

	missing, err := database.MissingColumns(s.db.WithContext(ctx), models.ChangeRecord{}.TableName(), models.RequiredColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", models.ChangeRecord{}.TableName(), strings.Join(missing, ", "))
	}
	return nil
}

// RecordChange inserts one event. inserted is false when an event with the
// same date, character, slot and new name already exists.
func (s *Store) RecordChange(ctx context.Context, event reconcile.ChangeEvent) (bool, error) {
	rec, err := models.FromEvent(event)
	if err != nil {
		return false, err
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
	if res.Error != nil {
		return false, fmt.Errorf("failed to insert change: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// RecordChanges inserts events in batches inside one transaction and
// returns how many were new.
func (s *Store) RecordChanges(ctx context.Context, events []reconcile.ChangeEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	records := make([]models.ChangeRecord, 0, len(events))
	for _, ev := range events {
		rec, err := models.FromEvent(ev)
		if err != nil {
			return 0, err
		}
		records = append(records, rec)
	}

	var inserted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&records, batchSize)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert changes: %w", err)
	}
	return int(inserted), nil
}

// Query selects recorded changes of one character.
type Query struct {
	CharacterID string
	// From and To bound the date inclusively. Zero values leave the side open.
	From time.Time
	To   time.Time
	// Kind filters by change kind when not empty.
	Kind reconcile.ChangeKind
	// Limit caps the number of rows. Zero means no limit.
	Limit int
}

// List returns the matching changes ordered by date and insertion.
func (s *Store) List(ctx context.Context, q Query) ([]reconcile.ChangeEvent, error) {
	tx := s.db.WithContext(ctx).Model(&models.ChangeRecord{}).Where("character_id = ?", q.CharacterID)
	if !q.From.IsZero() {
		tx = tx.Where("date >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("date <= ?", q.To)
	}
	if q.Kind != "" {
		tx = tx.Where("kind = ?", string(q.Kind))
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []models.ChangeRecord
	if err := tx.Order("date ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	events := make([]reconcile.ChangeEvent, 0, len(rows))
	for _, row := range rows {
		ev, err := row.ToEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// Delete removes the recorded changes of a character inside [from, to].
func (s *Store) Delete(ctx context.Context, characterID string, from, to time.Time) (int, error) {
	res := s.db.WithContext(ctx).
		Where("character_id = ? AND date >= ? AND date <= ?", characterID, from, to).
		Delete(&models.ChangeRecord{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete changes: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}
