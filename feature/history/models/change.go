package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gear-tracker/core/reconcile"
	"gear-tracker/core/utils"
)

// ChangeRecord represents the 'change_records' table. The unique index on
// (date, character_id, slot, new_name) makes recording idempotent.
type ChangeRecord struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Date          time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_change_identity,priority:1"`
	CharacterID   string    `gorm:"column:character_id;size:128;not null;uniqueIndex:idx_change_identity,priority:2;index:idx_character_kind,priority:1"`
	CharacterName string    `gorm:"column:character_name;size:64"`
	Slot          string    `gorm:"column:slot;size:64;not null;uniqueIndex:idx_change_identity,priority:3"`
	OldName       string    `gorm:"column:old_name;size:255"`
	NewName       string    `gorm:"column:new_name;size:255;not null;uniqueIndex:idx_change_identity,priority:4"`
	Kind          string    `gorm:"column:kind;size:32;not null;index:idx_character_kind,priority:2"`
	Summary       string    `gorm:"column:summary;type:text"`
	Diffs         string    `gorm:"column:diffs;type:text"`
	Payload       string    `gorm:"column:payload;type:text"`
	Icon          string    `gorm:"column:icon;size:512"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (ChangeRecord) TableName() string {
	return "change_records"
}

// RequiredColumns lists the columns the store reads and writes.
var RequiredColumns = []string{
	"id", "date", "character_id", "character_name", "slot", "old_name",
	"new_name", "kind", "summary", "diffs", "payload", "icon",
}

// FromEvent converts a change event into its row.
func FromEvent(ev reconcile.ChangeEvent) (ChangeRecord, error) {
	diffs, err := json.Marshal(ev.Diffs)
	if err != nil {
		return ChangeRecord{}, fmt.Errorf("failed to encode diffs: %w", err)
	}
	return ChangeRecord{
		Date:          utils.Day(ev.Date),
		CharacterID:   ev.CharacterID,
		CharacterName: ev.CharacterName,
		Slot:          ev.Slot,
		OldName:       ev.OldName,
		NewName:       ev.NewName,
		Kind:          string(ev.Kind),
		Summary:       ev.Summary,
		Diffs:         string(diffs),
		Payload:       string(ev.Payload),
		Icon:          ev.Icon,
	}, nil
}

// ToEvent converts a row back into a change event.
func (r ChangeRecord) ToEvent() (reconcile.ChangeEvent, error) {
	ev := reconcile.ChangeEvent{
		Date:          utils.Day(r.Date),
		CharacterID:   r.CharacterID,
		CharacterName: r.CharacterName,
		Slot:          r.Slot,
		OldName:       r.OldName,
		NewName:       r.NewName,
		Kind:          reconcile.ChangeKind(r.Kind),
		Summary:       r.Summary,
		Icon:          r.Icon,
	}
	if r.Diffs != "" {
		if err := json.Unmarshal([]byte(r.Diffs), &ev.Diffs); err != nil {
			return ev, fmt.Errorf("failed to decode diffs of change %d: %w", r.ID, err)
		}
	}
	if r.Payload != "" {
		ev.Payload = json.RawMessage(r.Payload)
	}
	return ev, nil
}
