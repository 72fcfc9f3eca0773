package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"gear-tracker/core/equipment"
	"gear-tracker/core/storage"
	"gear-tracker/core/utils"

	"github.com/minio/minio-go/v7"
)

// Kind names one of the two daily documents kept per character.
type Kind string

const (
	KindEquipment    Kind = "equipment"
	KindRingExchange Kind = "ring-exchange"
)

// RootPrefix is the top-level folder of every capture object.
const RootPrefix = "captures"

// ParseKind maps a path segment to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindEquipment:
		return KindEquipment, true
	case KindRingExchange:
		return KindRingExchange, true
	}
	return "", false
}

// ObjectKey returns the object name of one capture document.
func ObjectKey(characterID string, kind Kind, date time.Time) string {
	return fmt.Sprintf("%s/%s/%s/%s.json", RootPrefix, characterID, kind, utils.FormatDate(date))
}

// CharacterPrefix returns the folder holding every capture of a character.
func CharacterPrefix(characterID string) string {
	return RootPrefix + "/" + characterID + "/"
}

func kindPrefix(characterID string, kind Kind) string {
	return CharacterPrefix(characterID) + string(kind) + "/"
}

// ParseObjectKey splits an object name under CharacterPrefix(characterID)
// into its kind and day.
func ParseObjectKey(characterID, objectKey string) (Kind, time.Time, bool) {
	rest := strings.TrimPrefix(objectKey, CharacterPrefix(characterID))
	segment, _, found := strings.Cut(rest, "/")
	if rest == objectKey || !found {
		return "", time.Time{}, false
	}
	kind, ok := ParseKind(segment)
	if !ok {
		return "", time.Time{}, false
	}
	day, ok := dateFromKey(objectKey, kindPrefix(characterID, kind))
	if !ok {
		return "", time.Time{}, false
	}
	return kind, day, true
}

// dateFromKey extracts the day from an object name under prefix.
func dateFromKey(objectKey, prefix string) (time.Time, bool) {
	name := strings.TrimPrefix(objectKey, prefix)
	if name == objectKey || strings.Contains(name, "/") || !strings.HasSuffix(name, ".json") {
		return time.Time{}, false
	}
	day, err := utils.ParseDate(strings.TrimSuffix(name, ".json"))
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// Store keeps raw daily captures in object storage. It serves them to the
// replay driver as a reconcile.Source and reconcile.DateLister.
type Store struct {
	client storage.Client
	bucket string
}

// NewStore creates a capture store on bucket.
func NewStore(client storage.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// LoadDailyEquipment returns the equipment capture of one day, or nil when
// none was uploaded.
func (s *Store) LoadDailyEquipment(ctx context.Context, characterID string, date time.Time) (*equipment.Capture, error) {
	var capture equipment.Capture
	found, err := s.load(ctx, ObjectKey(characterID, KindEquipment, date), &capture)
	if err != nil || !found {
		return nil, err
	}
	return &capture, nil
}

// LoadDailySeedRingExchange returns the ring exchange capture of one day, or
// nil when none was uploaded.
func (s *Store) LoadDailySeedRingExchange(ctx context.Context, characterID string, date time.Time) (*equipment.RingExchange, error) {
	var exchange equipment.RingExchange
	found, err := s.load(ctx, ObjectKey(characterID, KindRingExchange, date), &exchange)
	if err != nil || !found {
		return nil, err
	}
	return &exchange, nil
}

// load decodes one JSON object into v. A missing object is not an error.
func (s *Store) load(ctx context.Context, objectKey string, v any) (bool, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", objectKey, err)
	}
	defer reader.Close()

	// MinIO reports a missing key on first read, not on GetObject
	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", objectKey, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", objectKey, err)
	}
	return true, nil
}

// ListCaptureDates returns the days with an equipment capture, ascending.
func (s *Store) ListCaptureDates(ctx context.Context, characterID string) ([]time.Time, error) {
	return s.listDates(ctx, characterID, KindEquipment)
}

func (s *Store) listDates(ctx context.Context, characterID string, kind Kind) ([]time.Time, error) {
	prefix := kindPrefix(characterID, kind)
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	keys, err := storage.ListKeys(ctx, s.client, s.bucket, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	var days []time.Time
	for _, key := range keys {
		if day, ok := dateFromKey(key, prefix); ok {
			days = append(days, day)
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, nil
}

// Put uploads one raw capture document.
func (s *Store) Put(ctx context.Context, characterID string, kind Kind, date time.Time, body []byte) error {
	objectKey := ObjectKey(characterID, kind, date)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", objectKey, err)
	}
	return nil
}

// Delete removes one capture document.
func (s *Store) Delete(ctx context.Context, characterID string, kind Kind, date time.Time) error {
	objectKey := ObjectKey(characterID, kind, date)
	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", objectKey, err)
	}
	return nil
}

// Purge deletes every capture of a character and returns how many objects
// were removed.
func (s *Store) Purge(ctx context.Context, characterID string) (int, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    CharacterPrefix(characterID),
		Recursive: true,
	}

	keys, err := storage.ListKeys(ctx, s.client, s.bucket, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to list objects: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	var failures []string
	for rmErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rmErr.Err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", rmErr.ObjectName, rmErr.Err))
		}
	}
	if len(failures) > 0 {
		return len(keys) - len(failures), fmt.Errorf("batch delete had %d errors: %v", len(failures), failures)
	}
	return len(keys), nil
}
