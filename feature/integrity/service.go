package integrity

import (
	"context"
	"errors"

	"gear-tracker/core/storage"
	"gear-tracker/feature/capture"
	"gear-tracker/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by the schema check when no database is connected.
var ErrNoDatabase = errors.New("no history database connected")

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket, region string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		db:     db,
		logger: logger,
	}
}

// CheckStorage reports the capture bucket, creating it when fix is set.
func (s *Service) CheckStorage(ctx context.Context, fix bool) (*checks.StorageReport, error) {
	report, err := checks.CheckStorage(ctx, s.client, s.bucket, s.region, fix)
	if err != nil {
		return nil, err
	}
	if report.Created {
		s.logger.Info("Created missing capture bucket", zap.String("bucket", s.bucket))
	}
	return report, nil
}

// CheckCaptures scans every capture of a character.
func (s *Service) CheckCaptures(ctx context.Context, characterID string) (*checks.CaptureReport, error) {
	if err := capture.ValidateCharacterID(characterID); err != nil {
		return nil, err
	}
	return checks.CheckCaptures(ctx, s.client, s.bucket, characterID)
}

// CheckSchema compares the history tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db)
}
