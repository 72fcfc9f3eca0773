package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gear-tracker/core/storage"
	"gear-tracker/feature/capture"

	"github.com/minio/minio-go/v7"
)

// StorageReport describes the capture bucket.
type StorageReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Created bool   `json:"created"`
	// Characters lists every character with at least one capture.
	Characters []string `json:"characters"`
}

// CheckStorage verifies the capture bucket and lists the characters found in
// it. A missing bucket is created when fix is set.
func CheckStorage(ctx context.Context, client storage.Client, bucket, region string, fix bool) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Characters: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if !fix {
			return report, nil
		}
		created, err := storage.EnsureBucket(ctx, client, bucket, region)
		if err != nil {
			return nil, err
		}
		report.Exists = true
		report.Created = created
		return report, nil
	}
	report.Exists = true

	prefix := capture.RootPrefix + "/"
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}
	keys, err := storage.ListKeys(ctx, client, bucket, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	for _, key := range keys {
		// Non-recursive listings report each character folder as a common prefix
		id, ok := strings.CutSuffix(strings.TrimPrefix(key, prefix), "/")
		if ok && id != "" {
			report.Characters = append(report.Characters, id)
		}
	}
	sort.Strings(report.Characters)

	return report, nil
}
