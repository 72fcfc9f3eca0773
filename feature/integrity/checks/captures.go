package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"gear-tracker/core/equipment"
	"gear-tracker/core/storage"
	"gear-tracker/feature/capture"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// Problems reported for capture objects.
const (
	ProblemKey        = "malformed_key"
	ProblemUnreadable = "unreadable"
	ProblemDecode     = "undecodable"
	ProblemInvalid    = "invalid"
)

// Issue is one capture object the replay driver cannot use.
type Issue struct {
	Key     string `json:"key"`
	Problem string `json:"problem"`
	Detail  string `json:"detail,omitempty"`
}

// CaptureReport is the result of scanning every capture of a character.
type CaptureReport struct {
	Character     string  `json:"character"`
	Checked       int     `json:"checked"`
	Equipment     int     `json:"equipment"`
	RingExchange  int     `json:"ring_exchange"`
	Issues        []Issue `json:"issues"`
	Status        string  `json:"status"` // "ok", "error"
	GeneratedAt   string  `json:"generated_at"`
	ExecutionTime string  `json:"execution_time"`
}

// scanWorkers bounds the concurrent object downloads of one scan.
const scanWorkers = 8

// CheckCaptures downloads and decodes every capture of a character.
// Objects that are misnamed, unreadable, undecodable or fail validation are
// reported as issues in key order. Listing failures abort the scan.
func CheckCaptures(ctx context.Context, client storage.Client, bucket, characterID string) (*CaptureReport, error) {
	startTime := time.Now()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s not found", bucket)
	}

	opts := minio.ListObjectsOptions{
		Prefix:    capture.CharacterPrefix(characterID),
		Recursive: true,
	}
	keys, err := storage.ListKeys(ctx, client, bucket, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list captures: %w", err)
	}
	sort.Strings(keys)

	// Each worker owns one slot, so results need no lock
	results := make([]scanResult, len(keys))
	g, ctxGroup := errgroup.WithContext(ctx)
	g.SetLimit(scanWorkers)
	for i, key := range keys {
		g.Go(func() error {
			if err := ctxGroup.Err(); err != nil {
				return err
			}
			results[i] = scanObject(ctxGroup, client, bucket, characterID, key)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &CaptureReport{Character: characterID, Checked: len(keys), Issues: []Issue{}, Status: "ok"}
	for _, res := range results {
		switch res.kind {
		case capture.KindEquipment:
			report.Equipment++
		case capture.KindRingExchange:
			report.RingExchange++
		}
		if res.issue != nil {
			report.Issues = append(report.Issues, *res.issue)
			report.Status = "error"
		}
	}

	report.GeneratedAt = time.Now().Format(time.RFC3339)
	report.ExecutionTime = time.Since(startTime).String()
	return report, nil
}

// scanResult is the outcome of checking one object.
type scanResult struct {
	kind  capture.Kind
	issue *Issue
}

func scanObject(ctx context.Context, client storage.Client, bucket, characterID, key string) scanResult {
	issue := func(problem, detail string) *Issue {
		return &Issue{Key: key, Problem: problem, Detail: detail}
	}

	kind, _, ok := capture.ParseObjectKey(characterID, key)
	if !ok {
		return scanResult{issue: issue(ProblemKey, "")}
	}
	res := scanResult{kind: kind}

	data, err := readObject(ctx, client, bucket, key)
	if err != nil {
		res.issue = issue(ProblemUnreadable, err.Error())
		return res
	}

	switch kind {
	case capture.KindEquipment:
		var c equipment.Capture
		if err := json.Unmarshal(data, &c); err != nil {
			res.issue = issue(ProblemDecode, err.Error())
		} else if msg := c.Validate(); msg != "" {
			res.issue = issue(ProblemInvalid, msg)
		}
	case capture.KindRingExchange:
		var r equipment.RingExchange
		if err := json.Unmarshal(data, &r); err != nil {
			res.issue = issue(ProblemDecode, err.Error())
		}
	}
	return res
}

func readObject(ctx context.Context, client storage.Client, bucket, key string) ([]byte, error) {
	reader, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}
