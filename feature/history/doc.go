// Package history records equipment change events and drives replays.
//
// Store implements reconcile.Recorder and reconcile.BatchRecorder on GORM.
// Rows are unique on (date, character_id, slot, new_name) and inserted with
// ON CONFLICT DO NOTHING (ON DUPLICATE KEY UPDATE on MySQL), so replaying
// the same window twice records every change once.
//
// # HTTP Endpoints
//
//   - GET /history/:character?from&to&kind : list recorded changes.
//   - POST /history/:character/replay?from&to&dry_run&rebuild&name : replay a
//     window of captures and record what changed.
//
// The feature is disabled when no database connection is available.
package history
