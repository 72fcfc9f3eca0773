// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so the capture store
// can run against AWS S3, a self-hosted MinIO instance, or the mock in
// core/storage/mocks during unit tests.
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket at startup.
//   - PutObject / GetObject: store and read one capture document.
//   - ListObjects: enumerate a character's captures by prefix.
//   - RemoveObject / RemoveObjects: delete one capture or a whole character.
//
// IsNotFound maps a NoSuchKey response to a plain boolean, which the capture
// store turns into "no data for this day".
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
