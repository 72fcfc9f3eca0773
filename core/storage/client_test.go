package storage_test

import (
	"context"
	"errors"
	"testing"

	"gear-tracker/core/storage"
	"gear-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{
			name: "ValidConfig",
			cfg: storage.Config{
				Endpoint:  "localhost:9000",
				AccessKey: "testkey",
				SecretKey: "testsecret",
				Bucket:    "captures",
				Region:    "us-east-1",
			},
		},
		{
			name: "EndpointWithHTTP",
			cfg:  storage.Config{Endpoint: "http://localhost:9000", AccessKey: "testkey", SecretKey: "testsecret"},
		},
		{
			name: "EndpointWithHTTPS",
			cfg:  storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "testkey", SecretKey: "testsecret", UseSSL: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "captures").Return(true, nil)

		created, err := storage.EnsureBucket(ctx, client, "captures", "")
		require.NoError(t, err)
		assert.False(t, created)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "captures").Return(false, nil)
		client.On("MakeBucket", ctx, "captures", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		created, err := storage.EnsureBucket(ctx, client, "captures", "eu-west-1")
		require.NoError(t, err)
		assert.True(t, created)
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "captures").Return(false, errors.New("access denied"))

		_, err := storage.EnsureBucket(ctx, client, "captures", "")
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("CreateFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "captures").Return(false, nil)
		client.On("MakeBucket", ctx, "captures", mock.Anything).Return(errors.New("quota"))

		_, err := storage.EnsureBucket(ctx, client, "captures", "")
		assert.ErrorContains(t, err, "failed to create bucket captures")
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
	assert.False(t, storage.IsNotFound(nil))
}

func TestListKeys(t *testing.T) {
	opts := minio.ListObjectsOptions{Prefix: "captures/", Recursive: true}

	t.Run("Collects", func(t *testing.T) {
		ch := make(chan minio.ObjectInfo, 2)
		ch <- minio.ObjectInfo{Key: "captures/a.json"}
		ch <- minio.ObjectInfo{Key: "captures/b.json"}
		close(ch)

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "captures", opts).Return((<-chan minio.ObjectInfo)(ch))

		keys, err := storage.ListKeys(context.Background(), client, "captures", opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"captures/a.json", "captures/b.json"}, keys)
	})

	t.Run("ErrorStopsLister", func(t *testing.T) {
		var listCtx context.Context
		lister := func(ctx context.Context, _ string, _ minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			listCtx = ctx
			ch := make(chan minio.ObjectInfo)
			go func() {
				defer close(ch)
				ch <- minio.ObjectInfo{Err: errors.New("access denied")}
				select {
				case ch <- minio.ObjectInfo{Key: "captures/late.json"}:
				case <-ctx.Done():
				}
			}()
			return ch
		}

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "captures", opts).Return(lister)

		keys, err := storage.ListKeys(context.Background(), client, "captures", opts)
		require.Error(t, err)
		assert.Nil(t, keys)
		require.NotNil(t, listCtx)
		assert.ErrorIs(t, listCtx.Err(), context.Canceled)
	})
}
