package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfig_Options(t *testing.T) {
	l := zap.NewNop()

	t.Run("Defaults", func(t *testing.T) {
		opts, err := Config{CacheTTLSeconds: 300, ExcludedBuckets: "title,medal"}.Options(l)
		require.NoError(t, err)
		assert.True(t, opts.HistoryStart.IsZero())
		assert.Equal(t, 5*time.Minute, opts.CacheTTL)
		assert.Equal(t, []string{"title", "medal"}, opts.ExcludedBuckets)
		assert.Same(t, l, opts.Logger)
	})

	t.Run("HistoryStart", func(t *testing.T) {
		opts, err := Config{HistoryStart: "2023-12-21"}.Options(l)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 12, 21, 0, 0, 0, 0, time.UTC), opts.HistoryStart)
		assert.Zero(t, opts.CacheTTL)
	})

	t.Run("InvalidHistoryStart", func(t *testing.T) {
		_, err := Config{HistoryStart: "21/12/2023"}.Options(l)
		assert.Error(t, err)
	})

	t.Run("ExcludedBucketsNormalized", func(t *testing.T) {
		opts, err := Config{ExcludedBuckets: " Title , ,Android "}.Options(l)
		require.NoError(t, err)
		assert.Equal(t, []string{"title", "android"}, opts.ExcludedBuckets)
	})

	t.Run("NoExclusions", func(t *testing.T) {
		opts, err := Config{}.Options(l)
		require.NoError(t, err)
		assert.NotNil(t, opts.ExcludedBuckets)
		assert.Empty(t, opts.excluded())
	})
}
