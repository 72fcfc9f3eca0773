package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-03-01", FormatDate(d))

	_, err = ParseDate("03/01/2024")
	assert.Error(t, err)
}

func TestDaysInRange(t *testing.T) {
	from := time.Date(2024, 2, 28, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)

	days := DaysInRange(from, to)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-02-28", FormatDate(days[0]))
	assert.Equal(t, "2024-02-29", FormatDate(days[1]))
	assert.Equal(t, "2024-03-01", FormatDate(days[2]))

	assert.Nil(t, DaysInRange(to, from))
}
