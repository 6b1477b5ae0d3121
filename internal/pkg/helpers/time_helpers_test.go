package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("90m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("1 hour", time.Hour))
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2005-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2005, 6, 15, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2005-06-15", FormatDate(d))

	_, err = ParseDate("15/06/2005")
	assert.Error(t, err)

	manila := time.FixedZone("PHT", 8*3600)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), DateOnly(time.Date(2025, 6, 1, 10, 30, 0, 0, manila)))
}
