package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, "ICT", d.Location().String())

	_, err = ParseDate("01/09/2026")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("2026-09-01", "18:30")
	require.NoError(t, err)
	assert.Equal(t, 18, dt.Hour())
	assert.Equal(t, 30, dt.Minute())

	_, err = ParseDateTime("2026-09-01", "6pm")
	assert.Error(t, err)
}

func TestPageWindow(t *testing.T) {
	skip, limit := PageWindow(Ptr(10), Ptr(3))
	assert.Equal(t, int64(20), skip)
	assert.Equal(t, int64(10), limit)

	skip, limit = PageWindow(nil, nil)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(0), limit)

	skip, limit = PageWindow(Ptr(0), Ptr(1))
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(0), limit)
}
