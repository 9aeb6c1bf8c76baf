package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromTimestampBounds(t *testing.T) {
	got, err := fromTimestamp(maxTimestamp)
	require.NoError(t, err)
	require.Equal(t, 9999, got.Year())

	got, err = fromTimestamp(minTimestamp)
	require.NoError(t, err)
	require.Equal(t, 1, got.Year())

	_, err = fromTimestamp(maxTimestamp + 1)
	require.ErrorIs(t, err, ErrTimestampOutOfRange)

	_, err = fromTimestamp(minTimestamp - 1)
	require.ErrorIs(t, err, ErrTimestampOutOfRange)
}

func TestParseTimestampParam(t *testing.T) {
	got, err := parseTimestampParam("1715299200")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = parseTimestampParam("18446744073709551616")
	require.ErrorIs(t, err, ErrTimestampOutOfRange)

	_, err = parseTimestampParam("abc")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrTimestampOutOfRange)
}
