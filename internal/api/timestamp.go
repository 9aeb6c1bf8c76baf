package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrTimestampOutOfRange indica que el timestamp no es representable como fecha
var ErrTimestampOutOfRange = errors.New("timestamp out of range")

// Rango representable: 0001-01-01T00:00:00Z .. 9999-12-31T23:59:59Z
var (
	minTimestamp = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxTimestamp = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// fromTimestamp convierte segundos epoch a un instante absoluto
func fromTimestamp(seconds int64) (time.Time, error) {
	if seconds < minTimestamp || seconds > maxTimestamp {
		return time.Time{}, fmt.Errorf("%w: %d", ErrTimestampOutOfRange, seconds)
	}
	return time.Unix(seconds, 0).UTC(), nil
}

// parseTimestampParam parsea el query param. Un entero que no cabe en int64
// también es out of range; cualquier otro error es de formato.
func parseTimestampParam(raw string) (time.Time, error) {
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return time.Time{}, fmt.Errorf("%w: %s", ErrTimestampOutOfRange, raw)
		}
		return time.Time{}, err
	}
	return fromTimestamp(seconds)
}
