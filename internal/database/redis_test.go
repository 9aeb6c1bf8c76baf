package database

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRedisLogStats(t *testing.T) {
	logger, hook := test.NewNullLogger()

	// NewClient no abre conexiones hasta el primer comando
	r := &Redis{redis.NewClient(&redis.Options{Addr: "localhost:0"})}
	t.Cleanup(func() { r.Close() })

	r.LogStats(logger)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	require.Equal(t, "Redis pool statistics", entry.Message)
	require.Contains(t, entry.Data, "total_conns")
	require.Contains(t, entry.Data, "idle_conns")
}
