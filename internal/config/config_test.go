package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAYMENT_DB_MODE", "")
	t.Setenv("INSTANT_PAYOUT_CURRENCIES", "")
	t.Setenv("INSTANT_PAYOUT_DAILY_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, PaymentDBModeMock, cfg.Database.Mode)
	require.False(t, cfg.UsesPaymentDB())
	require.Equal(t, 1, cfg.InstantPayout.DailyLimit)
	require.Equal(t, []string{"usd", "cad"}, cfg.InstantPayout.SupportedCurrencies)
	require.Equal(t, 48*time.Hour, cfg.InstantPayout.LedgerRetention)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PAYMENT_DB_MODE", "Postgres")
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGPORT", "6432")
	t.Setenv("INSTANT_PAYOUT_CURRENCIES", " USD, ,eur ")
	t.Setenv("INSTANT_PAYOUT_DAILY_LIMIT", "3")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, cfg.UsesPaymentDB())
	require.Contains(t, cfg.GetDSN(), "host=db.internal port=6432")
	require.Equal(t, []string{"usd", "eur"}, cfg.InstantPayout.SupportedCurrencies)
	require.Equal(t, 3, cfg.InstantPayout.DailyLimit)
	require.Equal(t, 0, cfg.Redis.DB)
}
