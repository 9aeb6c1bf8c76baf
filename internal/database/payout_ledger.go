package database

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/redis/go-redis/v9"
)

// PayoutLedger registra los instant payouts enviados por cuenta
type PayoutLedger interface {
	// ReserveInstantPayout registra el payout solo si la cuenta tiene menos de limit
	// payouts con submittedAt >= since. Conteo y escritura son una sola operación atómica.
	ReserveInstantPayout(ctx context.Context, accountID models.PayoutAccountID, payoutID string, submittedAt, since time.Time, limit int) (bool, error)
	CountInstantPayoutsSince(ctx context.Context, accountID models.PayoutAccountID, since time.Time) (int, error)
}

// RedisPayoutLedger guarda un sorted set por cuenta con score = unix seconds
type RedisPayoutLedger struct {
	redis     *Redis
	retention time.Duration
}

// NewRedisPayoutLedger crea un ledger respaldado por Redis
func NewRedisPayoutLedger(r *Redis, retention time.Duration) *RedisPayoutLedger {
	return &RedisPayoutLedger{redis: r, retention: retention}
}

func instantPayoutKey(accountID models.PayoutAccountID) string {
	return fmt.Sprintf("instant_payout:account:%d", accountID)
}

// KEYS[1] = key; ARGV = since, limit, score, member, cutoff, ttl seconds
var reserveInstantPayoutScript = redis.NewScript(`
local count = redis.call('ZCOUNT', KEYS[1], ARGV[1], '+inf')
if count >= tonumber(ARGV[2]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[4])
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', '(' .. ARGV[5])
redis.call('EXPIRE', KEYS[1], ARGV[6])
return 1
`)

// ReserveInstantPayout cuenta, agrega y purga entradas fuera de la retención en un solo script
func (l *RedisPayoutLedger) ReserveInstantPayout(ctx context.Context, accountID models.PayoutAccountID, payoutID string, submittedAt, since time.Time, limit int) (bool, error) {
	ttl := int64(l.retention.Seconds())
	if ttl < 1 {
		ttl = 1
	}

	reserved, err := reserveInstantPayoutScript.Run(ctx, l.redis.Client, []string{instantPayoutKey(accountID)},
		since.Unix(),
		limit,
		submittedAt.Unix(),
		payoutID,
		submittedAt.Add(-l.retention).Unix(),
		ttl,
	).Int()
	if err != nil {
		return false, fmt.Errorf("error reserving instant payout in Redis: %w", err)
	}
	return reserved == 1, nil
}

// CountInstantPayoutsSince cuenta los payouts con submittedAt >= since
func (l *RedisPayoutLedger) CountInstantPayoutsSince(ctx context.Context, accountID models.PayoutAccountID, since time.Time) (int, error) {
	count, err := l.redis.ZCount(ctx, instantPayoutKey(accountID), strconv.FormatInt(since.Unix(), 10), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("error counting instant payouts in Redis: %w", err)
	}
	return int(count), nil
}

// MemoryPayoutLedger es el ledger en memoria usado cuando Redis no está disponible
type MemoryPayoutLedger struct {
	mu        sync.Mutex
	entries   map[models.PayoutAccountID][]time.Time
	retention time.Duration
}

// NewMemoryPayoutLedger crea un ledger en memoria. Con retention <= 0 no se purga nada.
func NewMemoryPayoutLedger(retention time.Duration) *MemoryPayoutLedger {
	return &MemoryPayoutLedger{
		entries:   make(map[models.PayoutAccountID][]time.Time),
		retention: retention,
	}
}

// ReserveInstantPayout cuenta y agrega bajo el mismo lock
func (l *MemoryPayoutLedger) ReserveInstantPayout(ctx context.Context, accountID models.PayoutAccountID, payoutID string, submittedAt, since time.Time, limit int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(accountID, submittedAt)
	if l.countSince(accountID, since) >= limit {
		return false, nil
	}
	l.entries[accountID] = append(l.entries[accountID], submittedAt)
	return true, nil
}

// CountInstantPayoutsSince cuenta los payouts con submittedAt >= since
func (l *MemoryPayoutLedger) CountInstantPayoutsSince(ctx context.Context, accountID models.PayoutAccountID, since time.Time) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.countSince(accountID, since), nil
}

func (l *MemoryPayoutLedger) size(accountID models.PayoutAccountID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries[accountID])
}

func (l *MemoryPayoutLedger) countSince(accountID models.PayoutAccountID, since time.Time) int {
	count := 0
	for _, at := range l.entries[accountID] {
		if !at.Before(since) {
			count++
		}
	}
	return count
}

// prune descarta entradas anteriores a now - retention; debe llamarse con el lock tomado
func (l *MemoryPayoutLedger) prune(accountID models.PayoutAccountID, now time.Time) {
	if l.retention <= 0 {
		return
	}

	cutoff := now.Add(-l.retention)
	kept := l.entries[accountID][:0]
	for _, at := range l.entries[accountID] {
		if !at.Before(cutoff) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(l.entries, accountID)
		return
	}
	l.entries[accountID] = kept
}
