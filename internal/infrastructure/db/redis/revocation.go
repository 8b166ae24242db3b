package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "revoked:jti:"

var revocationCheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "clinic",
	Name:      "token_revocation_check_duration_seconds",
	Help:      "Latency of token revocation lookups.",
	Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
})

// RevocationList stores logged-out token ids until the token would have
// expired on its own. Key format: <prefix><jti>
type RevocationList struct {
	client *redis.Client
	prefix string
}

// RevocationOption configures a RevocationList.
type RevocationOption func(*RevocationList)

// WithKeyPrefix overrides the default key prefix.
func WithKeyPrefix(prefix string) RevocationOption {
	return func(l *RevocationList) {
		l.prefix = prefix
	}
}

func NewRevocationList(client *redis.Client, opts ...RevocationOption) *RevocationList {
	l := &RevocationList{client: client, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Revoke marks tokenID as revoked for ttl.
func (l *RevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, l.prefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked and has not yet expired.
func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	start := time.Now()
	defer func() {
		revocationCheckDuration.Observe(time.Since(start).Seconds())
	}()

	if tokenID == "" {
		return false, nil
	}

	_, err := l.client.Get(ctx, l.prefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revocation: %w", err)
	}
	return true, nil
}
