// Package cache holds the short-lived state kept in Redis: revoked tokens, ban
// markers, password reset and OAuth state tokens, throttle counters, view
// dedupe keys, trending searches and cached autocomplete results.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"professionals-api/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	prefixRevoked  = "auth:revoked:"
	prefixBanned   = "auth:banned:"
	prefixCutoff   = "auth:revoked_before:"
	prefixReset    = "auth:reset:"
	prefixOAuth    = "auth:oauth_state:"
	prefixThrottle = "throttle:"
	prefixView     = "views:seen:"
	prefixCache    = "cache:"
	keyTrending    = "search:trending"
)

// ErrMiss is returned by GetJSON when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store wraps a Redis client.
type Store struct {
	rdb *redis.Client
}

// New creates a Store.
func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Ping checks the connection; used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// --- Sessions ---

// Revoke deny-lists a token id until it would have expired anyway.
func (s *Store) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, prefixRevoked+jti, 1, ttl).Err()
}

func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, prefixRevoked+jti).Result()
	return n > 0, err
}

// RevokeUserSessions invalidates every token issued to the user up to now.
// The marker lives as long as the longest token it can reject.
func (s *Store) RevokeUserSessions(ctx context.Context, userID int64, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, prefixCutoff+strconv.FormatInt(userID, 10), time.Now().Unix(), ttl).Err()
}

// SessionsRevokedAt returns the cutoff set by RevokeUserSessions, or the zero
// time when there is none.
func (s *Store) SessionsRevokedAt(ctx context.Context, userID int64) (time.Time, error) {
	unix, err := s.rdb.Get(ctx, prefixCutoff+strconv.FormatInt(userID, 10)).Int64()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0), nil
}

// Ban sets a marker checked on every authenticated request.
func (s *Store) Ban(ctx context.Context, userID int64) error {
	return s.rdb.Set(ctx, prefixBanned+strconv.FormatInt(userID, 10), 1, 0).Err()
}

func (s *Store) Unban(ctx context.Context, userID int64) error {
	return s.rdb.Del(ctx, prefixBanned+strconv.FormatInt(userID, 10)).Err()
}

func (s *Store) IsBanned(ctx context.Context, userID int64) (bool, error) {
	n, err := s.rdb.Exists(ctx, prefixBanned+strconv.FormatInt(userID, 10)).Result()
	return n > 0, err
}

// --- One-time tokens ---

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// StoreResetToken keeps a hash of token for email; a newer token replaces the old one.
func (s *Store) StoreResetToken(ctx context.Context, email, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, prefixReset+strings.ToLower(email), hashToken(token), ttl).Err()
}

// consumeIfEqual deletes KEYS[1] only when it holds ARGV[1], in one step.
var consumeIfEqual = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// ConsumeResetToken reports whether token matches and deletes it on success.
// Check and delete run atomically so a token is honoured at most once.
func (s *Store) ConsumeResetToken(ctx context.Context, email, token string) (bool, error) {
	n, err := consumeIfEqual.Run(ctx, s.rdb, []string{prefixReset + strings.ToLower(email)}, hashToken(token)).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// StoreOAuthState remembers which provider issued state.
func (s *Store) StoreOAuthState(ctx context.Context, state, provider string, ttl time.Duration) error {
	return s.rdb.Set(ctx, prefixOAuth+state, provider, ttl).Err()
}

// ConsumeOAuthState returns the provider bound to state and forgets it.
func (s *Store) ConsumeOAuthState(ctx context.Context, state string) (string, bool, error) {
	provider, err := s.rdb.GetDel(ctx, prefixOAuth+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return provider, true, nil
}

// --- Throttle ---

// Allow counts one hit for key in a fixed window and reports whether it is within limit.
func (s *Store) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, time.Duration, error) {
	bucket := time.Now().Unix() / int64(window.Seconds())
	k := fmt.Sprintf("%s%s:%d", prefixThrottle, key, bucket)

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	ttl := pipe.TTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, limit, 0, err
	}

	hits := int(incr.Val())
	remaining := limit - hits
	if remaining < 0 {
		remaining = 0
	}
	return hits <= limit, remaining, ttl.Val(), nil
}

// --- Views ---

// FirstView reports whether viewer has not been seen on target within ttl, and marks it.
func (s *Store) FirstView(ctx context.Context, target, viewer string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, prefixView+target+":"+viewer, 1, ttl).Result()
}

// --- Trending searches ---

func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

func (s *Store) IncrementSearch(ctx context.Context, term string) error {
	term = normalizeTerm(term)
	if term == "" {
		return nil
	}
	return s.rdb.ZIncrBy(ctx, keyTrending, 1, term).Err()
}

// TopSearches returns the n highest scored terms.
func (s *Store) TopSearches(ctx context.Context, n int) ([]models.TrendingTerm, error) {
	zs, err := s.rdb.ZRevRangeWithScores(ctx, keyTrending, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	terms := make([]models.TrendingTerm, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		terms = append(terms, models.TrendingTerm{Term: member, Score: z.Score})
	}
	return terms, nil
}

// --- JSON cache ---

func (s *Store) GetJSON(ctx context.Context, key string, dst any) error {
	raw, err := s.rdb.Get(ctx, prefixCache+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func (s *Store) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, prefixCache+key, raw, ttl).Err()
}
