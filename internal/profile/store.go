// internal/profile/store.go
package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/metrics"
	"franchise-fit/internal/models"
)

var ErrNotFound = errors.New("profile not found")

// Store loads profiles from Redis, falling back to the user_profiles table
// in PostgreSQL and repopulating the cache on a database hit.
type Store struct {
	db        *sql.DB
	cache     redis.Cmdable
	ttl       time.Duration
	keyPrefix string
	logger    logger.Logger
}

type Options struct {
	TTL       time.Duration
	KeyPrefix string
}

func NewStore(db *sql.DB, cache redis.Cmdable, opts Options, log logger.Logger) *Store {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "user:profile:"
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	return &Store{
		db:        db,
		cache:     cache,
		ttl:       opts.TTL,
		keyPrefix: opts.KeyPrefix,
		logger:    log,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS user_profiles (
	user_id    TEXT PRIMARY KEY,
	profile    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the user_profiles table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create user_profiles: %w", err)
	}
	return nil
}

func (s *Store) key(userID string) string {
	return s.keyPrefix + userID
}

// Get returns the profile for userID or ErrNotFound. Cache failures are
// logged and fall through to the database.
func (s *Store) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	if s.cache != nil {
		val, err := s.cache.Get(ctx, s.key(userID)).Result()
		switch {
		case err == nil:
			var p models.UserProfile
			if jsonErr := json.Unmarshal([]byte(val), &p); jsonErr == nil {
				metrics.ProfileLookups.WithLabelValues("cache_hit").Inc()
				return &p, nil
			}
			s.logger.Warn("discarding unreadable cached profile", map[string]interface{}{"userId": userID})
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("profile cache read failed", map[string]interface{}{"userId": userID, "error": err})
		}
	}

	if s.db == nil {
		metrics.ProfileLookups.WithLabelValues("miss").Inc()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, userID)
	}

	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT profile FROM user_profiles WHERE user_id = $1`, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.ProfileLookups.WithLabelValues("miss").Inc()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, userID)
	}
	if err != nil {
		metrics.ProfileLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("query profile: %w", err)
	}

	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		metrics.ProfileLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	metrics.ProfileLookups.WithLabelValues("db_hit").Inc()

	s.writeCache(ctx, userID, raw)
	return &p, nil
}

// Save upserts the profile row and refreshes the cache.
func (s *Store) Save(ctx context.Context, userID string, p models.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if s.db != nil {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO user_profiles (user_id, profile, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (user_id) DO UPDATE SET profile = EXCLUDED.profile, updated_at = NOW()`,
			userID, raw)
		if err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}
	s.writeCache(ctx, userID, raw)
	return nil
}

func (s *Store) writeCache(ctx context.Context, userID string, raw []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, s.key(userID), raw, s.ttl).Err(); err != nil {
		s.logger.Warn("profile cache write failed", map[string]interface{}{"userId": userID, "error": err})
	}
}
