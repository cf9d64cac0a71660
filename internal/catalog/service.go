package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fundezy-io/fundezy-web/internal/matchtrader"
)

const tierCacheKey = "catalog:tiers:v1"

// ChallengeLister is the slice of the backend client the catalog needs.
type ChallengeLister interface {
	GetChallenges(ctx context.Context) ([]matchtrader.Challenge, error)
}

// Service fetches the challenge catalog and serves mapped tiers, optionally
// caching the mapped result in redis for a short TTL.
type Service struct {
	backend ChallengeLister
	cache   *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
}

// NewService builds a catalog service. cache may be nil, which disables caching.
func NewService(backend ChallengeLister, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{backend: backend, cache: cache, ttl: ttl, logger: logger}
}

// ListTiers returns the current pricing tiers. Cache errors fail open to a
// live backend fetch; backend errors are the caller's to surface.
func (s *Service) ListTiers(ctx context.Context) ([]Tier, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tierCacheKey).Result()
		if err == nil {
			var tiers []Tier
			if err := json.Unmarshal([]byte(cached), &tiers); err == nil {
				return tiers, nil
			}
			s.logger.Warn("discarding undecodable tier cache entry", slog.Any("error", err))
		} else if err != redis.Nil {
			s.logger.Warn("tier cache lookup failed", slog.Any("error", err))
		}
	}

	challenges, err := s.backend.GetChallenges(ctx)
	if err != nil {
		return nil, err
	}

	if unmapped := UnmappedChallengeIDs(challenges); len(unmapped) > 0 {
		s.logger.Debug("dropping challenges without a tier template", slog.Any("challenge_ids", unmapped))
	}

	tiers := MapChallengesToTiers(challenges)

	if s.cache != nil {
		if payload, err := json.Marshal(tiers); err == nil {
			if err := s.cache.Set(ctx, tierCacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn("tier cache write failed", slog.Any("error", err))
			}
		}
	}

	return tiers, nil
}
