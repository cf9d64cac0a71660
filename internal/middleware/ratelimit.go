package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// SubmissionRateLimit caps feedback-style submissions per email or IP per
// minute using redis when available.
func SubmissionRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 5
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next() // no-op without redis
		}
		key, _ := c.Locals(LocalUserEmail).(string)
		if key == "" {
			var req struct {
				Email string `json:"email"`
			}
			_ = c.BodyParser(&req)
			key = strings.TrimSpace(req.Email)
		}
		if key == "" {
			key = c.IP()
		}
		cacheKey := "rl:submit:" + key
		cnt, err := cache.Incr(c.UserContext(), cacheKey).Result()
		if err == nil && cnt == 1 {
			cache.Expire(c.UserContext(), cacheKey, time.Minute)
		}
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many submissions, try again later")
		}
		return c.Next()
	}
}
