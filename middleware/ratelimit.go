package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	defaultRateLimitMax    = 5
	defaultRateLimitWindow = 60 * time.Minute
)

// RecentReportCounter counts reports created by an RA since the given time.
type RecentReportCounter func(ctx context.Context, ra string, since time.Time) (int64, error)

func rateLimitMax() int {
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_MAX")); err == nil && v > 0 {
		return v
	}
	return defaultRateLimitMax
}

func rateLimitWindow() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_WINDOW_MINUTES")); err == nil && v > 0 {
		return time.Duration(v) * time.Minute
	}
	return defaultRateLimitWindow
}

// RateLimitByRA caps report submissions per student identifier. The count is
// derived fresh from the reports table on every request, so it self-corrects
// as submissions age past the window. A failure to compute the count admits
// the request (fail-open).
func RateLimitByRA(count RecentReportCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var probe struct {
			RA string `json:"ra"`
		}
		// ShouldBindBodyWith buffers the body so the handler can bind it again.
		if err := c.ShouldBindBodyWith(&probe, binding.JSON); err != nil || probe.RA == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "RA is required"})
			c.Abort()
			return
		}

		limit := rateLimitMax()
		n, err := count(c.Request.Context(), probe.RA, time.Now().Add(-rateLimitWindow()))
		if err != nil {
			// Fail-open: availability over strict enforcement.
			log.Printf("Warning: rate limit count failed for RA %s: %v", probe.RA, err)
			c.Next()
			return
		}

		if n >= int64(limit) {
			log.Printf("Rate limit exceeded for RA: %s", probe.RA)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Too many requests. You have reached the limit of %d reports per hour.", limit),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
