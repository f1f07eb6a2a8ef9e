package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	"github.com/darkkaiser/waitlist-api/internal/service/api/httputil"
	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// ipRateLimiter IP 주소별 Token Bucket Limiter를 관리합니다.
//
// IP는 한 번 추가되면 프로세스 종료 전까지 유지된다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond int, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter IP에 대한 Limiter를 반환하며, 없으면 새로 생성합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double-check: 다른 고루틴이 먼저 생성했을 수 있다.
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

// RateLimitConfig RateLimiting 미들웨어 설정
type RateLimitConfig struct {
	// Skipper true를 반환하는 요청은 속도 제한을 적용하지 않는다.
	Skipper echomiddleware.Skipper

	// RequestsPerSecond IP별 초당 허용 요청 수 (양수)
	RequestsPerSecond int

	// Burst IP별 순간 최대 허용 요청 수 (양수)
	Burst int
}

// RateLimiting 모든 요청에 IP 기반 속도 제한을 적용하는 미들웨어를 반환합니다.
func RateLimiting(requestsPerSecond int, burst int) echo.MiddlewareFunc {
	return RateLimitingWithConfig(RateLimitConfig{
		RequestsPerSecond: requestsPerSecond,
		Burst:             burst,
	})
}

// RateLimitingWithConfig IP 기반 Rate Limiting 미들웨어를 반환합니다.
//
// IP 주소별로 독립적인 Token Bucket(golang.org/x/time/rate)을 사용하며,
// 제한 초과 시 Retry-After 헤더와 함께 429 Too Many Requests로 응답합니다.
// 저장소는 메모리 기반이므로 서버 인스턴스마다 독립적으로 제한됩니다.
//
// RequestsPerSecond 또는 Burst가 0 이하이면 panic이 발생합니다.
func RateLimitingWithConfig(config RateLimitConfig) echo.MiddlewareFunc {
	if config.RequestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, config.RequestsPerSecond))
	}
	if config.Burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, config.Burst))
	}
	if config.Skipper == nil {
		config.Skipper = echomiddleware.DefaultSkipper
	}

	limiter := newIPRateLimiter(config.RequestsPerSecond, config.Burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			ip := c.RealIP()
			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(echo.HeaderRetryAfter, "1")

				return httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
			}

			return next(c)
		}
	}
}
