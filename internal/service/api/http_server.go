package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	"github.com/darkkaiser/waitlist-api/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/waitlist-api/internal/service/api/middleware"
	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS Strict-Transport-Security 헤더 전송 여부 (TLS 서버일 때만 활성화)
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	// 운영 환경에서는 랜딩 페이지 도메인만 명시합니다. (예: ["https://example.com"])
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 60초)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 속도 제한 (0이면 기본값 적용)
	RateLimitPerSecond int
	RateLimitBurst     int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다 (순서가 중요합니다):
//
//  1. PanicRecovery - 패닉 복구 및 로깅
//     - 가장 먼저 적용되어야 다른 미들웨어의 panic도 복구 가능
//
//  2. RequestID - 요청 ID 생성 (X-Request-ID 헤더, UUID)
//     - 로깅 미들웨어보다 먼저 적용되어야 로그에 request_id 포함 가능
//
//  3. ServerHeader - Server 헤더 제거
//
//  4. HTTPLogger - HTTP 요청/응답 로깅
//     - 민감 정보(email, api_key 등)는 자동으로 마스킹
//     - 생존 확인 경로(/healthz, /v1/ping)는 기록하지 않음
//
//  5. RateLimiting - IP 기반 요청 제한 (기본: 20 req/s, 버스트: 40)
//     - 제한 초과 시 429 Too Many Requests 응답
//     - 생존 확인 경로는 제한하지 않음
//
//  6. BodyLimit - 요청 본문 크기 제한 (128KB, 초과 시 413 응답)
//
//  7. ContextTimeout - 요청 컨텍스트 처리 시간 제한 (기본: 60초, 초과 시 503 응답)
//
//  8. CORS - Cross-Origin Resource Sharing (GET, HEAD, OPTIONS)
//
//  9. Secure - 보안 헤더 설정
//     - X-XSS-Protection, X-Content-Type-Options, X-Frame-Options
//     - TLS 서버인 경우 HSTS
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	// 보안 및 리소스 관리를 위한 HTTP 서버 타임아웃 설정
	e.Server.ReadTimeout = constants.DefaultReadTimeout             // 요청 본문 읽기 제한
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout // 요청 헤더 읽기 제한
	e.Server.WriteTimeout = constants.DefaultWriteTimeout           // 응답 쓰기 제한
	e.Server.IdleTimeout = constants.DefaultIdleTimeout             // Keep-Alive 연결 유휴 제한

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	// 전역 HTTP 에러 핸들러 설정
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	rps := cfg.RateLimitPerSecond
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	livenessSkipper := appmiddleware.SkipPaths(constants.LivenessPaths...)

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	// 4. HTTP 로깅 (RateLimit/Timeout 이전에 위치하여 429/503 에러도 기록)
	e.Use(appmiddleware.HTTPLoggerWithConfig(appmiddleware.HTTPLoggerConfig{
		Skipper: livenessSkipper,
	}))
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimitingWithConfig(appmiddleware.RateLimitConfig{
		Skipper:           livenessSkipper,
		RequestsPerSecond: rps,
		Burst:             burst,
	}))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Context Timeout
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	// 8. CORS 설정
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	// 9. 보안 헤더
	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = constants.DefaultHSTSMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
