package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/darkkaiser/waitlist-api/pkg/strutil"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	// defaultBytesIn Content-Length 헤더가 없는 경우(예: Chunked 전송) bytes_in 필드에 기록할 값
	defaultBytesIn = "0"
)

// HTTPLoggerConfig HTTPLogger 미들웨어 설정
type HTTPLoggerConfig struct {
	// Skipper true를 반환하는 요청은 로그를 남기지 않는다.
	Skipper echomiddleware.Skipper
}

// HTTPLogger 모든 요청을 기록하는 HTTP 로깅 미들웨어를 반환합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return HTTPLoggerWithConfig(HTTPLoggerConfig{})
}

// HTTPLoggerWithConfig HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, URI, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 성능: 처리 시간
//
// 민감한 쿼리 파라미터(email, token 등)의 값은 마스킹됩니다.
func HTTPLoggerWithConfig(config HTTPLoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = echomiddleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			return logRequest(c, next)
		}
	}
}

func logRequest(c echo.Context, next echo.HandlerFunc) error {
	req := c.Request()
	res := c.Response()
	start := time.Now()

	// 패닉이 발생해도 로그가 남도록 defer로 기록한다.
	defer func() {
		latency := time.Since(start)

		path := req.URL.Path
		if path == "" {
			path = "/"
		}

		bytesIn := req.Header.Get(echo.HeaderContentLength)
		if bytesIn == "" {
			bytesIn = defaultBytesIn
		}

		applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
			"method":   req.Method,
			"path":     path,
			"uri":      maskSensitiveQueryParams(req.RequestURI),
			"host":     req.Host,
			"protocol": req.Proto,

			"remote_ip":  c.RealIP(),
			"user_agent": req.UserAgent(),
			"referer":    req.Referer(),

			"status":    res.Status,
			"bytes_in":  bytesIn,
			"bytes_out": strconv.FormatInt(res.Size, 10),

			"latency":       strconv.FormatInt(latency.Microseconds(), 10),
			"latency_human": latency.String(),

			"request_id": res.Header().Get(echo.HeaderXRequestID),
		}).Info(constants.LogMsgHTTPRequest)
	}()

	// 상태 코드가 로그에 반영되도록 에러를 여기서 응답으로 변환한다.
	if err := next(c); err != nil {
		c.Error(err)
	}

	return nil
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// URI 파싱에 실패하면 원본을 반환합니다.
//
//	입력: "/?email=someone@example.com&ref=ad"
//	출력: "/?email=some%2A%2A%2A.com&ref=ad"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.Mask(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
