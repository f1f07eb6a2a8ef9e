// Package v1 v1 API 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET /v1/ping - 프로세스 생존 확인
package v1

import (
	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	"github.com/darkkaiser/waitlist-api/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// /v1/ping은 /healthz와 동일한 핸들러를 사용하므로 두 경로의 응답은 항상 같습니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	v1Group := e.Group(constants.GroupV1)

	v1Group.GET(constants.PathV1Ping, h.HealthCheckHandler)
}
