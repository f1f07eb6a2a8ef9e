package api

import (
	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	"github.com/darkkaiser/waitlist-api/internal/service/api/handler/landing"
	"github.com/darkkaiser/waitlist-api/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
// 이 함수는 다음과 같은 공통 엔드포인트들을 설정합니다:
//   - 시스템 엔드포인트: 생존 확인(/healthz) 및 버전 정보(/version)
//   - API 문서: Swagger UI (/swagger/*)
//   - 랜딩 페이지(/): landingHandler가 nil이면 등록하지 않습니다.
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, landingHandler *landing.Handler) {
	registerSystemRoutes(e, systemHandler)
	registerSwaggerRoutes(e)

	if landingHandler != nil {
		registerLandingRoutes(e, landingHandler)
	}
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET(constants.PathHealthz, h.HealthCheckHandler)
	e.GET(constants.PathVersion, h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET(constants.PathSwagger, echoSwagger.EchoWrapHandler(
		// Swagger 문서 JSON 파일 위치 지정
		echoSwagger.URL(constants.PathSwaggerDoc),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그(Tag) 목록만 펼침 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}

func registerLandingRoutes(e *echo.Echo, h *landing.Handler) {
	e.GET(constants.PathLanding, h.PageHandler)
}
