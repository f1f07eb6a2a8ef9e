// Package system 인증이 필요 없는 시스템 수준 엔드포인트(생존 확인, 버전 정보) 핸들러를 제공합니다.
package system

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/waitlist-api/internal/pkg/version"
	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	"github.com/darkkaiser/waitlist-api/internal/service/api/model/system"
	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	buildInfo version.Info
}

// New Handler 인스턴스를 생성합니다.
func New(buildInfo version.Info) *Handler {
	return &Handler{
		buildInfo: buildInfo,
	}
}

// HealthCheckHandler godoc
// @Summary 프로세스 생존 확인
// @Description 프로세스가 실행 중이며 요청을 처리할 수 있는지 확인합니다.
// @Description 외부 의존성을 확인하지 않으며 항상 {"ok": true}를 반환합니다.
// @Description 응답이 없다면 프로세스가 중단된 것으로 판단합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthStatus "생존 확인 결과"
// @Router /healthz [get]
// @Router /v1/ping [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	// 상태를 읽거나 기록하지 않는다. 프로브 요청마다 로그가 쌓이지 않도록 로깅도 하지 않는다.
	return c.JSON(http.StatusOK, system.HealthStatus{OK: true})
}

// VersionHandler godoc
// @Summary 서버 빌드 정보
// @Description 애플리케이션 버전, Git 커밋, 빌드 날짜/번호와 Go 런타임 정보를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "빌드 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathVersion,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	})
}
