package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/waitlist-api/docs"
	"github.com/darkkaiser/waitlist-api/internal/config"
	apperrors "github.com/darkkaiser/waitlist-api/internal/pkg/errors"
	"github.com/darkkaiser/waitlist-api/internal/pkg/version"
	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	"github.com/darkkaiser/waitlist-api/internal/service/api/handler/landing"
	"github.com/darkkaiser/waitlist-api/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/waitlist-api/internal/service/api/v1"
	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 대기자 등록 API 서버의 생명주기를 관리하는 서비스입니다.
//
// 이 서비스는 다음과 같은 역할을 수행합니다:
//   - Echo 기반 HTTP/HTTPS 서버 시작 및 종료
//   - 미들웨어 체인 및 전역 에러 핸들러 설정
//   - 생존 확인(/healthz, /v1/ping), 버전 정보, 랜딩 페이지, Swagger UI 라우팅
//   - Graceful Shutdown 지원 (5초 타임아웃)
//
// Start() 메서드로 시작하고, context 취소로 종료됩니다.
type Service struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex

	failedC chan error
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Service{
		appConfig: appConfig,

		buildInfo: buildInfo,

		running: false,

		failedC: make(chan error, 1),
	}
}

// Start API 서비스를 시작합니다.
//
// 서버는 별도의 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
// 이미 실행 중이면 serviceStopWG.Done()을 호출하고 아무 작업도 하지 않습니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done()이 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan error, 1)
	go func() {
		httpServerDone <- s.startHTTPServer(e)
	}()

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	httpAPI := s.appConfig.HTTPAPI

	// 1. Handler 생성
	systemHandler := system.New(s.buildInfo)

	var landingHandler *landing.Handler
	if s.appConfig.Landing.Enabled {
		landingHandler = landing.New(landing.Content{
			Title:       s.appConfig.Landing.Title,
			Headline:    s.appConfig.Landing.Headline,
			Description: s.appConfig.Landing.Description,
		})
	}

	// 2. Echo 서버 생성 (미들웨어 체인 포함)
	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		EnableHSTS:         httpAPI.WS.TLSServer,
		AllowOrigins:       httpAPI.CORS.AllowOrigins,
		RequestTimeout:     httpAPI.RequestTimeout,
		RateLimitPerSecond: httpAPI.RateLimit.RequestsPerSecond,
		RateLimitBurst:     httpAPI.RateLimit.Burst,
	})

	// 3. 라우트 등록
	RegisterRoutes(e, systemHandler, landingHandler)
	v1.RegisterRoutes(e, systemHandler)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다.
// 서버가 종료될 때까지 블로킹되며, 서버가 반환한 에러를 그대로 돌려줍니다.
func (s *Service) startHTTPServer(e *echo.Echo) error {
	ws := s.appConfig.HTTPAPI.WS
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	address := fmt.Sprintf(":%d", ws.ListenPort)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)

	return err
}

// handleServerError HTTP 서버 종료 원인에 따라 로그를 남깁니다.
//
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Graceful Shutdown 완료 (Info)
//   - 그 외: 포트 바인딩 실패, 인증서 오류 등 예상치 못한 에러 (Error)
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTPAPI.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
// 서비스가 완전히 종료될 때까지 블로킹됩니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone <-chan error) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case err := <-httpServerDone:
		// 이미 종료된 서버이므로 Shutdown 호출 없이 상태만 정리한다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()
		s.notifyFailure(err)

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// Failed 서버가 종료 신호 없이 멈췄을 때 그 원인을 전달하는 채널을 반환합니다.
func (s *Service) Failed() <-chan error {
	return s.failedC
}

// notifyFailure 예기치 않은 종료 원인을 Failed 채널로 전달합니다. 읽지 않은 알림이 남아 있으면 새 알림은 버린다.
func (s *Service) notifyFailure(cause error) {
	var err error
	if cause == nil {
		err = apperrors.New(apperrors.System, constants.LogMsgServiceUnexpectedExit)
	} else {
		err = apperrors.Wrap(cause, apperrors.System, constants.LogMsgServiceUnexpectedExit)
	}

	select {
	case s.failedC <- err:
	default:
	}
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// isRunning 서비스 실행 여부를 반환합니다.
func (s *Service) isRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}
