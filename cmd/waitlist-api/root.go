package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/waitlist-api/internal/config"
	apperrors "github.com/darkkaiser/waitlist-api/internal/pkg/errors"
	"github.com/darkkaiser/waitlist-api/internal/pkg/version"
	"github.com/darkkaiser/waitlist-api/internal/service"
	"github.com/darkkaiser/waitlist-api/internal/service/api"
	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/spf13/cobra"
)

const banner = `
 __        __      _  _    _  _       _
 \ \      / /__ _ (_)| |_ | |(_) ___ | |_
  \ \ /\ / // _' || || __|| || |/ __|| __|
   \ V  V /| (_| || || |_ | || |\__ \| |_
    \_/\_/  \__,_||_| \__||_||_||___/ \__|
                                          %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "대기자 등록 랜딩 페이지 및 생존 확인 API 서버",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := runServer(ctx, cmd.OutOrStdout(), configFile); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "[FATAL] %v\n", err)
				return err
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", fmt.Sprintf("설정 파일 경로 (미지정 시 '%s', 파일이 없으면 기본값 사용)", config.DefaultFilename))

	rootCmd.AddCommand(newVersionCmd(), newCheckConfigCmd(&configFile))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "빌드 정보를 출력합니다",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, version.Get().String())
		},
	}
}

func newCheckConfigCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "설정 파일을 검증하고 권장 사항을 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig, err := loadConfig(*configFile)
			if err != nil {
				errOut := cmd.ErrOrStderr()
				fmt.Fprintf(errOut, "설정이 올바르지 않습니다: %v\n", err)
				if cause := apperrors.RootCause(err); cause != err {
					fmt.Fprintf(errOut, "  원인: %v\n", cause)
				}
				if apperrors.Is(err, apperrors.NotFound) {
					fmt.Fprintln(errOut, "  --config 플래그로 설정 파일 경로를 지정하세요")
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "설정이 올바릅니다")
			for _, w := range appConfig.VerifyRecommendations() {
				fmt.Fprintf(out, "[WARN] %s\n", w)
			}
			return nil
		},
	}
}

// loadConfig 경로가 지정되면 해당 파일을, 아니면 기본 설정 파일을 읽습니다.
func loadConfig(configFile string) (*config.AppConfig, error) {
	if configFile == "" {
		return config.Load()
	}
	return config.LoadWithFile(configFile)
}

// runServer 설정과 로그 시스템을 초기화하고, ctx가 취소될 때까지 서비스를 실행합니다.
func runServer(ctx context.Context, out io.Writer, configFile string) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Fprintf(out, banner, buildInfo.Version)

	initFields := applog.Fields(buildInfo.ToMap())
	initFields["env"] = map[bool]string{true: "development", false: "production"}[appConfig.Debug]
	applog.WithComponentAndFields("main", initFields).Info("서버 초기화 시작")

	for _, w := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(w)
	}

	return runServices(ctx, []service.Service{api.NewService(appConfig, buildInfo)})
}

// runServices 모든 서비스를 시작하고, ctx가 취소되면 종료될 때까지 대기합니다.
// 하나라도 시작에 실패하거나 실행 중 예기치 않게 종료되면 나머지 서비스를 종료한 뒤 에러를 반환합니다.
func runServices(ctx context.Context, services []service.Service) error {
	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	serviceStopWG := &sync.WaitGroup{}

	failedC := make(chan error, len(services))

	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			serviceStopWG.Done()
			cancel()
			serviceStopWG.Wait()

			return fmt.Errorf("서비스 초기화 실패: %w", err)
		}

		if n, ok := s.(service.FailureNotifier); ok {
			go forwardFailure(serviceStopCtx, n.Failed(), failedC)
		}
	}

	applog.WithComponent("main").Info("서버 가동 완료")

	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent("main").Info("Shutdown signal received")
		cancel()
		serviceStopWG.Wait()

		return nil

	case err := <-failedC:
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스가 예기치 않게 종료되어 서버를 중지합니다")
		cancel()
		serviceStopWG.Wait()

		return fmt.Errorf("서비스 비정상 종료: %w", err)
	}
}

// forwardFailure 개별 서비스의 실패 알림을 공용 채널로 전달합니다. ctx가 취소되면 종료됩니다.
func forwardFailure(ctx context.Context, src <-chan error, dst chan<- error) {
	select {
	case err := <-src:
		dst <- err
	case <-ctx.Done():
	}
}
