package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/waitlist-api/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	certFile := filepath.Join(t.TempDir(), "server.crt")
	require.NoError(t, os.WriteFile(certFile, []byte("cert"), 0o600))

	tests := []struct {
		name        string
		modify      func(c *AppConfig)
		errContains string
	}{
		{
			name:   "성공: 기본 설정",
			modify: func(c *AppConfig) {},
		},
		{
			name: "성공: TLS 활성화 및 파일 존재",
			modify: func(c *AppConfig) {
				c.HTTPAPI.WS.TLSServer = true
				c.HTTPAPI.WS.TLSCertFile = certFile
				c.HTTPAPI.WS.TLSKeyFile = certFile
			},
		},
		{
			name: "성공: 랜딩 페이지 비활성화 시 문구 생략 가능",
			modify: func(c *AppConfig) {
				c.Landing = LandingConfig{Enabled: false}
			},
		},
		{
			name:        "실패: 포트 0",
			modify:      func(c *AppConfig) { c.HTTPAPI.WS.ListenPort = 0 },
			errContains: "listen_port",
		},
		{
			name:        "실패: TLS 활성화 시 인증서 누락",
			modify:      func(c *AppConfig) { c.HTTPAPI.WS.TLSServer = true },
			errContains: "tls_cert_file",
		},
		{
			name: "실패: TLS 키 파일이 존재하지 않음",
			modify: func(c *AppConfig) {
				c.HTTPAPI.WS.TLSServer = true
				c.HTTPAPI.WS.TLSCertFile = certFile
				c.HTTPAPI.WS.TLSKeyFile = filepath.Join(t.TempDir(), "missing.key")
			},
			errContains: "tls_key_file",
		},
		{
			name:        "실패: CORS 목록 비어있음",
			modify:      func(c *AppConfig) { c.HTTPAPI.CORS.AllowOrigins = nil },
			errContains: "allow_origins",
		},
		{
			name:        "실패: 와일드카드와 도메인 혼용",
			modify:      func(c *AppConfig) { c.HTTPAPI.CORS.AllowOrigins = []string{"*", "https://example.com"} },
			errContains: "와일드카드",
		},
		{
			name:        "실패: 잘못된 CORS Origin",
			modify:      func(c *AppConfig) { c.HTTPAPI.CORS.AllowOrigins = []string{"https://example.com/path"} },
			errContains: "https://example.com/path",
		},
		{
			name:        "실패: 초당 요청 수 0",
			modify:      func(c *AppConfig) { c.HTTPAPI.RateLimit.RequestsPerSecond = 0 },
			errContains: "requests_per_second",
		},
		{
			name:        "실패: 버스트 음수",
			modify:      func(c *AppConfig) { c.HTTPAPI.RateLimit.Burst = -1 },
			errContains: "burst",
		},
		{
			name:        "실패: 요청 제한 시간 0",
			modify:      func(c *AppConfig) { c.HTTPAPI.RequestTimeout = 0 },
			errContains: "request_timeout",
		},
		{
			name:        "실패: 랜딩 페이지 활성화 시 제목 누락",
			modify:      func(c *AppConfig) { c.Landing.Title = "" },
			errContains: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newDefaultConfig()
			tt.modify(&cfg)

			err := cfg.validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("운영 환경의 와일드카드 CORS 경고", func(t *testing.T) {
		t.Parallel()

		cfg := newDefaultConfig()
		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "CORS")
	})

	t.Run("디버그 모드에서는 CORS 경고를 생략한다", func(t *testing.T) {
		t.Parallel()

		cfg := newDefaultConfig()
		cfg.Debug = true
		assert.Empty(t, cfg.VerifyRecommendations())
	})

	t.Run("시스템 예약 포트 경고", func(t *testing.T) {
		t.Parallel()

		cfg := newDefaultConfig()
		cfg.HTTPAPI.WS.ListenPort = 80
		cfg.HTTPAPI.CORS.AllowOrigins = []string{"https://example.com"}

		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "port: 80")
	})

	t.Run("권장 설정 준수", func(t *testing.T) {
		t.Parallel()

		cfg := newDefaultConfig()
		cfg.HTTPAPI.CORS.AllowOrigins = []string{"https://example.com"}
		cfg.HTTPAPI.RequestTimeout = 30 * time.Second
		assert.Empty(t, cfg.VerifyRecommendations())
	})
}
