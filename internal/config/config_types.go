package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/waitlist-api/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultListenPort 웹 서버 기본 포트입니다.
	DefaultListenPort = 3000

	// DefaultRequestsPerSecond IP별 초당 허용 요청 수 기본값입니다.
	DefaultRequestsPerSecond = 20

	// DefaultBurst IP별 순간 최대 허용 요청 수 기본값입니다.
	DefaultBurst = 40

	// DefaultRequestTimeout 요청 처리 제한 시간 기본값입니다.
	DefaultRequestTimeout = 60 * time.Second
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug   bool          `json:"debug"`
	HTTPAPI HTTPAPIConfig `json:"http_api"`
	Landing LandingConfig `json:"landing"`
}

// newDefaultConfig 설정 파일과 환경 변수가 모두 비어있을 때 적용되는 기본 설정을 생성합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		HTTPAPI: HTTPAPIConfig{
			WS: WSConfig{
				ListenPort: DefaultListenPort,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRequestsPerSecond,
				Burst:             DefaultBurst,
			},
			RequestTimeout: DefaultRequestTimeout,
		},
		Landing: LandingConfig{
			Enabled:     true,
			Title:       "Landing Page",
			Headline:    "Welcome to Our Landing Page",
			Description: "Join our waitlist to stay updated!",
		},
	}
}

// validate 설정 로드 직후 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.HTTPAPI.validate(); err != nil {
		return err
	}

	return c.Landing.validate()
}

// VerifyRecommendations 운영 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 에러를 발생시키지는 않으며, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	warnings = append(warnings, c.HTTPAPI.WS.VerifyRecommendations()...)
	if !c.Debug {
		warnings = append(warnings, c.HTTPAPI.CORS.VerifyRecommendations()...)
	}

	return warnings
}

// HTTPAPIConfig REST API 서버 설정 구조체
type HTTPAPIConfig struct {
	WS             WSConfig        `json:"ws"`
	CORS           CORSConfig      `json:"cors"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
	RequestTimeout time.Duration   `json:"request_timeout"`
}

func (c *HTTPAPIConfig) validate() error {
	if err := c.WS.validate(); err != nil {
		return err
	}

	if err := c.CORS.validate(); err != nil {
		return err
	}

	if err := c.RateLimit.validate(); err != nil {
		return err
	}

	if c.RequestTimeout <= 0 {
		return apperrors.Newf(apperrors.InvalidInput, "요청 처리 제한 시간(request_timeout)은 0보다 커야 합니다: '%s'", c.RequestTimeout)
	}

	return nil
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		// Validator 에러를 사용자 친화적인 메시지로 변환한다.
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				switch fieldErr.StructField() {
				case "ListenPort":
					return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
				case "TLSCertFile":
					return tlsFileError(fieldErr, "인증서 파일", "tls_cert_file")
				case "TLSKeyFile":
					return tlsFileError(fieldErr, "키 파일", "tls_key_file")
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "웹 서버 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return nil
}

func tlsFileError(fieldErr validator.FieldError, label, key string) error {
	switch fieldErr.Tag() {
	case "required_if":
		return apperrors.Newf(apperrors.InvalidInput, "TLS 서버 활성화 시 %s 경로(%s)는 필수입니다", label, key)
	case "file":
		return apperrors.Newf(apperrors.InvalidInput, "지정된 TLS %s(%s)을 찾을 수 없습니다: '%v'", label, key, fieldErr.Value())
	default:
		return apperrors.Newf(apperrors.InvalidInput, "TLS %s 경로(%s) 설정이 올바르지 않습니다", label, key)
	}
}

func (c *WSConfig) VerifyRecommendations() []string {
	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		return []string{fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort)}
	}

	return nil
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	if c.allowsAll() && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}

	if err := validate.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				if fieldErr.Tag() == "cors_origin" {
					return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value())
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return nil
}

func (c *CORSConfig) allowsAll() bool {
	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *CORSConfig) VerifyRecommendations() []string {
	if c.allowsAll() {
		return []string{"운영 환경에서 모든 출처(*)의 CORS 요청을 허용하도록 설정되었습니다. 랜딩 페이지 도메인만 허용하는 것을 권장합니다"}
	}
	return nil
}

// RateLimitConfig IP별 요청 속도 제한 설정 구조체
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"gt=0"`
	Burst             int `json:"burst" validate:"gt=0"`
}

func (c *RateLimitConfig) validate() error {
	return checkStruct(validate, c, "HTTP API 속도 제한(rate_limit)")
}

// LandingConfig 대기자 등록 랜딩 페이지의 노출 여부와 문구를 정의하는 구조체
type LandingConfig struct {
	Enabled     bool   `json:"enabled"`
	Title       string `json:"title" validate:"required_if=Enabled true"`
	Headline    string `json:"headline" validate:"required_if=Enabled true"`
	Description string `json:"description"`
}

func (c *LandingConfig) validate() error {
	return checkStruct(validate, c, "랜딩 페이지(landing)")
}
