package constants

import "time"

// 보안 관련 상수입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	// 이 서비스는 요청 본문을 읽지 않으므로 작게 유지한다.
	DefaultMaxBodySize = "128K"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultHSTSMaxAge TLS 활성화 시 Strict-Transport-Security 헤더의 max-age (1년)
	DefaultHSTSMaxAge = 31536000
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"email",
	"api_key",
	"password",
	"token",
	"secret",
}
