package constants

import "time"

// HTTP 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout 요청 처리 제한 시간 (60초)
	// 설정값이 없는 경우 이 값이 적용되며, 초과 시 요청 컨텍스트가 취소됩니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 순간 최대 허용 요청 수
	DefaultRateLimitBurst = 40

	// DefaultReadTimeout 요청 전체(헤더+본문) 읽기 제한 시간
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한 시간
	// 요청 처리 제한 시간보다 길어야 타임아웃 응답을 클라이언트에 전달할 수 있다.
	DefaultWriteTimeout = 65 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 유휴 제한 시간
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)
