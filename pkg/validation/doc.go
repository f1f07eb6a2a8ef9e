// Package validation 네트워크 관련 설정값(CORS Origin, 포트, 호스트명)의 형식을 검증합니다.
package validation
