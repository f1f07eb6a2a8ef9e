// Package httputil Echo 전역 에러 핸들러와 표준 에러 응답 생성 함수를 제공합니다.
package httputil
