// Package system 시스템 엔드포인트의 응답 모델을 정의합니다.
package system

// HealthStatus 프로세스 생존 확인 응답
//
// 요청마다 새로 생성되며, 응답을 받았다는 사실 자체가 프로세스가 요청을 처리할 수 있다는 신호입니다.
type HealthStatus struct {
	// 요청 처리 가능 여부 (항상 true)
	OK bool `json:"ok" example:"true"`
}
