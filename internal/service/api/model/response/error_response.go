// Package response API 공통 응답 모델을 정의합니다.
package response

// ErrorResponse API 오류 응답
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드 (예: 404, 405, 500)
	ResultCode int `json:"result_code" example:"405"`

	// Message 에러 메시지
	Message string `json:"message" example:"허용되지 않은 메서드입니다"`
}
