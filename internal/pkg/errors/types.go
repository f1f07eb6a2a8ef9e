package errors

import "strconv"

// ErrorType 에러의 성격을 분류하는 타입입니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 잘못된 상태 등)
	Internal

	// System 시스템 또는 인프라 오류 (파일, 네트워크, 리스너 등)
	System

	// InvalidInput 입력값 또는 설정값 검증 실패
	InvalidInput

	// NotFound 요청한 리소스를 찾을 수 없음
	NotFound

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)

var errorTypeNames = map[ErrorType]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	InvalidInput: "InvalidInput",
	NotFound:     "NotFound",
	Unavailable:  "Unavailable",
}

func (t ErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}
	return "ErrorType(" + strconv.Itoa(int(t)) + ")"
}
