package constants

// 라우트 경로 상수입니다.
const (
	// PathLanding 대기자 등록 랜딩 페이지
	PathLanding = "/"

	// PathHealthz 프로세스 생존 확인(liveness) 엔드포인트
	PathHealthz = "/healthz"

	// PathVersion 빌드 정보 엔드포인트
	PathVersion = "/version"

	// PathSwagger Swagger UI 엔드포인트
	PathSwagger = "/swagger/*"

	// PathSwaggerDoc Swagger 문서 JSON 위치
	PathSwaggerDoc = "/swagger/doc.json"

	// GroupV1 v1 API 그룹 접두사
	GroupV1 = "/v1"

	// PathV1Ping v1 그룹 내 생존 확인 엔드포인트 (전체 경로: /v1/ping)
	PathV1Ping = "/ping"
)

// LivenessPaths 오케스트레이터나 로드밸런서가 주기적으로 호출하는 생존 확인 경로 목록입니다.
// 접근 로그와 속도 제한 대상에서 제외됩니다.
var LivenessPaths = []string{
	PathHealthz,
	GroupV1 + PathV1Ping,
}
