package main

import (
	"os"
)

// @title Waitlist API
// @version 1.0.0
// @description 대기자 등록 랜딩 페이지와 프로세스 생존 확인 엔드포인트를 제공하는 서버의 REST API입니다.
// @description
// @description ## 생존 확인
// @description - GET /healthz: 오케스트레이터/로드밸런서용 생존 확인
// @description - GET /v1/ping: 버전 API 경로의 생존 확인 (동일한 응답)
// @description
// @description 두 엔드포인트 모두 인증이 필요 없으며 항상 200 {"ok": true}를 반환합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
