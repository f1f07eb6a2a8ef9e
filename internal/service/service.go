// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 컨텍스트 취소로 종료되는 백그라운드 서비스입니다.
//
// Start는 즉시 반환해야 하며, 서비스가 완전히 종료되면 serviceStopWG.Done()을 호출해야 합니다.
// 에러를 반환한 경우에는 호출자가 serviceStopWG.Done()을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}

// FailureNotifier 실행 중 스스로 종료될 수 있는 서비스가 구현합니다.
//
// Failed 채널은 서비스가 종료 신호 없이 멈춘 경우 그 원인을 전달합니다.
type FailureNotifier interface {
	Failed() <-chan error
}
