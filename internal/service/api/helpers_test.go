package api

import (
	"bytes"
	"strings"
	"testing"

	applog "github.com/darkkaiser/waitlist-api/pkg/log"
)

// captureLogs 전역 로거의 출력을 JSON 형식으로 버퍼에 기록하고, 테스트 종료 시 원래대로 복구합니다.
// 전역 상태를 변경하므로 이 함수를 사용하는 테스트는 병렬로 실행하지 않는다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	logger := applog.StandardLogger()
	originalOut := logger.Out
	originalFormatter := logger.Formatter
	originalLevel := logger.Level

	buf := new(bytes.Buffer)
	logger.SetOutput(buf)
	logger.SetFormatter(&applog.JSONFormatter{DisableHTMLEscape: true})
	logger.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		logger.SetOutput(originalOut)
		logger.SetFormatter(originalFormatter)
		logger.SetLevel(originalLevel)
	})

	return buf
}

func logLines(buf *bytes.Buffer) []string {
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
