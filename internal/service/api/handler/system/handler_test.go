package system

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"runtime"
	"sync"
	"testing"

	"github.com/darkkaiser/waitlist-api/internal/pkg/version"
	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupSystemHandlerTest(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()

	h := New(version.Info{
		Version:     "1.0.0",
		Commit:      "abc1234",
		BuildDate:   "2026-01-01",
		BuildNumber: "100",
	})

	e := echo.New()
	e.GET("/healthz", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)

	return h, e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

// =============================================================================
// HealthCheckHandler
// =============================================================================

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 200 및 고정 응답", func(t *testing.T) {
		t.Parallel()
		_, e := setupSystemHandlerTest(t)

		rec := serve(e, http.MethodGet, "/healthz")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("성공: 반복 호출 시 항상 동일한 응답", func(t *testing.T) {
		t.Parallel()
		_, e := setupSystemHandlerTest(t)

		for i := 0; i < 100; i++ {
			rec := serve(e, http.MethodGet, "/healthz")
			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, `{"ok":true}`, rec.Body.String())
		}
	})

	t.Run("성공: 쿼리 파라미터와 추가 헤더는 무시", func(t *testing.T) {
		t.Parallel()
		_, e := setupSystemHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/healthz?verbose=1&deep=true", nil)
		req.Header.Set("X-Unexpected", "value")
		req.Header.Set(echo.HeaderAccept, "text/plain")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gjson.Get(rec.Body.String(), "ok").Bool())
	})

	t.Run("성공: 요청 본문은 읽지 않음", func(t *testing.T) {
		t.Parallel()
		_, e := setupSystemHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/healthz", bytes.NewBufferString(`{"ok":false}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("성공: 100개 동시 요청 모두 동일한 응답", func(t *testing.T) {
		t.Parallel()
		_, e := setupSystemHandlerTest(t)

		const concurrency = 100

		var wg sync.WaitGroup
		codes := make([]int, concurrency)
		bodies := make([]string, concurrency)

		for i := 0; i < concurrency; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rec := serve(e, http.MethodGet, "/healthz")
				codes[i] = rec.Code
				bodies[i] = rec.Body.String()
			}(i)
		}
		wg.Wait()

		for i := 0; i < concurrency; i++ {
			assert.Equal(t, http.StatusOK, codes[i])
			assert.JSONEq(t, `{"ok":true}`, bodies[i])
		}
	})

	t.Run("실패: GET 이외의 메서드는 405", func(t *testing.T) {
		t.Parallel()
		_, e := setupSystemHandlerTest(t)

		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
			rec := serve(e, method, "/healthz")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		}
	})

	t.Run("성공: 핸들러 직접 호출 (라우터 없이)", func(t *testing.T) {
		t.Parallel()

		h := New(version.Info{})
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, h.HealthCheckHandler(c))
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})
}

// 전역 로거를 변경하므로 병렬로 실행하지 않는다.
func TestHealthCheckHandler_NoLogging(t *testing.T) {
	logger := applog.StandardLogger()
	originalOut, originalLevel := logger.Out, logger.Level
	t.Cleanup(func() {
		logger.SetOutput(originalOut)
		logger.SetLevel(originalLevel)
	})

	buf := new(bytes.Buffer)
	logger.SetOutput(buf)
	logger.SetLevel(applog.TraceLevel)

	_, e := setupSystemHandlerTest(t)
	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/healthz").Code)
	}

	assert.Empty(t, buf.String(), "생존 확인 요청은 로그를 남기지 않아야 합니다")
}

// =============================================================================
// VersionHandler
// =============================================================================

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	_, e := setupSystemHandlerTest(t)

	rec := serve(e, http.MethodGet, "/version")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, "1.0.0", gjson.Get(body, "version").String())
	assert.Equal(t, "abc1234", gjson.Get(body, "commit").String())
	assert.Equal(t, "2026-01-01", gjson.Get(body, "build_date").String())
	assert.Equal(t, "100", gjson.Get(body, "build_number").String())
	assert.Equal(t, runtime.Version(), gjson.Get(body, "go_version").String())
	assert.Equal(t, runtime.GOOS, gjson.Get(body, "os").String())
	assert.Equal(t, runtime.GOARCH, gjson.Get(body, "arch").String())
}
