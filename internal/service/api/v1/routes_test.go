package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/darkkaiser/waitlist-api/internal/pkg/version"
	"github.com/darkkaiser/waitlist-api/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func setupTestServer() *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, system.New(version.Info{Version: "test"}))
	return e
}

// =============================================================================
// Route Registration
// =============================================================================

func TestRegisterRoutes_RouteRegistration(t *testing.T) {
	t.Parallel()

	e := setupTestServer()

	tests := []struct {
		name        string
		method      string
		path        string
		shouldExist bool
	}{
		{"Ping GET 등록 확인", http.MethodGet, "/v1/ping", true},
		{"Ping POST 미지원", http.MethodPost, "/v1/ping", false},
		{"Healthz는 v1 그룹에 속하지 않음", http.MethodGet, "/v1/healthz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, r := range e.Routes() {
				if r.Method == tt.method && r.Path == tt.path {
					found = true
					break
				}
			}
			assert.Equal(t, tt.shouldExist, found)
		})
	}
}

// =============================================================================
// Ping
// =============================================================================

func TestPing(t *testing.T) {
	t.Parallel()

	e := setupTestServer()

	t.Run("성공: 반복 호출 시 항상 200 및 ok=true", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, gjson.Get(rec.Body.String(), "ok").Bool())
			assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
		}
	})

	t.Run("성공: 동시 호출 100건 모두 동일한 응답", func(t *testing.T) {
		const n = 100

		var wg sync.WaitGroup
		codes := make([]int, n)
		bodies := make([]string, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
				codes[i] = rec.Code
				bodies[i] = strings.TrimSpace(rec.Body.String())
			}(i)
		}
		wg.Wait()

		for i := 0; i < n; i++ {
			assert.Equal(t, http.StatusOK, codes[i])
			assert.Equal(t, `{"ok":true}`, bodies[i])
		}
	})

	t.Run("실패: GET 이외의 메서드는 405", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/ping", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
