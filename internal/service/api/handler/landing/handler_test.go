package landing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, content Content) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	h := New(content)
	e := echo.New()
	e.GET("/", h.PageHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)

	return rec, doc
}

func TestPageHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 설정된 문구로 페이지 렌더링", func(t *testing.T) {
		t.Parallel()

		rec, doc := renderPage(t, Content{
			Title:       "Landing Page",
			Headline:    "Welcome to Our Landing Page",
			Description: "Join our waitlist to stay updated!",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)

		assert.Equal(t, "Landing Page", doc.Find("title").Text())
		assert.Equal(t, "Welcome to Our Landing Page", doc.Find("h1").Text())
		assert.Equal(t, "Join our waitlist to stay updated!", doc.Find("section p").Text())

		desc, ok := doc.Find(`meta[name="description"]`).Attr("content")
		require.True(t, ok)
		assert.Equal(t, "Join our waitlist to stay updated!", desc)
	})

	t.Run("성공: 필수 이메일 입력 폼", func(t *testing.T) {
		t.Parallel()

		_, doc := renderPage(t, Content{Title: "t", Headline: "h"})

		form := doc.Find("form")
		require.Equal(t, 1, form.Length())

		// 폼은 서버로 제출되지 않는다.
		_, hasAction := form.Attr("action")
		assert.False(t, hasAction)

		email := form.Find(`input[type="email"]`)
		require.Equal(t, 1, email.Length())
		_, required := email.Attr("required")
		assert.True(t, required)

		assert.Equal(t, "Join Waitlist", strings.TrimSpace(form.Find(`button[type="submit"]`).Text()))
	})

	t.Run("성공: 문구는 HTML 이스케이프 처리", func(t *testing.T) {
		t.Parallel()

		rec, doc := renderPage(t, Content{
			Title:    "t",
			Headline: `<script>alert("x")</script>`,
		})

		assert.NotContains(t, rec.Body.String(), `<script>alert`)
		assert.Equal(t, `<script>alert("x")</script>`, doc.Find("h1").Text())
		assert.Equal(t, 0, doc.Find("section script").Length())
	})

	t.Run("성공: 반복 요청 시 동일한 페이지", func(t *testing.T) {
		t.Parallel()

		h := New(Content{Title: "t", Headline: "h"})
		e := echo.New()
		e.GET("/", h.PageHandler)

		var first string
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if i == 0 {
				first = rec.Body.String()
			}
			assert.Equal(t, first, rec.Body.String())
		}
	})
}
