// Package landing 대기자 등록 랜딩 페이지 핸들러를 제공합니다.
//
// 페이지는 서버 시작 시 한 번 렌더링되며, 이메일 입력 폼은 브라우저에서만 동작합니다.
// 제출된 이메일을 받는 서버 측 엔드포인트는 없습니다.
package landing

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Content 랜딩 페이지에 노출되는 문구
type Content struct {
	Title       string
	Headline    string
	Description string
}

// Handler 랜딩 페이지 핸들러
type Handler struct {
	page []byte
}

// New 주어진 문구로 랜딩 페이지를 렌더링하여 Handler를 생성합니다.
// 문구는 HTML 이스케이프 처리됩니다.
func New(content Content) *Handler {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, content); err != nil {
		panic(fmt.Sprintf(constants.PanicMsgLandingTemplateInvalid, err))
	}

	return &Handler{page: buf.Bytes()}
}

// PageHandler 미리 렌더링된 랜딩 페이지를 반환합니다.
func (h *Handler) PageHandler(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, h.page)
}
