package httputil

import (
	"net/http"

	"github.com/darkkaiser/waitlist-api/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewHTTPError 표준 ErrorResponse를 담은 Echo HTTPError를 생성합니다.
func NewHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return NewHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return NewHTTPError(http.StatusInternalServerError, message)
}
