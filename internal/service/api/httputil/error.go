package httputil

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/waitlist-api/internal/pkg/errors"
	"github.com/darkkaiser/waitlist-api/internal/service/api/constants"
	"github.com/darkkaiser/waitlist-api/internal/service/api/model/response"
	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultMessages Echo 프레임워크가 생성하는 기본 에러를 한국어 메시지로 바꾸기 위한 테이블입니다.
var defaultMessages = map[int]string{
	http.StatusNotFound:              constants.ErrMsgNotFound,
	http.StatusMethodNotAllowed:      constants.ErrMsgMethodNotAllowed,
	http.StatusRequestEntityTooLarge: constants.ErrMsgRequestEntityTooLarge,
	http.StatusTooManyRequests:       constants.ErrMsgTooManyRequests,
	http.StatusServiceUnavailable:    constants.ErrMsgServiceUnavailable,
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 5xx는 Error, 4xx는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		fields["error_type"] = appErr.Type().String()
		if origin := errorOrigin(err); origin != "" {
			fields["error_origin"] = origin
		}
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 이중 응답을 시도하지 않는다.
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 본문 없이 상태 코드만 반환
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러로부터 응답 상태 코드와 메시지를 결정합니다.
func resolve(err error) (int, string) {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return resolveAppError(err)
	}

	// 애플리케이션이 직접 만든 에러는 메시지를 그대로 사용한다.
	if resp, ok := he.Message.(response.ErrorResponse); ok {
		return he.Code, resp.Message
	}

	if msg, ok := defaultMessages[he.Code]; ok {
		return he.Code, msg
	}

	if msg, ok := he.Message.(string); ok && msg != "" {
		return he.Code, msg
	}

	if text := http.StatusText(he.Code); text != "" {
		return he.Code, text
	}

	return he.Code, constants.ErrMsgInternalServer
}

// appErrorStatus AppError의 근본 ErrorType을 HTTP 상태 코드로 변환하는 테이블입니다.
var appErrorStatus = map[apperrors.ErrorType]int{
	apperrors.InvalidInput: http.StatusBadRequest,
	apperrors.NotFound:     http.StatusNotFound,
	apperrors.Unavailable:  http.StatusServiceUnavailable,
}

// resolveAppError echo.HTTPError가 아닌 에러의 상태 코드와 메시지를 결정합니다.
//
// 상태 코드는 에러 체인의 가장 안쪽 AppError 분류를 따르고, 메시지는 가장 바깥쪽 AppError의 메시지를 사용합니다.
// 5xx 응답에는 내부 메시지를 노출하지 않는다.
func resolveAppError(err error) (int, string) {
	code, ok := appErrorStatus[apperrors.UnderlyingType(err)]
	if !ok {
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}

	var appErr *apperrors.AppError
	if code < http.StatusInternalServerError && apperrors.As(err, &appErr) && appErr.Message() != "" {
		return code, appErr.Message()
	}

	if msg, ok := defaultMessages[code]; ok {
		return code, msg
	}
	return code, http.StatusText(code)
}

// errorOrigin AppError가 생성된 위치("파일:라인")를 반환합니다. AppError가 아니면 빈 문자열을 반환합니다.
func errorOrigin(err error) string {
	var appErr *apperrors.AppError
	if !apperrors.As(err, &appErr) || len(appErr.Stack()) == 0 {
		return ""
	}

	frame := appErr.Stack()[0]
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}
