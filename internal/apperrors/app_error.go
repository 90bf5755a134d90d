package apperrors

import (
	"fmt"
	"net/http"
)

// AppError 自定义错误类型
//
// Message 是英文消息 ID，渲染响应时才按请求语言翻译，Args 作为 printf 参数。
type AppError struct {
	Code    int
	Message string
	Args    []any
	Cause   error
}

func (e *AppError) Error() string {
	return e.Localize(nil)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Localize 使用 translate 翻译消息；translate 为 nil 时只做参数格式化
func (e *AppError) Localize(translate func(msgid string, args ...any) string) string {
	if translate != nil {
		return translate(e.Message, e.Args...)
	}
	if len(e.Args) == 0 {
		return e.Message
	}
	return fmt.Sprintf(e.Message, e.Args...)
}

// WithCause 附加底层错误
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithCode 创建通用业务错误
func WithCode(code int, message string, args ...any) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Args:    args,
	}
}

// BusinessError 封装业务逻辑错误（通用）
func BusinessError(code int, message string, args ...any) *AppError {
	return WithCode(code, message, args...)
}

// NotFoundError 封装资源不存在错误
func NotFoundError(message string, args ...any) *AppError {
	return WithCode(http.StatusNotFound, message, args...)
}

// InvalidRequestError 封装参数校验错误
func InvalidRequestError(message string, args ...any) *AppError {
	return WithCode(http.StatusBadRequest, message, args...)
}

// InvalidRequestErrorDefault 默认参数校验错误
func InvalidRequestErrorDefault() *AppError {
	return WithCode(http.StatusBadRequest, "Parameter verification failed")
}

// SystemError 封装系统内部错误
func SystemError(message string, args ...any) *AppError {
	return WithCode(http.StatusInternalServerError, message, args...)
}

// SystemErrorDefault 默认系统内部错误
func SystemErrorDefault() *AppError {
	return WithCode(http.StatusInternalServerError, "System error")
}
