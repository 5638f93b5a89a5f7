package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType 错误类型
type ErrorType uint

const (
	// ErrorTypeNormal 普通错误
	ErrorTypeNormal ErrorType = iota
	// ErrorTypeValidation 参数校验错误
	ErrorTypeValidation
	// ErrorTypeInvalidFormat 坐标文本无法识别
	ErrorTypeInvalidFormat
	// ErrorTypeNotFound 未找到
	ErrorTypeNotFound
	// ErrorTypeInternal 内部错误
	ErrorTypeInternal
)

// AppError 应用错误
type AppError struct {
	// Type 错误类型，errors.Is 按类型匹配
	Type ErrorType
	// Code 错误代码
	Code string
	// Message 错误消息
	Message string
	// Err 原始错误
	Err error
	// Fields 相关字段，例如无法解析的原始输入
	Fields map[string]interface{}
}

// 用于 errors.Is 的哨兵错误
var (
	ErrValidation    = &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_ERROR", Message: "validation failed"}
	ErrInvalidFormat = &AppError{Type: ErrorTypeInvalidFormat, Code: "INVALID_FORMAT", Message: "invalid coordinate format"}
	ErrNotFound      = &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND", Message: "not found"}
	ErrInternal      = &AppError{Type: ErrorTypeInternal, Code: "INTERNAL_ERROR", Message: "internal error"}
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 同类型的 AppError 视为相等
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// StatusCode 返回对应的HTTP状态码
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeInvalidFormat:
		return http.StatusUnprocessableEntity
	case ErrorTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WithField 添加字段信息，返回同一个错误以便链式调用
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// Field 读取字段信息
func (e *AppError) Field(key string) (interface{}, bool) {
	v, ok := e.Fields[key]
	return v, ok
}

// Response 生成错误响应
func (e *AppError) Response() map[string]interface{} {
	resp := map[string]interface{}{
		"code":    e.Code,
		"message": e.Message,
		"status":  e.StatusCode(),
	}
	if len(e.Fields) > 0 {
		resp["details"] = e.Fields
	}
	if e.Err != nil && ErrorDebugMode {
		resp["error"] = e.Err.Error()
	}
	return resp
}

// NewAppError 创建应用错误
func NewAppError(errType ErrorType, code string, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ToAppError 将普通错误转换为AppError
func ToAppError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return NewAppError(ErrorTypeNormal, "UNKNOWN", err.Error(), err)
}

// ErrorDebugMode 开启后错误响应中带上原始错误
var ErrorDebugMode bool = false

// NewValidationError 创建参数校验错误
func NewValidationError(message string, err error) *AppError {
	return NewAppError(ErrorTypeValidation, "VALIDATION_ERROR", message, err)
}

// NewInvalidFormatError 创建坐标格式错误
func NewInvalidFormatError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInvalidFormat, "INVALID_FORMAT", message, err)
}

// NewNotFoundError 创建未找到错误
func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(ErrorTypeNotFound, "NOT_FOUND", message, err)
}

// NewInternalError 创建内部错误
func NewInternalError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInternal, "INTERNAL_ERROR", message, err)
}
