// file: services/errors.go
package services

import (
	"fmt"
)

// ErrorKind 服务层错误分类，控制器据此映射响应码
type ErrorKind int

const (
	ErrInternal ErrorKind = iota
	ErrNotFound
	ErrInvalidScope
	ErrMissingParameter
	ErrInvalidParticipant
	ErrValidation
)

// ServiceError 带分类和出错字段的服务层错误
type ServiceError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ServiceError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func notFound(msg string) *ServiceError {
	return &ServiceError{Kind: ErrNotFound, Message: msg}
}

func invalidScope(value string) *ServiceError {
	return &ServiceError{Kind: ErrInvalidScope, Field: "scope", Message: "无效的作用域: " + value}
}

func missingParameter(field string) *ServiceError {
	return &ServiceError{Kind: ErrMissingParameter, Field: field, Message: "缺少必填参数"}
}

func invalidParticipant(ref string) *ServiceError {
	return &ServiceError{Kind: ErrInvalidParticipant, Field: "participant_id", Message: "参与者不存在: " + ref}
}

func validation(field, msg string) *ServiceError {
	return &ServiceError{Kind: ErrValidation, Field: field, Message: msg}
}

func internalError(msg string) *ServiceError {
	return &ServiceError{Kind: ErrInternal, Message: msg}
}
