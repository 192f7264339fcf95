package service

import (
	"ExerciseTracker/internal/pkg/consts"
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrUserNotFound    = errors.New(consts.MsgUserNotFound)
	ErrParamInvalid    = errors.New(consts.MsgBadRequest)
	ErrInternalServer  = errors.New(consts.MsgInternalServerError)
	ErrInternalService = errors.New(consts.MsgInternalServiceErr)
)

// ErrorMap 可直接返回给调用方的错误，其余一律按存储失败处理
var ErrorMap = map[error]int{
	ErrUserNotFound: NotFound,
	ErrParamInvalid: BadRequest,
}
