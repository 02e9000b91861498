package errutil

import "errors"

// 比較可能な値なので errors.Is でそのまま判定できる
type InternalError struct {
	err error
}

func NewInternalError(msg string) InternalError {
	return InternalError{err: errors.New(msg)}
}

func (e InternalError) Error() string {
	return e.err.Error()
}
