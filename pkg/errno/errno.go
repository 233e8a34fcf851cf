package errno

import (
	"errors"
	"fmt"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// Wrapf 在错误类别上附加细节，errors.Is(err, e) 依然成立
func (e Errno) Wrapf(format string, args ...any) error {
	return &detailError{kind: e, detail: fmt.Sprintf(format, args...)}
}

type detailError struct {
	kind   Errno
	detail string
}

func (d *detailError) Error() string {
	return d.kind.Message + ": " + d.detail
}

func (d *detailError) Unwrap() error {
	return d.kind
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, err.Error()
	}
	return ErrInternal.Code, err.Error()
}

// IsArgument 判断是否为参数校验类错误
func IsArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsState 判断是否为完整性/状态类错误 (例如 MAC 不匹配)
func IsState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// Common Errors
var (
	OK          = Errno{Code: 0, Message: "Success"}
	ErrInternal = Errno{Code: 10001, Message: "Internal error"}
)

// Crypto Errors (40000+)
var (
	ErrInvalidArgument = Errno{Code: 40001, Message: "invalid argument"}
	ErrUnsupported     = Errno{Code: 40501, Message: "unsupported operation"}
	ErrInvalidState    = Errno{Code: 40901, Message: "invalid state"}
)
