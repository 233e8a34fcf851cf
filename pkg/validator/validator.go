package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"wallet-keycore/pkg/errno"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Get 返回进程内共享的校验器 (只读，可并发使用)
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct 校验结构体，失败时返回 errno.ErrInvalidArgument
func Struct(s any) error {
	if err := Get().Struct(s); err != nil {
		return errno.ErrInvalidArgument.Wrapf("%s", GetErrorMsg(err))
	}
	return nil
}

// GetErrorMsg translates validation errors into user-friendly messages
func GetErrorMsg(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var errMsgs []string
		for _, e := range validationErrors {
			field := e.Namespace()
			tag := e.Tag()
			param := e.Param()

			switch tag {
			case "required":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不能为空", field))
			case "len":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 长度必须为 %s", field, param))
			case "min", "gte":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 至少为 %s", field, param))
			case "max", "lte":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不能超过 %s", field, param))
			case "gt":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须大于 %s", field, param))
			case "eq":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须等于 %s", field, param))
			case "oneof":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 [%s] 之一", field, param))
			case "hexadecimal":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是十六进制字符串", field))
			case "uuid":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 UUID", field))
			default:
				errMsgs = append(errMsgs, fmt.Sprintf("%s 校验失败 (%s)", field, tag))
			}
		}
		return strings.Join(errMsgs, "; ")
	}
	return "请求参数错误"
}
