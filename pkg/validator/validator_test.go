package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wallet-keycore/pkg/errno"
)

type sample struct {
	ID   string `validate:"required,uuid"`
	Salt string `validate:"required,hexadecimal"`
	IV   string `validate:"len=32"`
	KDF  string `validate:"oneof=scrypt pbkdf2"`
}

func TestStruct(t *testing.T) {
	ok := sample{
		ID:   "3198bc9c-6672-5ab3-d995-4942343ae5b6",
		Salt: "ab0c7876",
		IV:   "83dbcc02d8ccb40e466191a123791e0e",
		KDF:  "scrypt",
	}
	assert.NoError(t, Struct(ok))

	bad := sample{ID: "nope", Salt: "zz", IV: "00", KDF: "argon2"}
	err := Struct(bad)
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	msg := err.Error()
	for _, want := range []string{"sample.ID 必须是 UUID", "sample.Salt 必须是十六进制字符串", "sample.IV 长度必须为 32", "sample.KDF 必须是 [scrypt pbkdf2] 之一"} {
		assert.True(t, strings.Contains(msg, want), "缺少: %s\n实际: %s", want, msg)
	}
}

func TestGetErrorMsgFallback(t *testing.T) {
	assert.Equal(t, "请求参数错误", GetErrorMsg(assert.AnError))
}
