package keystore

import (
	"time"

	"wallet-keycore/pkg/crypto_util"
	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/monitor"
)

const (
	KDFScrypt = "scrypt"
	KDFPBKDF2 = "pbkdf2"

	// PRFHmacSHA256 Keystore V3 中 pbkdf2 唯一允许的 prf
	PRFHmacSHA256 = "hmac-sha256"

	// DKLen 派生密钥长度: 前 16 字节为 AES key，后 16 字节参与 MAC
	DKLen = 32
)

// KDFParams KDF 参数，只有 ScryptParams 与 PBKDF2Params 两种实现
type KDFParams interface {
	// Name 返回 JSON 中 crypto.kdf 字段的值
	Name() string
	deriveKey(password []byte) ([]byte, error)
}

// ScryptParams crypto.kdfparams (kdf = "scrypt")
type ScryptParams struct {
	N     int
	R     int
	P     int
	DKLen int
	Salt  []byte
}

// PBKDF2Params crypto.kdfparams (kdf = "pbkdf2")
type PBKDF2Params struct {
	C     int
	DKLen int
	PRF   string
	Salt  []byte
}

var (
	_ KDFParams = (*ScryptParams)(nil)
	_ KDFParams = (*PBKDF2Params)(nil)
)

func (*ScryptParams) Name() string { return KDFScrypt }
func (*PBKDF2Params) Name() string { return KDFPBKDF2 }

func (p *ScryptParams) deriveKey(password []byte) ([]byte, error) {
	if p.DKLen != DKLen {
		return nil, errno.ErrInvalidArgument.Wrapf("scrypt dklen must be %d, got %d", DKLen, p.DKLen)
	}
	defer monitor.ObserveKDF(KDFScrypt, time.Now())
	return crypto_util.Scrypt(password, p.Salt, p.N, p.R, p.P, p.DKLen)
}

func (p *PBKDF2Params) deriveKey(password []byte) ([]byte, error) {
	if p.DKLen != DKLen {
		return nil, errno.ErrInvalidArgument.Wrapf("pbkdf2 dklen must be %d, got %d", DKLen, p.DKLen)
	}
	if p.PRF != PRFHmacSHA256 {
		return nil, errno.ErrUnsupported.Wrapf("pbkdf2 prf %q", p.PRF)
	}
	defer monitor.ObserveKDF(KDFPBKDF2, time.Now())
	return crypto_util.PBKDF2(password, p.Salt, p.C, p.DKLen, crypto_util.HmacSHA256Variant)
}
