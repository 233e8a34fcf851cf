package crypto_util

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"wallet-keycore/pkg/errno"
)

// HmacVariant 选择 PBKDF2 的底层 HMAC
type HmacVariant int

const (
	HmacSHA256Variant HmacVariant = iota
	HmacSHA512Variant
)

func (v HmacVariant) String() string {
	switch v {
	case HmacSHA256Variant:
		return "hmac-sha256"
	case HmacSHA512Variant:
		return "hmac-sha512"
	default:
		return "unknown"
	}
}

func (v HmacVariant) newHash() (func() hash.Hash, error) {
	switch v {
	case HmacSHA256Variant:
		return sha256.New, nil
	case HmacSHA512Variant:
		return sha512.New, nil
	default:
		return nil, errno.ErrInvalidArgument.Wrapf("unknown hmac variant %d", int(v))
	}
}

// PBKDF2 通过迭代 HMAC 将密码拉伸为 dkLen 字节。
func PBKDF2(password, salt []byte, iterations, dkLen int, variant HmacVariant) ([]byte, error) {
	if iterations < 1 {
		return nil, errno.ErrInvalidArgument.Wrapf("pbkdf2 iterations must be positive, got %d", iterations)
	}
	if dkLen < 1 {
		return nil, errno.ErrInvalidArgument.Wrapf("pbkdf2 dkLen must be positive, got %d", dkLen)
	}
	h, err := variant.newHash()
	if err != nil {
		return nil, err
	}
	return pbkdf2.Key(password, salt, iterations, dkLen, h), nil
}

// Scrypt 是内存困难型 KDF。N 必须是大于 1 的 2 的幂，r*p 必须小于 2^30。
func Scrypt(password, salt []byte, n, r, p, dkLen int) ([]byte, error) {
	if n <= 1 || n&(n-1) != 0 {
		return nil, errno.ErrInvalidArgument.Wrapf("scrypt N must be a power of two greater than 1, got %d", n)
	}
	if r < 1 || p < 1 || uint64(r)*uint64(p) >= 1<<30 {
		return nil, errno.ErrInvalidArgument.Wrapf("scrypt parameters r=%d p=%d out of range", r, p)
	}
	if dkLen < 1 {
		return nil, errno.ErrInvalidArgument.Wrapf("scrypt dkLen must be positive, got %d", dkLen)
	}
	key, err := scrypt.Key(password, salt, n, r, p, dkLen)
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("scrypt: %v", err)
	}
	return key, nil
}
