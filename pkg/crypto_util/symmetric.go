package crypto_util

import (
	"crypto/aes"
	"crypto/cipher"

	"wallet-keycore/pkg/errno"
)

const (
	AES128KeySize = 16
	AESIVSize     = aes.BlockSize
)

// AES128CTR 使用 AES-128-CTR 处理数据。CTR 模式下加密与解密是同一操作，
// 输出长度等于输入长度，没有填充。
func AES128CTR(key, iv, data []byte) ([]byte, error) {
	if len(key) != AES128KeySize {
		return nil, errno.ErrInvalidArgument.Wrapf("aes-128-ctr key must be %d bytes, got %d", AES128KeySize, len(key))
	}
	if len(iv) != AESIVSize {
		return nil, errno.ErrInvalidArgument.Wrapf("aes-128-ctr iv must be %d bytes, got %d", AESIVSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)
	return out, nil
}

// EncryptAES128CTR 加密明文
func EncryptAES128CTR(key, iv, plaintext []byte) ([]byte, error) {
	return AES128CTR(key, iv, plaintext)
}

// DecryptAES128CTR 解密密文
func DecryptAES128CTR(key, iv, ciphertext []byte) ([]byte, error) {
	return AES128CTR(key, iv, ciphertext)
}
