package crypto_util

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// 摘要长度 (字节)
const (
	SHA256Size    = sha256.Size
	SHA512Size    = sha512.Size
	Keccak256Size = 32
	RIPEMD160Size = ripemd160.Size
	Hash160Size   = RIPEMD160Size
	Blake3Size    = 32
)

// SHA256 计算输入的 SHA-256 摘要 (32 字节)。
func SHA256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// DoubleSHA256 计算 SHA256(SHA256(data))，比特币校验和使用。
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// SHA512 计算输入的 SHA-512 摘要 (64 字节)。
func SHA512(data []byte) []byte {
	h := sha512.Sum512(data)
	return h[:]
}

// Keccak256 计算以太坊使用的 Keccak-256 (非 NIST SHA3-256)。
// 多个参数按顺序拼接后计算。
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// RIPEMD160 计算输入的 RIPEMD-160 摘要 (20 字节)。
func RIPEMD160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)
}

// Hash160 = RIPEMD160(SHA256(data))，比特币地址与 BIP-32 指纹使用。
func Hash160(data []byte) []byte {
	return RIPEMD160(SHA256(data))
}

// Blake3 计算 32 字节的 BLAKE3 摘要。
func Blake3(data []byte) []byte {
	h := blake3.Sum256(data)
	return h[:]
}

// HmacSHA256 计算 HMAC-SHA256(key, message)。
func HmacSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// HmacSHA512 计算 HMAC-SHA512(key, message)，BIP-32 / SLIP-0010 派生使用。
func HmacSHA512(key, message []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
