// Package keystore 实现 Ethereum Keystore V3 加密私钥格式。
//
// 派生密钥 dk (32 字节) 由 scrypt 或 pbkdf2-hmac-sha256 得到，dk[0:16] 作为
// AES-128-CTR 密钥，MAC = keccak256(dk[16:32] || ciphertext)。
// 解密时先校验 MAC，校验通过才返回明文。
package keystore

import (
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wallet-keycore/pkg/address"
	"wallet-keycore/pkg/crypto_util"
	"wallet-keycore/pkg/curve"
	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/logger"
	"wallet-keycore/pkg/monitor"
	"wallet-keycore/pkg/safe_random"
)

const (
	PrivateKeySize = 32
	saltSize       = 32
)

// ErrMACMismatch 密码错误或数据被篡改
var ErrMACMismatch = fmt.Errorf("%w: 密码错误或数据损坏 (MAC 不匹配)", errno.ErrInvalidState)

// Options 加密参数。UseScrypt 为 false 时使用 pbkdf2 (Iterations 次)。
type Options struct {
	UseScrypt  bool
	N          int
	R          int
	P          int
	Iterations int
}

var (
	// StandardScrypt geth 默认强度 (约 256MB 内存)
	StandardScrypt = Options{UseScrypt: true, N: 1 << 18, R: 8, P: 1}
	// LightScrypt 移动端强度
	LightScrypt = Options{UseScrypt: true, N: 1 << 12, R: 8, P: 6}
	// PBKDF2 使用 hmac-sha256
	PBKDF2 = Options{Iterations: 262144}
)

func (o Options) newKDF(salt []byte) KDFParams {
	if o.UseScrypt {
		return &ScryptParams{N: o.N, R: o.R, P: o.P, DKLen: DKLen, Salt: salt}
	}
	return &PBKDF2Params{C: o.Iterations, DKLen: DKLen, PRF: PRFHmacSHA256, Salt: salt}
}

// Encrypt 使用密码加密 32 字节私钥。
// 私钥同时是合法的 secp256k1 私钥时写入 address 字段。
func Encrypt(privateKey []byte, password string, opts Options) (*Document, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, errno.ErrInvalidArgument.Wrapf("private key must be %d bytes, got %d", PrivateKeySize, len(privateKey))
	}
	if isAllZero(privateKey) {
		return nil, errno.ErrInvalidArgument.Wrapf("private key must not be zero")
	}

	// 1. 随机 Salt 与 IV
	salt, err := safe_random.GenerateRandomBytes(saltSize)
	if err != nil {
		return nil, err
	}
	iv, err := safe_random.GenerateRandomBytes(crypto_util.AESIVSize)
	if err != nil {
		return nil, err
	}

	// 2. 派生密钥
	kdf := opts.newKDF(salt)
	derivedKey, err := kdf.deriveKey([]byte(password))
	if err != nil {
		return nil, err
	}

	// 3. AES-128-CTR 加密
	ciphertext, err := crypto_util.EncryptAES128CTR(derivedKey[:16], iv, privateKey)
	if err != nil {
		return nil, err
	}

	// 4. MAC = keccak256(derivedKey[16:32] + ciphertext)
	mac := crypto_util.Keccak256(derivedKey[16:32], ciphertext)

	id, err := uuid.NewRandomFromReader(safe_random.Reader)
	if err != nil {
		return nil, errno.ErrInternal.Wrapf("generate uuid: %v", err)
	}

	doc := &Document{
		Version:    Version,
		ID:         id,
		Cipher:     CipherAES128CTR,
		IV:         iv,
		CipherText: ciphertext,
		KDF:        kdf,
		MAC:        mac,
	}
	if (&curve.Secp256k1{}).ValidatePrivateKey(privateKey) == nil {
		raw, err := address.NewETHGenerator().PrivateKeyToRawAddress(privateKey)
		if err == nil {
			doc.Address = fmt.Sprintf("%x", raw)
		}
	}

	monitor.KeystoreOperationsTotal.WithLabelValues("encrypt", kdf.Name()).Inc()
	logger.Component("keystore").Debug("encrypted",
		zap.String("id", id.String()),
		zap.String("kdf", kdf.Name()),
		logger.Redacted("private_key", privateKey),
	)
	return doc, nil
}

// Decrypt 用密码解密文档，MAC 不匹配时返回 ErrMACMismatch (errno.ErrInvalidState)
func Decrypt(doc *Document, password string) ([]byte, error) {
	if err := doc.check(); err != nil {
		return nil, err
	}

	derivedKey, err := doc.KDF.deriveKey([]byte(password))
	if err != nil {
		return nil, err
	}
	monitor.KeystoreOperationsTotal.WithLabelValues("decrypt", doc.KDF.Name()).Inc()

	mac := crypto_util.Keccak256(derivedKey[16:32], doc.CipherText)
	if subtle.ConstantTimeCompare(mac, doc.MAC) != 1 {
		monitor.KeystoreDecryptFailures.Inc()
		logger.Component("keystore").Debug("mac mismatch", zap.String("id", doc.ID.String()))
		return nil, ErrMACMismatch
	}

	return crypto_util.DecryptAES128CTR(derivedKey[:16], doc.IV, doc.CipherText)
}

// EncryptJSON 加密并输出 JSON
func EncryptJSON(privateKey []byte, password string, opts Options) ([]byte, error) {
	doc, err := Encrypt(privateKey, password, opts)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}

// DecryptJSON 解析 JSON 并解密
func DecryptJSON(data []byte, password string) ([]byte, error) {
	doc, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return Decrypt(doc, password)
}

func (d *Document) check() error {
	switch {
	case d == nil:
		return errno.ErrInvalidArgument.Wrapf("keystore document is nil")
	case d.Version != Version:
		return errno.ErrInvalidArgument.Wrapf("keystore version must be %d, got %d", Version, d.Version)
	case d.Cipher != CipherAES128CTR:
		return errno.ErrUnsupported.Wrapf("cipher %q", d.Cipher)
	case d.KDF == nil:
		return errno.ErrInvalidArgument.Wrapf("keystore kdf params missing")
	case len(d.CipherText) != PrivateKeySize:
		return errno.ErrInvalidArgument.Wrapf("ciphertext must be %d bytes, got %d", PrivateKeySize, len(d.CipherText))
	case len(d.IV) != crypto_util.AESIVSize:
		return errno.ErrInvalidArgument.Wrapf("iv must be %d bytes, got %d", crypto_util.AESIVSize, len(d.IV))
	case len(d.MAC) != crypto_util.Keccak256Size:
		return errno.ErrInvalidArgument.Wrapf("mac must be %d bytes, got %d", crypto_util.Keccak256Size, len(d.MAC))
	}
	return nil
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
