package curve

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"wallet-keycore/pkg/errno"
)

// Secp256k1 密钥与签名长度
const (
	Secp256k1PrivateKeySize            = 32
	Secp256k1CompressedPublicKeySize   = 33
	Secp256k1UncompressedPublicKeySize = 65
	// Secp256k1SignatureSize r(32) || s(32) || v(1)
	Secp256k1SignatureSize = 65
	// Secp256k1CompactSignatureSize r(32) || s(32)，即去掉 v 的截断视图
	Secp256k1CompactSignatureSize = 64
	Secp256k1HashSize             = 32
)

// compact 签名首字节的偏移量 (27 + recid [+4 压缩])
const compactSigMagicOffset = 27

var secp256k1Order = new(big.Int).Set(btcec.S256().Params().N)

// Secp256k1 ECDSA，签名可恢复公钥 (比特币/以太坊)
type Secp256k1 struct{}

var (
	_ Curve     = (*Secp256k1)(nil)
	_ Recoverer = (*Secp256k1)(nil)
)

func (*Secp256k1) sealed() {}

func (*Secp256k1) Type() Type { return Secp256k1Type }
func (*Secp256k1) Name() string { return Secp256k1Type.String() }

func (*Secp256k1) PrivateKeyLength() int { return Secp256k1PrivateKeySize }
func (*Secp256k1) SignatureLength() int { return Secp256k1SignatureSize }

func (*Secp256k1) PublicKeyLength(compressed bool) int {
	if compressed {
		return Secp256k1CompressedPublicKeySize
	}
	return Secp256k1UncompressedPublicKeySize
}

// Order 返回曲线阶 n 的副本
func (*Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1Order)
}

// ValidatePrivateKey 检查私钥是否为 [1, n) 范围内的 32 字节标量
func (*Secp256k1) ValidatePrivateKey(privateKey []byte) error {
	_, err := parseSecp256k1PrivateKey(privateKey)
	return err
}

func parseSecp256k1PrivateKey(b []byte) (*btcec.PrivateKey, error) {
	if len(b) != Secp256k1PrivateKeySize {
		return nil, errno.ErrInvalidArgument.Wrapf("secp256k1 private key must be %d bytes, got %d",
			Secp256k1PrivateKeySize, len(b))
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return nil, errno.ErrInvalidArgument.Wrapf("secp256k1 private key out of range")
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv, nil
}

func (*Secp256k1) PublicKey(privateKey []byte, compressed bool) ([]byte, error) {
	priv, err := parseSecp256k1PrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	if compressed {
		return priv.PubKey().SerializeCompressed(), nil
	}
	return priv.PubKey().SerializeUncompressed(), nil
}

// Sign 返回 65 字节 r || s || v 签名，v 为原始恢复 ID (0..3)。
// 使用 RFC 6979 确定性 nonce，s 取低值。
func (*Secp256k1) Sign(msgHash, privateKey []byte) ([]byte, error) {
	if len(msgHash) != Secp256k1HashSize {
		return nil, errno.ErrInvalidArgument.Wrapf("secp256k1 message hash must be %d bytes, got %d",
			Secp256k1HashSize, len(msgHash))
	}
	priv, err := parseSecp256k1PrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	compact := btcecdsa.SignCompact(priv, msgHash, false)

	sig := make([]byte, Secp256k1SignatureSize)
	copy(sig, compact[1:])
	sig[64] = compact[0] - compactSigMagicOffset
	return sig, nil
}

// Verify 接受 65 字节 (r||s||v) 或 64 字节 (r||s) 签名，v 不参与校验
func (*Secp256k1) Verify(signature, msgHash, publicKey []byte) bool {
	if len(msgHash) != Secp256k1HashSize {
		return false
	}
	if len(signature) != Secp256k1SignatureSize && len(signature) != Secp256k1CompactSignatureSize {
		return false
	}
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return false
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(signature[:32]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(signature[32:64]); overflow || s.IsZero() {
		return false
	}
	return btcecdsa.NewSignature(&r, &s).Verify(msgHash, pub)
}

// Recover 从签名和消息哈希恢复压缩公钥。recoveryID 与签名中的 v 不一致时，
// 恢复出的是另一个点 (或失败)，不会与签名者公钥相同。
func (c *Secp256k1) Recover(signature, msgHash []byte, recoveryID byte) ([]byte, error) {
	return c.RecoverPublicKey(signature, msgHash, recoveryID, true)
}

// RecoverPublicKey 与 Recover 相同，可选择公钥编码格式
func (*Secp256k1) RecoverPublicKey(signature, msgHash []byte, recoveryID byte, compressed bool) ([]byte, error) {
	if len(signature) != Secp256k1SignatureSize && len(signature) != Secp256k1CompactSignatureSize {
		return nil, errno.ErrInvalidArgument.Wrapf("secp256k1 signature must be %d or %d bytes, got %d",
			Secp256k1SignatureSize, Secp256k1CompactSignatureSize, len(signature))
	}
	if len(msgHash) != Secp256k1HashSize {
		return nil, errno.ErrInvalidArgument.Wrapf("secp256k1 message hash must be %d bytes, got %d",
			Secp256k1HashSize, len(msgHash))
	}
	if recoveryID > 3 {
		return nil, errno.ErrInvalidArgument.Wrapf("recovery id must be in [0, 3], got %d", recoveryID)
	}

	compact := make([]byte, Secp256k1SignatureSize)
	compact[0] = compactSigMagicOffset + recoveryID
	copy(compact[1:], signature[:64])

	pub, _, err := btcecdsa.RecoverCompact(compact, msgHash)
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("secp256k1 recover: %v", err)
	}
	if compressed {
		return pub.SerializeCompressed(), nil
	}
	return pub.SerializeUncompressed(), nil
}

// RecoverFromSignature 使用 65 字节签名中自带的 v 恢复公钥
func (c *Secp256k1) RecoverFromSignature(signature, msgHash []byte, compressed bool) ([]byte, error) {
	if len(signature) != Secp256k1SignatureSize {
		return nil, errno.ErrInvalidArgument.Wrapf("recoverable signature must be %d bytes, got %d",
			Secp256k1SignatureSize, len(signature))
	}
	return c.RecoverPublicKey(signature, msgHash, signature[64], compressed)
}

// CompressPublicKey 将 33/65 字节公钥转换为压缩格式
func (*Secp256k1) CompressPublicKey(publicKey []byte) ([]byte, error) {
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("secp256k1 public key: %v", err)
	}
	return pub.SerializeCompressed(), nil
}

// DecompressPublicKey 将 33/65 字节公钥转换为非压缩格式 (0x04 || X || Y)
func (*Secp256k1) DecompressPublicKey(publicKey []byte) ([]byte, error) {
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("secp256k1 public key: %v", err)
	}
	return pub.SerializeUncompressed(), nil
}
