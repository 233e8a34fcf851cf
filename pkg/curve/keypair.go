package curve

import (
	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/safe_random"
)

// KeyPair 私钥与对应公钥。PublicKey 始终等于 curve.PublicKey(PrivateKey)。
type KeyPair struct {
	curve      Curve
	privateKey []byte
	publicKey  []byte
}

// NewKeyPair 校验私钥并计算公钥 (secp256k1 使用压缩格式)
func NewKeyPair(c Curve, privateKey []byte) (*KeyPair, error) {
	if c == nil {
		return nil, errno.ErrInvalidArgument.Wrapf("curve is nil")
	}
	pub, err := c.PublicKey(privateKey, true)
	if err != nil {
		return nil, err
	}
	return &KeyPair{curve: c, privateKey: cloneBytes(privateKey), publicKey: pub}, nil
}

// GenerateKeyPair 使用 safe_random 生成新的密钥对
func GenerateKeyPair(c Curve) (*KeyPair, error) {
	if c == nil {
		return nil, errno.ErrInvalidArgument.Wrapf("curve is nil")
	}

	var (
		priv []byte
		err  error
	)
	switch c.Type() {
	case Secp256k1Type:
		priv, err = safe_random.GenerateScalar(secp256k1Order, Secp256k1PrivateKeySize)
	case Ed25519Type, Sr25519Type:
		priv, err = safe_random.GenerateRandomBytes(c.PrivateKeyLength())
	default:
		return nil, errno.ErrInvalidArgument.Wrapf("unknown curve %s", c.Name())
	}
	if err != nil {
		return nil, err
	}
	return NewKeyPair(c, priv)
}

func (k *KeyPair) Curve() Curve { return k.curve }

// PrivateKey 返回私钥副本
func (k *KeyPair) PrivateKey() []byte { return cloneBytes(k.privateKey) }

// PublicKey 返回公钥副本
func (k *KeyPair) PublicKey() []byte { return cloneBytes(k.publicKey) }

// Sign 使用该密钥对签名
func (k *KeyPair) Sign(msgHash []byte) ([]byte, error) {
	return k.curve.Sign(msgHash, k.privateKey)
}

// Verify 使用该密钥对的公钥验签
func (k *KeyPair) Verify(signature, msgHash []byte) bool {
	return k.curve.Verify(signature, msgHash, k.publicKey)
}
