package curve

import (
	"crypto/ed25519"

	"wallet-keycore/pkg/errno"
)

const (
	Ed25519PrivateKeySize = ed25519.SeedSize
	Ed25519PublicKeySize  = ed25519.PublicKeySize
	Ed25519SignatureSize  = ed25519.SignatureSize
)

// Ed25519 RFC 8032。私钥为 32 字节种子，签名为 R || S，不可恢复。
type Ed25519 struct{}

var _ Curve = (*Ed25519)(nil)

func (*Ed25519) sealed() {}

func (*Ed25519) Type() Type { return Ed25519Type }
func (*Ed25519) Name() string { return Ed25519Type.String() }

func (*Ed25519) PrivateKeyLength() int { return Ed25519PrivateKeySize }
func (*Ed25519) PublicKeyLength(_ bool) int { return Ed25519PublicKeySize }
func (*Ed25519) SignatureLength() int { return Ed25519SignatureSize }

func ed25519PrivateKey(seed []byte) (ed25519.PrivateKey, error) {
	if len(seed) != Ed25519PrivateKeySize {
		return nil, errno.ErrInvalidArgument.Wrapf("ed25519 private key must be %d bytes, got %d",
			Ed25519PrivateKeySize, len(seed))
	}
	if isAllZero(seed) {
		return nil, errno.ErrInvalidArgument.Wrapf("ed25519 private key must not be zero")
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

func (*Ed25519) PublicKey(privateKey []byte, _ bool) ([]byte, error) {
	priv, err := ed25519PrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return cloneBytes(priv.Public().(ed25519.PublicKey)), nil
}

// Sign Ed25519 内部自行哈希，msgHash 可以是任意长度的消息
func (*Ed25519) Sign(msgHash, privateKey []byte) ([]byte, error) {
	priv, err := ed25519PrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(priv, msgHash), nil
}

func (*Ed25519) Verify(signature, msgHash, publicKey []byte) bool {
	if len(publicKey) != Ed25519PublicKeySize || len(signature) != Ed25519SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), msgHash, signature)
}
