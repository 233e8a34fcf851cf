package curve

import (
	schnorrkel "github.com/ChainSafe/go-schnorrkel"

	"wallet-keycore/pkg/errno"
)

const (
	Sr25519PrivateKeySize = 32
	Sr25519PublicKeySize  = 32
	Sr25519SignatureSize  = 64
)

// sr25519SigningContext Substrate 使用的签名上下文
var sr25519SigningContext = []byte("substrate")

// Sr25519 Schnorrkel/Ristretto25519 签名 (Polkadot/Substrate)。
// 私钥为 32 字节 mini secret，按 Ed25519 方式展开。签名带随机性。
type Sr25519 struct{}

var _ Curve = (*Sr25519)(nil)

func (*Sr25519) sealed() {}

func (*Sr25519) Type() Type { return Sr25519Type }
func (*Sr25519) Name() string { return Sr25519Type.String() }

func (*Sr25519) PrivateKeyLength() int { return Sr25519PrivateKeySize }
func (*Sr25519) PublicKeyLength(_ bool) int { return Sr25519PublicKeySize }
func (*Sr25519) SignatureLength() int { return Sr25519SignatureSize }

func sr25519MiniSecret(privateKey []byte) (*schnorrkel.MiniSecretKey, error) {
	if len(privateKey) != Sr25519PrivateKeySize {
		return nil, errno.ErrInvalidArgument.Wrapf("sr25519 private key must be %d bytes, got %d",
			Sr25519PrivateKeySize, len(privateKey))
	}
	if isAllZero(privateKey) {
		return nil, errno.ErrInvalidArgument.Wrapf("sr25519 private key must not be zero")
	}
	var raw [Sr25519PrivateKeySize]byte
	copy(raw[:], privateKey)
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(raw)
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("sr25519 private key: %v", err)
	}
	return mini, nil
}

func (*Sr25519) PublicKey(privateKey []byte, _ bool) ([]byte, error) {
	mini, err := sr25519MiniSecret(privateKey)
	if err != nil {
		return nil, err
	}
	pub := mini.Public().Encode()
	return pub[:], nil
}

func (*Sr25519) Sign(msgHash, privateKey []byte) ([]byte, error) {
	mini, err := sr25519MiniSecret(privateKey)
	if err != nil {
		return nil, err
	}
	secret := mini.ExpandEd25519()

	transcript := schnorrkel.NewSigningContext(sr25519SigningContext, msgHash)
	sig, err := secret.Sign(transcript)
	if err != nil {
		return nil, errno.ErrInternal.Wrapf("sr25519 sign: %v", err)
	}
	enc := sig.Encode()
	return enc[:], nil
}

func (*Sr25519) Verify(signature, msgHash, publicKey []byte) bool {
	if len(publicKey) != Sr25519PublicKeySize || len(signature) != Sr25519SignatureSize {
		return false
	}

	var pubRaw [Sr25519PublicKeySize]byte
	copy(pubRaw[:], publicKey)
	pub := new(schnorrkel.PublicKey)
	if err := pub.Decode(pubRaw); err != nil {
		return false
	}

	var sigRaw [Sr25519SignatureSize]byte
	copy(sigRaw[:], signature)
	sig := new(schnorrkel.Signature)
	if err := sig.Decode(sigRaw); err != nil {
		return false
	}

	transcript := schnorrkel.NewSigningContext(sr25519SigningContext, msgHash)
	ok, err := pub.Verify(sig, transcript)
	return err == nil && ok
}
