package address

import (
	"github.com/mr-tron/base58"

	"wallet-keycore/pkg/curve"
	"wallet-keycore/pkg/errno"
)

// SOLGenerator Solana 地址生成器，地址即 ed25519 公钥的 base58 编码
type SOLGenerator struct{}

func NewSOLGenerator() *SOLGenerator {
	return &SOLGenerator{}
}

func (g *SOLGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	if len(pubKeyBytes) != curve.Ed25519PublicKeySize {
		return "", errno.ErrInvalidArgument.Wrapf("ed25519 public key must be %d bytes, got %d",
			curve.Ed25519PublicKeySize, len(pubKeyBytes))
	}
	return base58.Encode(pubKeyBytes), nil
}

// AddressToPubKey 解码 base58 地址
func (g *SOLGenerator) AddressToPubKey(address string) ([]byte, error) {
	pub, err := base58.Decode(address)
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("invalid base58 address: %v", err)
	}
	if len(pub) != curve.Ed25519PublicKeySize {
		return nil, errno.ErrInvalidArgument.Wrapf("decoded address must be %d bytes, got %d",
			curve.Ed25519PublicKeySize, len(pub))
	}
	return pub, nil
}
