package address

import (
	"encoding/hex"
	"strings"

	"wallet-keycore/pkg/crypto_util"
	"wallet-keycore/pkg/curve"
	"wallet-keycore/pkg/errno"
)

// ETHGenerator 以太坊地址生成器
type ETHGenerator struct{}

func NewETHGenerator() *ETHGenerator {
	return &ETHGenerator{}
}

// PubKeyToRawAddress 返回 20 字节地址: keccak256(X || Y) 的后 20 字节。
// 接受 33 字节压缩、65 字节 (0x04...) 或 64 字节 (X || Y) 公钥。
func (g *ETHGenerator) PubKeyToRawAddress(pubKeyBytes []byte) ([]byte, error) {
	switch len(pubKeyBytes) {
	case 33:
		full, err := (&curve.Secp256k1{}).DecompressPublicKey(pubKeyBytes)
		if err != nil {
			return nil, err
		}
		pubKeyBytes = full[1:]
	case 65:
		if pubKeyBytes[0] != 0x04 {
			return nil, errno.ErrInvalidArgument.Wrapf("uncompressed public key must start with 0x04")
		}
		pubKeyBytes = pubKeyBytes[1:]
	case 64:
	default:
		return nil, errno.ErrInvalidArgument.Wrapf("invalid secp256k1 public key length %d", len(pubKeyBytes))
	}

	hash := crypto_util.Keccak256(pubKeyBytes)
	return hash[12:], nil
}

// PubKeyToAddress 将公钥转换为 EIP-55 地址 (带 0x 前缀)
func (g *ETHGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	raw, err := g.PubKeyToRawAddress(pubKeyBytes)
	if err != nil {
		return "", err
	}
	return "0x" + toChecksumAddress(hex.EncodeToString(raw)), nil
}

// PrivateKeyToRawAddress 由 secp256k1 私钥计算 20 字节地址
func (g *ETHGenerator) PrivateKeyToRawAddress(privateKey []byte) ([]byte, error) {
	pub, err := (&curve.Secp256k1{}).PublicKey(privateKey, false)
	if err != nil {
		return nil, err
	}
	return g.PubKeyToRawAddress(pub)
}

// PrivateKeyToAddress 由 secp256k1 私钥计算 EIP-55 地址
func (g *ETHGenerator) PrivateKeyToAddress(privateKey []byte) (string, error) {
	raw, err := g.PrivateKeyToRawAddress(privateKey)
	if err != nil {
		return "", err
	}
	return "0x" + toChecksumAddress(hex.EncodeToString(raw)), nil
}

// ChecksumAddress 对 20 字节 hex 地址 (可带 0x) 应用 EIP-55
func ChecksumAddress(address string) (string, error) {
	address = strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if len(address) != 40 {
		return "", errno.ErrInvalidArgument.Wrapf("address must be 40 hex chars, got %d", len(address))
	}
	if _, err := hex.DecodeString(address); err != nil {
		return "", errno.ErrInvalidArgument.Wrapf("address is not hex: %v", err)
	}
	return "0x" + toChecksumAddress(address), nil
}

// toChecksumAddress 实现 EIP-55 混合大小写校验
func toChecksumAddress(address string) string {
	address = strings.ToLower(address)
	hexHash := hex.EncodeToString(crypto_util.Keccak256([]byte(address)))

	var sb strings.Builder
	for i := 0; i < len(address); i++ {
		char := address[i]
		// hash 的第 i 个 nibble >= 8 时大写
		if hexCharToInt(hexHash[i]) >= 8 {
			sb.WriteString(strings.ToUpper(string(char)))
		} else {
			sb.WriteByte(char)
		}
	}
	return sb.String()
}

func hexCharToInt(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	return 0
}
