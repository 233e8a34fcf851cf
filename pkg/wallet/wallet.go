// Package wallet 把助记词种子、HD 派生与曲线签名组合成可离线使用的账户。
package wallet

import (
	"encoding/hex"
	"errors"
	"strings"

	"wallet-keycore/pkg/address"
	"wallet-keycore/pkg/bip32"
	"wallet-keycore/pkg/crypto_util"
	"wallet-keycore/pkg/curve"
	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/slip10"
	"wallet-keycore/pkg/validator"
	"wallet-keycore/pkg/wallet/types"
)

const HashSize = 32

// 默认 BIP-44 路径
const (
	DefaultETHPath = "m/44'/60'/0'/0/0"
	DefaultBTCPath = "m/44'/0'/0'/0/0"
	DefaultSOLPath = "m/44'/501'/0'/0'"
)

// Account 单个签名账户
type Account struct {
	path string
	pair *curve.KeyPair
}

// DefaultPath secp256k1 使用 ETH 路径，ed25519 使用 SOL 路径
func DefaultPath(curveName string) string {
	if strings.EqualFold(curveName, curve.Ed25519Type.String()) {
		return DefaultSOLPath
	}
	return DefaultETHPath
}

// DeriveAccount 从 BIP-39 种子派生账户。
// secp256k1 使用 BIP-32，ed25519 使用 SLIP-0010，sr25519 没有 HD 派生。
func DeriveAccount(seed []byte, curveName, path string) (*Account, error) {
	c, err := curve.Get(curveName)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultPath(c.Name())
	}

	var priv []byte
	switch c.Type() {
	case curve.Secp256k1Type:
		master, err := bip32.FromSeed(seed)
		if err != nil {
			return nil, err
		}
		key, err := master.Derive(path)
		if err != nil {
			return nil, err
		}
		priv = key.PrivateKey()
	case curve.Ed25519Type:
		master, err := slip10.FromSeed(seed)
		if err != nil {
			return nil, err
		}
		node, err := master.Derive(path)
		if err != nil {
			return nil, err
		}
		priv = node.PrivateKey()
	default:
		return nil, errno.ErrUnsupported.Wrapf("%s has no hierarchical derivation", c.Name())
	}

	pair, err := curve.NewKeyPair(c, priv)
	if err != nil {
		return nil, err
	}
	return &Account{path: path, pair: pair}, nil
}

// NewAccount 包装已有密钥对 (例如 Keystore 解密得到的私钥)
func NewAccount(pair *curve.KeyPair, path string) *Account {
	return &Account{path: path, pair: pair}
}

func (a *Account) Path() string            { return a.path }
func (a *Account) KeyPair() *curve.KeyPair { return a.pair }

// Address secp256k1 返回 EIP-55 ETH 地址，ed25519 返回 SOL 地址
func (a *Account) Address() (string, error) {
	return addressFor(a.pair.Curve(), a.pair.PublicKey())
}

// SignHash 对 32 字节哈希签名
func (a *Account) SignHash(hash []byte) (*types.SignResult, error) {
	if len(hash) != HashSize {
		return nil, errno.ErrInvalidArgument.Wrapf("hash must be %d bytes, got %d", HashSize, len(hash))
	}
	sig, err := a.pair.Sign(hash)
	if err != nil {
		return nil, err
	}

	addr, err := a.Address()
	if err != nil && !errors.Is(err, errno.ErrUnsupported) {
		return nil, err
	}
	return &types.SignResult{
		Curve:          a.pair.Curve().Name(),
		DerivationPath: a.path,
		Address:        addr,
		PublicKey:      hex.EncodeToString(a.pair.PublicKey()),
		MsgHash:        hex.EncodeToString(hash),
		Signature:      hex.EncodeToString(sig),
	}, nil
}

// Verify 校验签名结果。字段格式错误返回参数错误，签名无效返回 false。
func Verify(res *types.SignResult) (bool, error) {
	if res == nil {
		return false, errno.ErrInvalidArgument.Wrapf("sign result is nil")
	}
	if err := validator.Struct(res); err != nil {
		return false, err
	}
	c, err := curve.Get(res.Curve)
	if err != nil {
		return false, err
	}
	pub, err := decodeHex("public_key", res.PublicKey)
	if err != nil {
		return false, err
	}
	hash, err := ParseHash(res.MsgHash)
	if err != nil {
		return false, err
	}
	sig, err := decodeHex("signature", res.Signature)
	if err != nil {
		return false, err
	}
	return c.Verify(sig, hash, pub), nil
}

// ParseHash 解析 32 字节 Hex 哈希 (可带 0x)
func ParseHash(s string) ([]byte, error) {
	b, err := decodeHex("hash", s)
	if err != nil {
		return nil, err
	}
	if len(b) != HashSize {
		return nil, errno.ErrInvalidArgument.Wrapf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	return b, nil
}

// HashMessage 计算消息的 Keccak-256 (secp256k1) 或 SHA-256 (其余曲线)
func HashMessage(curveName string, msg []byte) []byte {
	if strings.EqualFold(curveName, curve.Secp256k1Type.String()) {
		return crypto_util.Keccak256(msg)
	}
	return crypto_util.SHA256(msg)
}

func addressFor(c curve.Curve, pub []byte) (string, error) {
	switch c.Type() {
	case curve.Secp256k1Type:
		return address.NewETHGenerator().PubKeyToAddress(pub)
	case curve.Ed25519Type:
		return address.NewSOLGenerator().PubKeyToAddress(pub)
	default:
		return "", errno.ErrUnsupported.Wrapf("no address format for %s", c.Name())
	}
}

func decodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("%s: %v", field, err)
	}
	return b, nil
}
