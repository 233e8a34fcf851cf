// Package curve 提供统一的椭圆曲线签名抽象。
//
// 支持的曲线是一个封闭集合 (Secp256k1 / Ed25519 / Sr25519)，通过 Type 枚举和
// 名称工厂 Get 解析。Curve 接口含有未导出方法，包外无法新增实现。
package curve

import (
	"sort"
	"strings"

	"wallet-keycore/pkg/errno"
)

// Type 曲线类型
type Type int

const (
	Secp256k1Type Type = iota + 1
	Ed25519Type
	Sr25519Type
)

func (t Type) String() string {
	switch t {
	case Secp256k1Type:
		return "secp256k1"
	case Ed25519Type:
		return "ed25519"
	case Sr25519Type:
		return "sr25519"
	default:
		return "unknown"
	}
}

// Curve 是所有曲线共有的能力集合。
// 所有方法都是纯函数，可被多个 goroutine 并发调用。
type Curve interface {
	Type() Type
	Name() string

	PrivateKeyLength() int
	PublicKeyLength(compressed bool) int
	SignatureLength() int

	// PublicKey 由私钥计算公钥。compressed 只对 secp256k1 有意义。
	PublicKey(privateKey []byte, compressed bool) ([]byte, error)
	// Sign 对已经哈希过的消息签名
	Sign(msgHash, privateKey []byte) ([]byte, error)
	// Verify 校验失败时返回 false，不返回错误
	Verify(signature, msgHash, publicKey []byte) bool

	sealed()
}

// Recoverer 表示支持从签名恢复公钥的曲线 (仅 secp256k1)。
type Recoverer interface {
	Recover(signature, msgHash []byte, recoveryID byte) ([]byte, error)
}

var (
	secp256k1Instance = &Secp256k1{}
	ed25519Instance   = &Ed25519{}
	sr25519Instance   = &Sr25519{}
)

// ByType 按类型返回曲线实例
func ByType(t Type) (Curve, error) {
	switch t {
	case Secp256k1Type:
		return secp256k1Instance, nil
	case Ed25519Type:
		return ed25519Instance, nil
	case Sr25519Type:
		return sr25519Instance, nil
	default:
		return nil, errno.ErrInvalidArgument.Wrapf("unknown curve type %d", int(t))
	}
}

// Get 按名称 (大小写不敏感) 返回曲线实例
func Get(name string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "secp256k1":
		return ByType(Secp256k1Type)
	case "ed25519":
		return ByType(Ed25519Type)
	case "sr25519":
		return ByType(Sr25519Type)
	default:
		return nil, errno.ErrInvalidArgument.Wrapf("unknown curve %q", name)
	}
}

// MustGet 与 Get 相同，但未知名称时 panic。仅用于常量名称。
func MustGet(name string) Curve {
	c, err := Get(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names 返回所有已注册曲线名称 (有序)
func Names() []string {
	names := []string{Secp256k1Type.String(), Ed25519Type.String(), Sr25519Type.String()}
	sort.Strings(names)
	return names
}

// SupportsRecovery 判断曲线是否支持公钥恢复
func SupportsRecovery(c Curve) bool {
	_, ok := c.(Recoverer)
	return ok
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
