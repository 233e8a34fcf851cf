package bip32

import (
	"fmt"

	"wallet-keycore/pkg/errno"
)

// HDKey 分层确定性节点的只读视图，BIP-32 与 SLIP-0010 节点都实现它。
// 所有方法返回副本。
type HDKey interface {
	PrivateKey() []byte
	PublicKey() []byte
	ChainCode() []byte
	Depth() uint8
	Path() string
}

// HDWallet 定义了分层确定性钱包的基本行为
type HDWallet interface {
	// MasterKey 返回主扩展密钥
	MasterKey() *ExtendedKey
	// DerivePath 根据路径 (如 "m/44'/0'/0'/0/0") 派生密钥
	DerivePath(path string) (*ExtendedKey, error)
}

// 以下错误都可以用 errors.Is(err, errno.ErrInvalidArgument) 判断
var (
	ErrInvalidSeed          = fmt.Errorf("%w: 无效的种子", errno.ErrInvalidArgument)
	ErrInvalidExtendedKey   = fmt.Errorf("%w: 无效的扩展密钥", errno.ErrInvalidArgument)
	ErrInvalidPath          = fmt.Errorf("%w: 无效的派生路径", errno.ErrInvalidArgument)
	ErrInvalidChild         = fmt.Errorf("%w: 该索引派生出无效子密钥", errno.ErrInvalidArgument)
	ErrDeriveHardFromPublic = fmt.Errorf("%w: 不能从扩展公钥派生强化子密钥", errno.ErrInvalidArgument)
	ErrDeriveBeyondMaxDepth = fmt.Errorf("%w: 超过最大派生深度 255", errno.ErrInvalidArgument)
	ErrNotPrivate           = fmt.Errorf("%w: 不是扩展私钥", errno.ErrInvalidArgument)
)
