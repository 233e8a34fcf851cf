package kms

import (
	"fmt"

	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/keystore"
)

// KeyMetadata 包含密钥的元数据，不包含敏感的私钥信息
type KeyMetadata struct {
	KeyID     string `json:"key_id"`     // 密钥唯一标识符
	Curve     string `json:"curve"`      // secp256k1 / ed25519 / sr25519
	CreatedAt int64  `json:"created_at"` // 创建时间戳
	Enabled   bool   `json:"enabled"`    // 是否启用
	Imported  bool   `json:"imported"`   // 是否由外部导入
}

// KeyManager 定义了密钥管理服务的核心行为。
// 私钥只在 ExportKeystore 时以加密形式离开 KMS。
type KeyManager interface {
	// CreateKey 在指定曲线上创建一个新的密钥，并返回其 ID
	CreateKey(curveName string) (string, error)
	// ImportKey 导入已有私钥
	ImportKey(curveName string, privateKey []byte) (string, error)

	GetPublicKey(keyID string) ([]byte, error)
	GetMetadata(keyID string) (KeyMetadata, error)
	ListKeys() []KeyMetadata

	// Sign 对已哈希的消息签名
	Sign(keyID string, msgHash []byte) ([]byte, error)
	// Verify 签名无效时返回 ErrInvalidSignature
	Verify(keyID string, msgHash []byte, signature []byte) error
	// Recover 从 secp256k1 签名恢复签名者，返回其 KeyID
	Recover(msgHash []byte, signature []byte) (string, error)

	ExportKeystore(keyID, password string, opts keystore.Options) (*keystore.Document, error)
	ImportKeystore(curveName string, doc *keystore.Document, password string) (string, error)

	// Address 返回密钥在指定链上的地址 (eth / btc / sol)
	Address(keyID, chain string) (string, error)

	DisableKey(keyID string) error
}

var (
	ErrKeyNotFound      = fmt.Errorf("%w: 密钥未找到", errno.ErrInvalidArgument)
	ErrKeyDisabled      = fmt.Errorf("%w: 密钥已禁用", errno.ErrInvalidState)
	ErrUnsupportedOp    = fmt.Errorf("%w: 该曲线不支持此操作", errno.ErrUnsupported)
	ErrInvalidSignature = fmt.Errorf("%w: 签名无效", errno.ErrInvalidState)
)
