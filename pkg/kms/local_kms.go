package kms

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"wallet-keycore/pkg/address"
	"wallet-keycore/pkg/curve"
	"wallet-keycore/pkg/keystore"
	"wallet-keycore/pkg/logger"
	"wallet-keycore/pkg/monitor"
	"wallet-keycore/pkg/safe_random"
)

// keyEntry 是内部存储结构，包含私钥（敏感数据）和元数据
type keyEntry struct {
	Metadata KeyMetadata
	Pair     *curve.KeyPair
}

// LocalKMS 是 KeyManager 接口的本地内存实现。
// 它模拟了一个硬件安全模块 (HSM)，私钥存储在内存中，不直接暴露给外部。
type LocalKMS struct {
	mu      sync.RWMutex
	keys    map[string]*keyEntry
	metrics *monitor.KMSMetrics
}

var _ KeyManager = (*LocalKMS)(nil)

// Option LocalKMS 可选配置
type Option func(*LocalKMS)

// WithMetrics 使用外部创建 (通常已注册) 的指标
func WithMetrics(m *monitor.KMSMetrics) Option {
	return func(k *LocalKMS) { k.metrics = m }
}

// NewLocalKMS 创建一个新的 LocalKMS 实例。
func NewLocalKMS(opts ...Option) *LocalKMS {
	k := &LocalKMS{
		keys:    make(map[string]*keyEntry),
		metrics: monitor.NewKMSMetrics(nil),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// CreateKey 创建一个新的密钥，并返回其 ID。
func (kms *LocalKMS) CreateKey(curveName string) (string, error) {
	c, err := curve.Get(curveName)
	if err != nil {
		return "", err
	}
	pair, err := curve.GenerateKeyPair(c)
	if err != nil {
		return "", err
	}
	return kms.store(pair, false)
}

// ImportKey 导入已有私钥
func (kms *LocalKMS) ImportKey(curveName string, privateKey []byte) (string, error) {
	c, err := curve.Get(curveName)
	if err != nil {
		return "", err
	}
	pair, err := curve.NewKeyPair(c, privateKey)
	if err != nil {
		return "", err
	}
	return kms.store(pair, true)
}

func (kms *LocalKMS) store(pair *curve.KeyPair, imported bool) (string, error) {
	// 生成一个随机 Key ID
	keyID, err := safe_random.GenerateRandomHexString(16)
	if err != nil {
		return "", fmt.Errorf("生成 KeyID 失败: %w", err)
	}

	name := pair.Curve().Name()
	entry := &keyEntry{
		Metadata: KeyMetadata{
			KeyID:     keyID,
			Curve:     name,
			CreatedAt: time.Now().Unix(),
			Enabled:   true,
			Imported:  imported,
		},
		Pair: pair,
	}

	kms.mu.Lock()
	kms.keys[keyID] = entry
	kms.mu.Unlock()

	kms.metrics.KeysCreatedTotal.WithLabelValues(name).Inc()
	kms.metrics.ActiveKeys.WithLabelValues(name).Inc()
	logger.Component("kms").Debug("key stored",
		zap.String("key_id", keyID),
		zap.String("curve", name),
		zap.Bool("imported", imported),
		logger.PubKey("public_key", pair.PublicKey()),
	)
	return keyID, nil
}

// lookup 返回启用状态的密钥
func (kms *LocalKMS) lookup(keyID string) (*keyEntry, error) {
	kms.mu.RLock()
	defer kms.mu.RUnlock()

	entry, exists := kms.keys[keyID]
	if !exists {
		return nil, ErrKeyNotFound
	}
	if !entry.Metadata.Enabled {
		return nil, ErrKeyDisabled
	}
	return entry, nil
}

// GetPublicKey 获取指定密钥 ID 的公钥 (secp256k1 为压缩格式)
func (kms *LocalKMS) GetPublicKey(keyID string) ([]byte, error) {
	entry, err := kms.lookup(keyID)
	if err != nil {
		return nil, err
	}
	return entry.Pair.PublicKey(), nil
}

// GetMetadata 禁用的密钥也可以查询元数据
func (kms *LocalKMS) GetMetadata(keyID string) (KeyMetadata, error) {
	kms.mu.RLock()
	defer kms.mu.RUnlock()

	entry, exists := kms.keys[keyID]
	if !exists {
		return KeyMetadata{}, ErrKeyNotFound
	}
	return entry.Metadata, nil
}

// ListKeys 按创建时间、KeyID 排序
func (kms *LocalKMS) ListKeys() []KeyMetadata {
	kms.mu.RLock()
	list := make([]KeyMetadata, 0, len(kms.keys))
	for _, entry := range kms.keys {
		list = append(list, entry.Metadata)
	}
	kms.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt < list[j].CreatedAt
		}
		return list[i].KeyID < list[j].KeyID
	})
	return list
}

// Sign 使用指定的密钥对数据进行签名。
func (kms *LocalKMS) Sign(keyID string, msgHash []byte) ([]byte, error) {
	entry, err := kms.lookup(keyID)
	if err != nil {
		return nil, err
	}

	name := entry.Metadata.Curve
	sig, err := entry.Pair.Sign(msgHash)
	if err != nil {
		kms.metrics.SignFailedTotal.WithLabelValues(name).Inc()
		return nil, err
	}
	kms.metrics.SignTotal.WithLabelValues(name).Inc()
	return sig, nil
}

// Verify 验证签名是否有效。
func (kms *LocalKMS) Verify(keyID string, msgHash []byte, signature []byte) error {
	entry, err := kms.lookup(keyID)
	if err != nil {
		return err
	}
	if !entry.Pair.Verify(signature, msgHash) {
		return ErrInvalidSignature
	}
	return nil
}

// Recover 从 65 字节 secp256k1 签名恢复公钥，并在已启用的密钥中查找签名者
func (kms *LocalKMS) Recover(msgHash []byte, signature []byte) (string, error) {
	secp := &curve.Secp256k1{}
	pub, err := secp.RecoverFromSignature(signature, msgHash, true)
	if err != nil {
		return "", err
	}

	kms.mu.RLock()
	defer kms.mu.RUnlock()
	for id, entry := range kms.keys {
		if !entry.Metadata.Enabled || entry.Pair.Curve().Type() != curve.Secp256k1Type {
			continue
		}
		if bytes.Equal(entry.Pair.PublicKey(), pub) {
			return id, nil
		}
	}
	return "", ErrKeyNotFound
}

// ExportKeystore 以 Keystore V3 形式导出私钥
func (kms *LocalKMS) ExportKeystore(keyID, password string, opts keystore.Options) (*keystore.Document, error) {
	entry, err := kms.lookup(keyID)
	if err != nil {
		return nil, err
	}
	return keystore.Encrypt(entry.Pair.PrivateKey(), password, opts)
}

// ImportKeystore 解密 Keystore V3 文档并导入为指定曲线的密钥
func (kms *LocalKMS) ImportKeystore(curveName string, doc *keystore.Document, password string) (string, error) {
	priv, err := keystore.Decrypt(doc, password)
	if err != nil {
		return "", err
	}
	return kms.ImportKey(curveName, priv)
}

// Address eth 与 btc 要求 secp256k1 密钥，sol 要求 ed25519 密钥
func (kms *LocalKMS) Address(keyID, chain string) (string, error) {
	entry, err := kms.lookup(keyID)
	if err != nil {
		return "", err
	}

	pub := entry.Pair.PublicKey()
	switch t := entry.Pair.Curve().Type(); {
	case chain == "eth" && t == curve.Secp256k1Type:
		return address.NewETHGenerator().PubKeyToAddress(pub)
	case chain == "btc" && t == curve.Secp256k1Type:
		return address.NewBTCGenerator(nil).PubKeyToAddress(pub)
	case chain == "sol" && t == curve.Ed25519Type:
		return address.NewSOLGenerator().PubKeyToAddress(pub)
	}
	return "", fmt.Errorf("%w: chain %q, curve %s", ErrUnsupportedOp, chain, entry.Metadata.Curve)
}

// DisableKey 禁用密钥，之后的签名、导出都会返回 ErrKeyDisabled
func (kms *LocalKMS) DisableKey(keyID string) error {
	kms.mu.Lock()
	defer kms.mu.Unlock()

	entry, exists := kms.keys[keyID]
	if !exists {
		return ErrKeyNotFound
	}
	if entry.Metadata.Enabled {
		entry.Metadata.Enabled = false
		kms.metrics.ActiveKeys.WithLabelValues(entry.Metadata.Curve).Dec()
	}
	return nil
}
