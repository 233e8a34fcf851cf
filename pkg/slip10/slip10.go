// Package slip10 实现 SLIP-0010 的 Ed25519 分层确定性派生。
//
// Ed25519 没有公钥派生，所有路径段都必须是强化索引，任何普通段都会返回参数错误。
// 节点是不可变值，每次派生返回新的节点。
package slip10

import (
	"crypto/ed25519"
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"

	"wallet-keycore/pkg/bip32"
	"wallet-keycore/pkg/crypto_util"
	"wallet-keycore/pkg/curve"
	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/logger"
	"wallet-keycore/pkg/monitor"
)

var masterHMACKey = []byte("ed25519 seed")

const (
	MinSeedBytes = bip32.MinSeedBytes
	MaxSeedBytes = bip32.MaxSeedBytes

	maxDepth = 255
)

var (
	ErrInvalidSeed = fmt.Errorf("%w: 无效的种子", errno.ErrInvalidArgument)
	ErrNotHardened = fmt.Errorf("%w: ed25519 只支持强化派生", errno.ErrInvalidArgument)
	ErrMaxDepth    = fmt.Errorf("%w: 超过最大派生深度 255", errno.ErrInvalidArgument)
)

// Node SLIP-0010 ed25519 节点
type Node struct {
	privateKey        []byte // 32 字节种子
	publicKey         []byte // 32 字节 ed25519 公钥
	chainCode         []byte
	depth             uint8
	path              string
	parentFingerprint uint32
	childIndex        uint32
}

var _ bip32.HDKey = (*Node)(nil)

// FromSeed 由种子生成主节点: I = HMAC-SHA512("ed25519 seed", seed)
func FromSeed(seed []byte) (*Node, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, fmt.Errorf("%w: 长度必须在 %d~%d 字节之间，实际 %d",
			ErrInvalidSeed, MinSeedBytes, MaxSeedBytes, len(seed))
	}
	I := crypto_util.HmacSHA512(masterHMACKey, seed)
	return newNode(I[:32], I[32:], 0, "m", 0, 0), nil
}

func newNode(priv, chainCode []byte, depth uint8, path string, parentFP, childIndex uint32) *Node {
	pub := ed25519.NewKeyFromSeed(priv).Public().(ed25519.PublicKey)
	n := &Node{
		privateKey:        make([]byte, 32),
		publicKey:         make([]byte, 32),
		chainCode:         make([]byte, 32),
		depth:             depth,
		path:              path,
		parentFingerprint: parentFP,
		childIndex:        childIndex,
	}
	copy(n.privateKey, priv)
	copy(n.publicKey, pub)
	copy(n.chainCode, chainCode)
	return n
}

// DeriveChild 派生强化子节点，index 必须 >= 2^31
func (n *Node) DeriveChild(index uint32) (*Node, error) {
	if index < bip32.HardenedKeyStart {
		return nil, fmt.Errorf("%w: index %d", ErrNotHardened, index)
	}
	if n.depth == maxDepth {
		return nil, ErrMaxDepth
	}

	data := make([]byte, 37)
	copy(data[1:33], n.privateKey)
	binary.BigEndian.PutUint32(data[33:], index)

	I := crypto_util.HmacSHA512(n.chainCode, data)
	path := n.path + "/" + bip32.SegmentFromIndex(index).String()
	return newNode(I[:32], I[32:], n.depth+1, path, n.Fingerprint(), index), nil
}

// Derive 解析路径并逐段派生，路径中出现普通段时直接失败
func (n *Node) Derive(path string) (*Node, error) {
	p, err := bip32.ParsePath(path)
	if err != nil {
		return nil, err
	}
	return n.DerivePath(p)
}

func (n *Node) DerivePath(path bip32.DerivationPath) (*Node, error) {
	for _, s := range path {
		if !s.Hardened {
			return nil, fmt.Errorf("%w: 路径 %s 包含普通段 %s", ErrNotHardened, path, s)
		}
	}

	current := n
	for _, s := range path {
		next, err := current.DeriveChild(s.ChildIndex())
		if err != nil {
			return nil, err
		}
		current = next
	}
	monitor.HDDerivationsTotal.WithLabelValues("slip10").Inc()
	logger.Debug("slip10 derive", zap.String("path", current.path), zap.Uint8("depth", current.depth))
	return current, nil
}

// PrivateKey 返回 32 字节私钥 (ed25519 种子) 副本
func (n *Node) PrivateKey() []byte { return clone(n.privateKey) }

// PublicKey 返回 32 字节 ed25519 公钥副本
func (n *Node) PublicKey() []byte { return clone(n.publicKey) }

// PaddedPublicKey 返回 SLIP-0010 格式的 33 字节公钥 (0x00 || pub)
func (n *Node) PaddedPublicKey() []byte {
	return append([]byte{0x00}, n.publicKey...)
}

func (n *Node) ChainCode() []byte { return clone(n.chainCode) }
func (n *Node) Depth() uint8 { return n.depth }
func (n *Node) Path() string { return n.path }
func (n *Node) ChildIndex() uint32 { return n.childIndex }
func (n *Node) ParentFingerprint() uint32 { return n.parentFingerprint }

// Fingerprint hash160(0x00 || pub) 的前 4 字节
func (n *Node) Fingerprint() uint32 {
	return binary.BigEndian.Uint32(crypto_util.Hash160(n.PaddedPublicKey())[:4])
}

// KeyPair 返回可用于签名的 ed25519 密钥对
func (n *Node) KeyPair() (*curve.KeyPair, error) {
	return curve.NewKeyPair(curve.MustGet(curve.Ed25519Type.String()), n.privateKey)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
