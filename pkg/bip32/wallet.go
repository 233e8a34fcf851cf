package bip32

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"

	"wallet-keycore/pkg/crypto_util"
	"wallet-keycore/pkg/logger"
	"wallet-keycore/pkg/monitor"
)

// masterHMACKey BIP-32 主密钥 HMAC key
var masterHMACKey = []byte("Bitcoin seed")

const (
	MinSeedBytes = hdkeychain.MinSeedBytes // 16
	MaxSeedBytes = hdkeychain.MaxSeedBytes // 64

	maxDepth = 255
)

// ExtendedKey BIP-32 扩展密钥 (secp256k1)。
// 值一旦构造就不再改变，每次派生都返回新的节点。privateKey 为空表示扩展公钥。
type ExtendedKey struct {
	privateKey        []byte
	publicKey         []byte // 33 字节压缩公钥
	chainCode         []byte
	depth             uint8
	path              string
	parentFingerprint uint32
	childIndex        uint32
	network           *chaincfg.Params
}

var _ HDKey = (*ExtendedKey)(nil)

// NewMasterKeyFromSeed 使用 BIP-39 种子生成主密钥
// network: 为空时使用 chaincfg.MainNetParams，只影响序列化和地址
func NewMasterKeyFromSeed(seed []byte, network *chaincfg.Params) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, fmt.Errorf("%w: 长度必须在 %d~%d 字节之间，实际 %d",
			ErrInvalidSeed, MinSeedBytes, MaxSeedBytes, len(seed))
	}
	if network == nil {
		network = &chaincfg.MainNetParams
	}

	I := crypto_util.HmacSHA512(masterHMACKey, seed)
	il, ir := I[:32], I[32:]

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(il); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: 主私钥越界", ErrInvalidSeed)
	}

	return newPrivateKey(il, ir, 0, "m", 0, 0, network), nil
}

// FromSeed 与 NewMasterKeyFromSeed 相同，使用主网参数
func FromSeed(seed []byte) (*ExtendedKey, error) {
	return NewMasterKeyFromSeed(seed, nil)
}

func newPrivateKey(priv, chainCode []byte, depth uint8, path string,
	parentFP, childIndex uint32, network *chaincfg.Params) *ExtendedKey {
	_, pub := btcec.PrivKeyFromBytes(priv)
	return &ExtendedKey{
		privateKey:        cloneBytes(priv),
		publicKey:         pub.SerializeCompressed(),
		chainCode:         cloneBytes(chainCode),
		depth:             depth,
		path:              path,
		parentFingerprint: parentFP,
		childIndex:        childIndex,
		network:           network,
	}
}

// DeriveChild 派生单个子密钥。index >= 2^31 为强化派生，需要私钥。
func (k *ExtendedKey) DeriveChild(index uint32) (*ExtendedKey, error) {
	if k.depth == maxDepth {
		return nil, ErrDeriveBeyondMaxDepth
	}

	hardened := index >= HardenedKeyStart
	if hardened && !k.IsPrivate() {
		return nil, ErrDeriveHardFromPublic
	}

	// 强化: 0x00 || kpar || index，普通: serP(Kpar) || index
	data := make([]byte, 37)
	if hardened {
		copy(data[1:33], k.privateKey)
	} else {
		copy(data[:33], k.publicKey)
	}
	binary.BigEndian.PutUint32(data[33:], index)

	I := crypto_util.HmacSHA512(k.chainCode, data)
	il, ir := I[:32], I[32:]

	var ilNum btcec.ModNScalar
	if overflow := ilNum.SetByteSlice(il); overflow {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidChild, index)
	}

	childPath := k.path + "/" + SegmentFromIndex(index).String()
	fp := k.Fingerprint()

	if k.IsPrivate() {
		var kpar btcec.ModNScalar
		kpar.SetByteSlice(k.privateKey)
		ilNum.Add(&kpar)
		if ilNum.IsZero() {
			return nil, fmt.Errorf("%w: index %d", ErrInvalidChild, index)
		}
		childKey := ilNum.Bytes()
		return newPrivateKey(childKey[:], ir, k.depth+1, childPath, fp, index, k.network), nil
	}

	// 公钥派生: Ki = point(IL) + Kpar
	parent, err := btcec.ParsePubKey(k.publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChild, err)
	}
	var ilPoint, parentPoint, sum btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&ilNum, &ilPoint)
	parent.AsJacobian(&parentPoint)
	btcec.AddNonConst(&ilPoint, &parentPoint, &sum)
	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidChild, index)
	}
	sum.ToAffine()

	return &ExtendedKey{
		publicKey:         btcec.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed(),
		chainCode:         cloneBytes(ir),
		depth:             k.depth + 1,
		path:              childPath,
		parentFingerprint: fp,
		childIndex:        index,
		network:           k.network,
	}, nil
}

// Derive 解析路径并逐段派生。路径中的 "m" 表示当前节点，遇到第一个失败的段即返回。
func (k *ExtendedKey) Derive(path string) (*ExtendedKey, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return k.DerivePath(p)
}

// DerivePath 按已解析的路径派生
func (k *ExtendedKey) DerivePath(path DerivationPath) (*ExtendedKey, error) {
	current := k
	for _, segment := range path {
		next, err := current.DeriveChild(segment.ChildIndex())
		if err != nil {
			return nil, err
		}
		current = next
	}
	monitor.HDDerivationsTotal.WithLabelValues("bip32").Inc()
	logger.Debug("bip32 derive", zap.String("path", current.path), zap.Uint8("depth", current.depth))
	return current, nil
}

// Neuter 返回对应的扩展公钥
func (k *ExtendedKey) Neuter() *ExtendedKey {
	return &ExtendedKey{
		publicKey:         cloneBytes(k.publicKey),
		chainCode:         cloneBytes(k.chainCode),
		depth:             k.depth,
		path:              k.path,
		parentFingerprint: k.parentFingerprint,
		childIndex:        k.childIndex,
		network:           k.network,
	}
}

func (k *ExtendedKey) IsPrivate() bool { return len(k.privateKey) != 0 }

// PrivateKey 返回私钥副本，扩展公钥返回 nil
func (k *ExtendedKey) PrivateKey() []byte { return cloneBytes(k.privateKey) }

// PublicKey 返回 33 字节压缩公钥副本
func (k *ExtendedKey) PublicKey() []byte { return cloneBytes(k.publicKey) }

func (k *ExtendedKey) ChainCode() []byte { return cloneBytes(k.chainCode) }
func (k *ExtendedKey) Depth() uint8 { return k.depth }
func (k *ExtendedKey) Path() string { return k.path }
func (k *ExtendedKey) ChildIndex() uint32 { return k.childIndex }
func (k *ExtendedKey) ParentFingerprint() uint32 { return k.parentFingerprint }

// Fingerprint 公钥 hash160 的前 4 字节
func (k *ExtendedKey) Fingerprint() uint32 {
	return binary.BigEndian.Uint32(crypto_util.Hash160(k.publicKey)[:4])
}

// ECPubKey 用于获取底层的 EC 公钥
func (k *ExtendedKey) ECPubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(k.publicKey)
}

// ECPrivKey 用于获取底层的 EC 私钥 (用于签名)
func (k *ExtendedKey) ECPrivKey() (*btcec.PrivateKey, error) {
	if !k.IsPrivate() {
		return nil, ErrNotPrivate
	}
	priv, _ := btcec.PrivKeyFromBytes(k.privateKey)
	return priv, nil
}

// Address 返回 P2PKH 地址
func (k *ExtendedKey) Address() (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(k.publicKey), k.network)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// XPrv 返回 Base58Check 编码的扩展私钥 (xprv...)
func (k *ExtendedKey) XPrv() (string, error) {
	if !k.IsPrivate() {
		return "", ErrNotPrivate
	}
	return k.serialize(k.network.HDPrivateKeyID[:], k.privateKey, true), nil
}

// XPub 返回 Base58Check 编码的扩展公钥 (xpub...)
func (k *ExtendedKey) XPub() string {
	return k.serialize(k.network.HDPublicKeyID[:], k.publicKey, false)
}

func (k *ExtendedKey) serialize(version, key []byte, private bool) string {
	parentFP := make([]byte, 4)
	binary.BigEndian.PutUint32(parentFP, k.parentFingerprint)
	return hdkeychain.NewExtendedKey(version, key, k.chainCode, parentFP, k.depth, k.childIndex, private).String()
}

// String 返回扩展公钥，避免私钥被意外打印
func (k *ExtendedKey) String() string {
	return k.XPub()
}

var knownNetworks = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SimNetParams,
}

// ParseExtendedKey 解析 xprv/xpub 字符串。
// 序列化格式不含完整路径，深度 0 时路径为 "m"，否则为空。
func ParseExtendedKey(s string) (*ExtendedKey, error) {
	key, err := hdkeychain.NewKeyFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtendedKey, err)
	}

	var network *chaincfg.Params
	for _, params := range knownNetworks {
		if key.IsForNet(params) {
			network = params
			break
		}
	}
	if network == nil {
		return nil, fmt.Errorf("%w: 未知的网络版本", ErrInvalidExtendedKey)
	}

	path := ""
	if key.Depth() == 0 {
		path = "m"
	}
	ext := &ExtendedKey{
		chainCode:         key.ChainCode(),
		depth:             key.Depth(),
		path:              path,
		parentFingerprint: key.ParentFingerprint(),
		childIndex:        key.ChildIndex(),
		network:           network,
	}

	pub, err := key.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtendedKey, err)
	}
	ext.publicKey = pub.SerializeCompressed()

	if key.IsPrivate() {
		priv, err := key.ECPrivKey()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidExtendedKey, err)
		}
		b := priv.Key.Bytes()
		ext.privateKey = b[:]
	}
	return ext, nil
}

// Wallet 实现 HDWallet 接口
type Wallet struct {
	masterKey *ExtendedKey
}

var _ HDWallet = (*Wallet)(nil)

// NewWallet 由种子创建钱包
func NewWallet(seed []byte, network *chaincfg.Params) (*Wallet, error) {
	master, err := NewMasterKeyFromSeed(seed, network)
	if err != nil {
		return nil, err
	}
	return &Wallet{masterKey: master}, nil
}

func (w *Wallet) MasterKey() *ExtendedKey {
	return w.masterKey
}

// DerivePath 解析路径并派生密钥
func (w *Wallet) DerivePath(path string) (*ExtendedKey, error) {
	return w.masterKey.Derive(path)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
