package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"wallet-keycore/pkg/address"
	"wallet-keycore/pkg/bip32"
	"wallet-keycore/pkg/cache"
)

// WatchOnly 只持有账户级扩展公钥 (例如 m/44'/60'/0' 的 xpub)，
// 通过公钥派生得到 change/index 下的地址，不接触任何私钥。
type WatchOnly struct {
	account *bip32.ExtendedKey
	xpub    string
	cache   cache.Cache[string]
}

// NewWatchOnly 解析 xpub (传入 xprv 时自动去掉私钥)。c 为 nil 时使用内存缓存。
func NewWatchOnly(extendedKey string, c cache.Cache[string]) (*WatchOnly, error) {
	key, err := bip32.ParseExtendedKey(extendedKey)
	if err != nil {
		return nil, err
	}
	key = key.Neuter()
	if c == nil {
		c = cache.NewMemoryCache[string](cache.DefaultExpiration, cache.CleanupInterval)
	}
	return &WatchOnly{account: key, xpub: key.XPub(), cache: c}, nil
}

func (w *WatchOnly) XPub() string { return w.xpub }

// PublicKey 派生 change/index 的压缩公钥，两者都必须是普通索引
func (w *WatchOnly) PublicKey(change, index uint32) ([]byte, error) {
	key, err := w.account.DeriveChild(change)
	if err != nil {
		return nil, err
	}
	key, err = key.DeriveChild(index)
	if err != nil {
		return nil, err
	}
	return key.PublicKey(), nil
}

// ETHAddress EIP-55 地址
func (w *WatchOnly) ETHAddress(change, index uint32) (string, error) {
	return w.cachedAddress("eth", change, index, address.NewETHGenerator().PubKeyToAddress)
}

// BTCAddress P2WPKH 地址
func (w *WatchOnly) BTCAddress(change, index uint32) (string, error) {
	gen := address.NewBTCGenerator(&chaincfg.MainNetParams)
	return w.cachedAddress("btc", change, index, gen.PubKeyToSegwitAddress)
}

func (w *WatchOnly) cachedAddress(chain string, change, index uint32, encode func([]byte) (string, error)) (string, error) {
	key := fmt.Sprintf("%s/%s/%d/%d", w.xpub, chain, change, index)
	return w.cache.GetOrLoad(key, 0, func() (string, error) {
		pub, err := w.PublicKey(change, index)
		if err != nil {
			return "", err
		}
		return encode(pub)
	})
}
