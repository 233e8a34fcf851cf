package address

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"wallet-keycore/pkg/crypto_util"
	"wallet-keycore/pkg/errno"
)

// BTCGenerator 比特币地址生成器
type BTCGenerator struct {
	network *chaincfg.Params
}

// NewBTCGenerator network 为空时使用主网
func NewBTCGenerator(network *chaincfg.Params) *BTCGenerator {
	if network == nil {
		network = &chaincfg.MainNetParams
	}
	return &BTCGenerator{network: network}
}

// PubKeyToAddress 将公钥字节转换为 P2PKH 地址 (1...)
func (g *BTCGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKey(pubKeyBytes, g.network)
	if err != nil {
		return "", errno.ErrInvalidArgument.Wrapf("btc public key: %v", err)
	}
	return addr.AddressPubKeyHash().EncodeAddress(), nil
}

// PubKeyToSegwitAddress 将压缩公钥转换为 P2WPKH 地址 (bc1q...)
func (g *BTCGenerator) PubKeyToSegwitAddress(pubKeyBytes []byte) (string, error) {
	if len(pubKeyBytes) != 33 {
		return "", errno.ErrInvalidArgument.Wrapf("segwit requires a 33-byte compressed public key, got %d", len(pubKeyBytes))
	}
	addr, err := btcutil.NewAddressWitnessPubKeyHash(crypto_util.Hash160(pubKeyBytes), g.network)
	if err != nil {
		return "", errno.ErrInvalidArgument.Wrapf("btc public key: %v", err)
	}
	return addr.EncodeAddress(), nil
}
