package address

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-keycore/pkg/curve"
	"wallet-keycore/pkg/errno"
)

func privOne() []byte {
	k := make([]byte, 32)
	k[31] = 1
	return k
}

func TestETHAddress(t *testing.T) {
	g := NewETHGenerator()

	addr, err := g.PrivateKeyToAddress(privOne())
	require.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", addr)

	// 压缩与非压缩公钥得到同一地址
	c := &curve.Secp256k1{}
	compressed, err := c.PublicKey(privOne(), true)
	require.NoError(t, err)
	fromCompressed, err := g.PubKeyToAddress(compressed)
	require.NoError(t, err)
	assert.Equal(t, addr, fromCompressed)

	_, err = g.PubKeyToAddress([]byte{1, 2, 3})
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
}

func TestETHAddressMatchesGoEthereum(t *testing.T) {
	g := NewETHGenerator()
	for i := 0; i < 8; i++ {
		kp, err := curve.GenerateKeyPair(curve.MustGet("secp256k1"))
		require.NoError(t, err)

		ours, err := g.PrivateKeyToAddress(kp.PrivateKey())
		require.NoError(t, err)

		key, err := crypto.ToECDSA(kp.PrivateKey())
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), ours)
	}
}

func TestChecksumAddress(t *testing.T) {
	// EIP-55 示例
	for _, want := range []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	} {
		got, err := ChecksumAddress(strings.ToLower(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ChecksumAddress("0x1234")
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
}

func TestBTCAddress(t *testing.T) {
	g := NewBTCGenerator(&chaincfg.MainNetParams)
	c := &curve.Secp256k1{}

	compressed, err := c.PublicKey(privOne(), true)
	require.NoError(t, err)
	addr, err := g.PubKeyToAddress(compressed)
	require.NoError(t, err)
	assert.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", addr)

	uncompressed, err := c.PublicKey(privOne(), false)
	require.NoError(t, err)
	addr, err = g.PubKeyToAddress(uncompressed)
	require.NoError(t, err)
	assert.Equal(t, "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm", addr)

	segwit, err := g.PubKeyToSegwitAddress(compressed)
	require.NoError(t, err)
	assert.Equal(t, "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", segwit)

	_, err = g.PubKeyToSegwitAddress(uncompressed)
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
}

func TestSOLAddress(t *testing.T) {
	g := NewSOLGenerator()

	addr, err := g.PubKeyToAddress(make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, "11111111111111111111111111111111", addr)

	pub, _ := hex.DecodeString("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	addr, err = g.PubKeyToAddress(pub)
	require.NoError(t, err)
	back, err := g.AddressToPubKey(addr)
	require.NoError(t, err)
	assert.Equal(t, pub, back)

	_, err = g.AddressToPubKey("0OIl")
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
	_, err = g.PubKeyToAddress(pub[:31])
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
}
