package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-keycore/pkg/bip32"
	"wallet-keycore/pkg/cache"
)

func accountKey(t *testing.T, path string) *bip32.ExtendedKey {
	t.Helper()
	master, err := bip32.FromSeed(testSeed())
	require.NoError(t, err)
	key, err := master.Derive(path)
	require.NoError(t, err)
	return key
}

func TestWatchOnlyMatchesPrivateDerivation(t *testing.T) {
	account := accountKey(t, "m/44'/60'/0'")
	c := cache.NewMemoryCache[string](time.Minute, time.Minute)

	w, err := NewWatchOnly(account.XPub(), c)
	require.NoError(t, err)

	addr, err := w.ETHAddress(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", addr)

	// 第二次命中缓存
	again, err := w.ETHAddress(0, 0)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, 1, c.Len())

	full := accountKey(t, "m/44'/60'/0'/0/5")
	pub, err := w.PublicKey(0, 5)
	require.NoError(t, err)
	assert.Equal(t, full.PublicKey(), pub)
}

func TestWatchOnlyFromXPrv(t *testing.T) {
	account := accountKey(t, "m/84'/0'/0'")
	xprv, err := account.XPrv()
	require.NoError(t, err)

	w, err := NewWatchOnly(xprv, nil)
	require.NoError(t, err)
	assert.Equal(t, account.XPub(), w.XPub())

	addr, err := w.BTCAddress(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", addr)
}

func TestWatchOnlyRejectsHardened(t *testing.T) {
	w, err := NewWatchOnly(accountKey(t, "m/44'/60'/0'").XPub(), nil)
	require.NoError(t, err)

	_, err = w.ETHAddress(0, bip32.HardenedKeyStart)
	assert.ErrorIs(t, err, bip32.ErrDeriveHardFromPublic)

	_, err = NewWatchOnly("xpub-invalid", nil)
	assert.Error(t, err)
}
