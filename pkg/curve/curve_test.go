package curve

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-keycore/pkg/crypto_util"
	"wallet-keycore/pkg/errno"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFactory(t *testing.T) {
	for _, name := range []string{"secp256k1", "ED25519", " sr25519 "} {
		c, err := Get(name)
		require.NoError(t, err, name)
		assert.NotNil(t, c)
	}

	_, err := Get("p256")
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	_, err = ByType(Type(42))
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	assert.Equal(t, []string{"ed25519", "secp256k1", "sr25519"}, Names())
	assert.True(t, SupportsRecovery(MustGet("secp256k1")))
	assert.False(t, SupportsRecovery(MustGet("ed25519")))
	assert.False(t, SupportsRecovery(MustGet("sr25519")))
	assert.Panics(t, func() { MustGet("nope") })
}

func TestMetadata(t *testing.T) {
	cases := []struct {
		name                        string
		priv, pubC, pubU, signature int
	}{
		{"secp256k1", 32, 33, 65, 65},
		{"ed25519", 32, 32, 32, 64},
		{"sr25519", 32, 32, 32, 64},
	}
	for _, tc := range cases {
		c := MustGet(tc.name)
		assert.Equal(t, tc.name, c.Name())
		assert.Equal(t, tc.name, c.Type().String())
		assert.Equal(t, tc.priv, c.PrivateKeyLength())
		assert.Equal(t, tc.pubC, c.PublicKeyLength(true))
		assert.Equal(t, tc.pubU, c.PublicKeyLength(false))
		assert.Equal(t, tc.signature, c.SignatureLength())
	}
}

// 所有曲线: verify(sign(h, k), h, pub(k)) 成立；换哈希或换公钥后失败
func TestSignVerifyAllCurves(t *testing.T) {
	hash := crypto_util.Keccak256([]byte("hello wallet"))
	otherHash := crypto_util.Keccak256([]byte("hello wallet!"))

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c := MustGet(name)
			kp, err := GenerateKeyPair(c)
			require.NoError(t, err)
			other, err := GenerateKeyPair(c)
			require.NoError(t, err)

			sig, err := kp.Sign(hash)
			require.NoError(t, err)
			assert.Len(t, sig, c.SignatureLength())

			assert.True(t, c.Verify(sig, hash, kp.PublicKey()))
			assert.True(t, kp.Verify(sig, hash))
			assert.False(t, c.Verify(sig, otherHash, kp.PublicKey()))
			assert.False(t, c.Verify(sig, hash, other.PublicKey()))
			assert.False(t, c.Verify(sig[:10], hash, kp.PublicKey()))
			assert.False(t, c.Verify(sig, hash, []byte{1, 2, 3}))
		})
	}
}

func TestPublicKeyIsPure(t *testing.T) {
	for _, name := range Names() {
		c := MustGet(name)
		kp, err := GenerateKeyPair(c)
		require.NoError(t, err)

		a, err := c.PublicKey(kp.PrivateKey(), true)
		require.NoError(t, err)
		b, err := c.PublicKey(kp.PrivateKey(), true)
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
		assert.Equal(t, kp.PublicKey(), a, name)
	}
}

func TestRejectsZeroAndWrongLengthKeys(t *testing.T) {
	for _, name := range Names() {
		c := MustGet(name)

		_, err := c.PublicKey(make([]byte, 32), true)
		assert.ErrorIs(t, err, errno.ErrInvalidArgument, name)

		_, err = c.PublicKey(make([]byte, 31), true)
		assert.ErrorIs(t, err, errno.ErrInvalidArgument, name)

		_, err = c.Sign(make([]byte, 32), make([]byte, 32))
		assert.ErrorIs(t, err, errno.ErrInvalidArgument, name)
	}
}

func TestKeyPairAccessorsReturnCopies(t *testing.T) {
	kp, err := GenerateKeyPair(MustGet("ed25519"))
	require.NoError(t, err)

	priv := kp.PrivateKey()
	priv[0] ^= 0xff
	assert.NotEqual(t, priv, kp.PrivateKey())

	pub := kp.PublicKey()
	pub[0] ^= 0xff
	assert.NotEqual(t, pub, kp.PublicKey())
}

// RFC 8032 §7.1 TEST 1
func TestEd25519RFC8032Vector(t *testing.T) {
	c := MustGet("ed25519")
	priv := mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")

	pub, err := c.PublicKey(priv, true)
	require.NoError(t, err)
	assert.Equal(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", hex.EncodeToString(pub))

	sig, err := c.Sign(nil, priv)
	require.NoError(t, err)
	assert.Equal(t,
		"e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
		hex.EncodeToString(sig))
	assert.True(t, c.Verify(sig, nil, pub))
}

func TestSr25519SignaturesAreRandomized(t *testing.T) {
	c := MustGet("sr25519")
	kp, err := GenerateKeyPair(c)
	require.NoError(t, err)

	msg := []byte("substrate payload")
	a, err := kp.Sign(msg)
	require.NoError(t, err)
	b, err := kp.Sign(msg)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(a, b))
	assert.True(t, kp.Verify(a, msg))
	assert.True(t, kp.Verify(b, msg))
}
