package monitor

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))

	ObserveKDF("scrypt", time.Now().Add(-10*time.Millisecond))
	KeystoreDecryptFailures.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["keycore_kdf_duration_seconds"])
	assert.True(t, names["keycore_keystore_decrypt_failures_total"])
}

func TestKMSMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewKMSMetrics(reg)

	m.SignTotal.WithLabelValues("secp256k1").Inc()
	m.SignTotal.WithLabelValues("secp256k1").Inc()
	m.ActiveKeys.WithLabelValues("ed25519").Set(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SignTotal.WithLabelValues("secp256k1")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveKeys.WithLabelValues("ed25519")))

	// 不注册时也可以正常计数
	unregistered := NewKMSMetrics(nil)
	unregistered.KeysCreatedTotal.WithLabelValues("sr25519").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(unregistered.KeysCreatedTotal.WithLabelValues("sr25519")))
}
