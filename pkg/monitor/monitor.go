package monitor

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// KDFDuration 记录 KDF 耗时 (Histogram)，scrypt 的耗时与参数强相关
	KDFDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keycore_kdf_duration_seconds",
			Help:    "Key derivation function latency distributions.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"kdf"},
	)

	// KeystoreOperationsTotal 记录 keystore 加解密次数
	KeystoreOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keycore_keystore_operations_total",
			Help: "Total number of keystore encrypt/decrypt operations.",
		},
		[]string{"op", "kdf"},
	)

	// KeystoreDecryptFailures MAC 校验失败 (密码错误) 次数
	KeystoreDecryptFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "keycore_keystore_decrypt_failures_total",
			Help: "Total number of keystore decryptions rejected by MAC check.",
		},
	)

	// HDDerivationsTotal 记录 HD 派生次数
	HDDerivationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keycore_hd_derivations_total",
			Help: "Total number of hierarchical deterministic path derivations.",
		},
		[]string{"scheme"},
	)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		KDFDuration,
		KeystoreOperationsTotal,
		KeystoreDecryptFailures,
		HDDerivationsTotal,
	}
}

// Register 将指标注册到给定的 Registerer，重复注册会被忽略
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}

// Init 初始化并注册监控指标到默认 Registry
func Init() {
	if err := Register(prometheus.DefaultRegisterer); err != nil {
		panic(err)
	}
}

// ObserveKDF 记录一次 KDF 的耗时
func ObserveKDF(kdf string, start time.Time) {
	KDFDuration.WithLabelValues(kdf).Observe(time.Since(start).Seconds())
}
