package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// KMSMetrics 密钥管理服务的业务指标，每个 KMS 实例持有一份
type KMSMetrics struct {
	KeysCreatedTotal *prometheus.CounterVec
	SignTotal        *prometheus.CounterVec
	SignFailedTotal  *prometheus.CounterVec
	ActiveKeys       *prometheus.GaugeVec
}

// NewKMSMetrics 创建 KMS 指标。reg 为 nil 时指标不注册，只在内存中计数。
func NewKMSMetrics(reg prometheus.Registerer) *KMSMetrics {
	factory := promauto.With(reg)
	return &KMSMetrics{
		KeysCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "keycore_kms_keys_created_total",
			Help: "The total number of keys created or imported",
		}, []string{"curve"}),
		SignTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "keycore_kms_sign_total",
			Help: "The total number of signatures produced",
		}, []string{"curve"}),
		SignFailedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "keycore_kms_sign_failed_total",
			Help: "The total number of failed sign requests",
		}, []string{"curve"}),
		ActiveKeys: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "keycore_kms_active_keys",
			Help: "Enabled keys currently held by the KMS",
		}, []string{"curve"}),
	}
}
