// Package cache 进程内缓存，只用于公开数据 (公钥、地址)，不得存放私钥或种子。
package cache

import "time"

// Cache 定义通用缓存接口
type Cache[T any] interface {
	// Set 设置缓存，ttl 为 0 时使用默认过期时间
	Set(key string, value T, ttl time.Duration)
	// Get 获取缓存
	Get(key string) (T, bool)
	// GetOrLoad 未命中时调用 load 并缓存结果，load 返回错误时不缓存
	GetOrLoad(key string, ttl time.Duration, load func() (T, error)) (T, error)
	// Delete 删除缓存
	Delete(key string)
}
