package safe_random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

// Reader 是全局共享的加密安全随机源，默认为 crypto/rand.Reader。
// 测试中可以替换为确定性的 Reader。
var Reader io.Reader = rand.Reader

// GenerateRandomBytes 从 Reader 读取 n 个安全随机字节。
func GenerateRandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("随机字节长度必须为正数: %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, fmt.Errorf("生成随机字节失败: %w", err)
	}
	return b, nil
}

// GenerateRandomHexString 生成 n 字节随机数的 Hex 编码 (长度为 2n)。
func GenerateRandomHexString(n int) (string, error) {
	b, err := GenerateRandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateRandomInt 生成一个 [0, max) 范围内的均匀随机值。
func GenerateRandomInt(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, fmt.Errorf("最大值必须为正数")
	}
	return rand.Int(Reader, max)
}

// GenerateScalar 生成 [1, order) 范围内的标量，按 size 字节大端编码。
// 用于生成 secp256k1 等曲线的私钥。
func GenerateScalar(order *big.Int, size int) ([]byte, error) {
	if order == nil || order.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("曲线阶必须大于 1")
	}
	upper := new(big.Int).Sub(order, big.NewInt(1))
	n, err := GenerateRandomInt(upper)
	if err != nil {
		return nil, fmt.Errorf("生成标量失败: %w", err)
	}
	n.Add(n, big.NewInt(1))

	out := make([]byte, size)
	n.FillBytes(out)
	return out, nil
}
