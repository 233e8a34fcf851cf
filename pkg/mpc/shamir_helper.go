package mpc

import (
	"encoding/hex"
	"strings"

	"github.com/hashicorp/vault/shamir"
	"go.uber.org/zap"

	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/logger"
)

const (
	MinThreshold = 2
	MaxParts     = 255
)

// SplitBytes 将私钥或种子切分为 parts 个 Share，至少需要 threshold 个才能恢复。
// 每个 Share 的最后一个字节是 X 坐标，长度为 len(secret)+1。
func SplitBytes(secret []byte, parts, threshold int) ([][]byte, error) {
	switch {
	case len(secret) == 0:
		return nil, errno.ErrInvalidArgument.Wrapf("secret must not be empty")
	case threshold < MinThreshold || threshold > parts:
		return nil, errno.ErrInvalidArgument.Wrapf("threshold must be in [%d, %d], got %d", MinThreshold, parts, threshold)
	case parts > MaxParts:
		return nil, errno.ErrInvalidArgument.Wrapf("parts must be <= %d, got %d", MaxParts, parts)
	}

	shares, err := shamir.Split(secret, parts, threshold)
	if err != nil {
		return nil, errno.ErrInternal.Wrapf("shamir split: %v", err)
	}
	logger.Component("mpc").Debug("secret split",
		zap.Int("parts", parts),
		zap.Int("threshold", threshold),
		logger.Redacted("secret", secret),
	)
	return shares, nil
}

// CombineBytes 从至少 threshold 个 Share 恢复原始数据。
// Share 数量不足时无法检测，结果会是错误的数据。
func CombineBytes(shares [][]byte) ([]byte, error) {
	if len(shares) < MinThreshold {
		return nil, errno.ErrInvalidArgument.Wrapf("need at least %d shares, got %d", MinThreshold, len(shares))
	}
	secret, err := shamir.Combine(shares)
	if err != nil {
		// 长度不一致、X 坐标重复等
		return nil, errno.ErrInvalidArgument.Wrapf("shamir combine: %v", err)
	}
	return secret, nil
}

// Split 将私钥切分为 N 个部分，至少需要 M 个才能恢复
// secretHex: 原始私钥 (Hex String)
// return: N 个 Share (Hex String)
func Split(secretHex string, parts, threshold int) ([]string, error) {
	secret, err := decodeHex(secretHex)
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("invalid secret hex: %v", err)
	}

	sharesBytes, err := SplitBytes(secret, parts, threshold)
	if err != nil {
		return nil, err
	}

	shares := make([]string, 0, len(sharesBytes))
	for _, share := range sharesBytes {
		shares = append(shares, hex.EncodeToString(share))
	}
	return shares, nil
}

// Recover 从 M 个 Shares 中恢复私钥 (Hex String)
func Recover(sharesHex []string) (string, error) {
	sharesBytes := make([][]byte, 0, len(sharesHex))
	for i, s := range sharesHex {
		b, err := decodeHex(s)
		if err != nil {
			return "", errno.ErrInvalidArgument.Wrapf("invalid share #%d hex: %v", i, err)
		}
		sharesBytes = append(sharesBytes, b)
	}

	secret, err := CombineBytes(sharesBytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(secret), nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
}
