package bip32

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedKeyStart 强化派生索引起点 (2^31)
const HardenedKeyStart uint32 = 0x80000000

// Segment 派生路径中的一段
type Segment struct {
	Index    uint32 // 不含强化偏移的原始索引，< 2^31
	Hardened bool
}

// ChildIndex 返回实际参与 HMAC 的索引 (强化时加 2^31)
func (s Segment) ChildIndex() uint32 {
	if s.Hardened {
		return s.Index + HardenedKeyStart
	}
	return s.Index
}

func (s Segment) String() string {
	if s.Hardened {
		return strconv.FormatUint(uint64(s.Index), 10) + "'"
	}
	return strconv.FormatUint(uint64(s.Index), 10)
}

// SegmentFromIndex 由实际索引还原路径段
func SegmentFromIndex(index uint32) Segment {
	if index >= HardenedKeyStart {
		return Segment{Index: index - HardenedKeyStart, Hardened: true}
	}
	return Segment{Index: index}
}

// DerivationPath 有序的派生路径，例如 m/44'/60'/0'/0/0
type DerivationPath []Segment

func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// HardenedOnly 路径中每一段是否都是强化派生
func (p DerivationPath) HardenedOnly() bool {
	for _, s := range p {
		if !s.Hardened {
			return false
		}
	}
	return true
}

// ParsePath 解析派生路径。
// 支持格式: m/44'/0'/0'/0/0 或 m/44h/0h/0h/0/0；单独的 "m" 表示根节点。
func ParsePath(path string) (DerivationPath, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: 路径为空", ErrInvalidPath)
	}

	parts := strings.Split(path, "/")
	if parts[0] != "m" && parts[0] != "M" {
		return nil, fmt.Errorf("%w: 路径必须以 m 开头: %q", ErrInvalidPath, path)
	}

	result := make(DerivationPath, 0, len(parts)-1)
	for _, segment := range parts[1:] {
		s, err := parseSegment(segment)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// MustParsePath 仅用于常量路径
func MustParsePath(path string) DerivationPath {
	p, err := ParsePath(path)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(segment string) (Segment, error) {
	var s Segment
	if n := len(segment); n > 0 {
		switch segment[n-1] {
		case '\'', 'h', 'H':
			s.Hardened = true
			segment = segment[:n-1]
		}
	}
	if segment == "" {
		return s, fmt.Errorf("%w: 空的路径段", ErrInvalidPath)
	}
	// ParseUint 不接受符号，负数索引在这里被拒绝
	for _, c := range segment {
		if c < '0' || c > '9' {
			return s, fmt.Errorf("%w: 无效的路径段 %q", ErrInvalidPath, segment)
		}
	}
	val, err := strconv.ParseUint(segment, 10, 32)
	if err != nil || uint32(val) >= HardenedKeyStart {
		return s, fmt.Errorf("%w: 路径段越界 %q", ErrInvalidPath, segment)
	}
	s.Index = uint32(val)
	return s, nil
}
