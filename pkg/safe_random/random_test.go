package safe_random

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"
)

func TestGenerateRandomBytes(t *testing.T) {
	n := 32
	b, err := GenerateRandomBytes(n)
	if err != nil {
		t.Fatalf("GenerateRandomBytes 失败: %v", err)
	}
	if len(b) != n {
		t.Errorf("GenerateRandomBytes 返回了 %d 字节, 期望 %d", len(b), n)
	}
	if bytes.Equal(b, make([]byte, n)) {
		t.Error("GenerateRandomBytes 返回了全零数据，可能未正确生成随机数")
	}

	if _, err := GenerateRandomBytes(0); err == nil {
		t.Error("长度为 0 时应该返回错误")
	}
}

func TestGenerateRandomHexString(t *testing.T) {
	n := 16
	s, err := GenerateRandomHexString(n)
	if err != nil {
		t.Fatalf("GenerateRandomHexString 失败: %v", err)
	}

	decoded, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("解码 Hex 字符串失败: %v", err)
	}

	if len(decoded) != n {
		t.Errorf("GenerateRandomHexString 底层字节长度 = %d, 期望 %d", len(decoded), n)
	}
}

func TestGenerateRandomInt(t *testing.T) {
	max := big.NewInt(100)
	for i := 0; i < 100; i++ {
		n, err := GenerateRandomInt(max)
		if err != nil {
			t.Fatalf("GenerateRandomInt 失败: %v", err)
		}
		if n.Sign() < 0 || n.Cmp(max) >= 0 {
			t.Errorf("GenerateRandomInt 返回值 %v 超出范围 [0, %v)", n, max)
		}
	}

	if _, err := GenerateRandomInt(big.NewInt(0)); err == nil {
		t.Error("max 为 0 时应该返回错误")
	}
}

func TestGenerateScalar(t *testing.T) {
	order := big.NewInt(7)
	for i := 0; i < 200; i++ {
		b, err := GenerateScalar(order, 4)
		if err != nil {
			t.Fatalf("GenerateScalar 失败: %v", err)
		}
		if len(b) != 4 {
			t.Fatalf("GenerateScalar 长度 = %d, 期望 4", len(b))
		}
		v := new(big.Int).SetBytes(b)
		if v.Sign() <= 0 || v.Cmp(order) >= 0 {
			t.Fatalf("GenerateScalar 返回值 %v 超出范围 [1, 7)", v)
		}
	}
}
