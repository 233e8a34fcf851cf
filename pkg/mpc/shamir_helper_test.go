package mpc

import (
	"bytes"
	"testing"

	"wallet-keycore/pkg/errno"
)

const testSecret = "0x7a28b5ba57c53603b0b07b56bba752f7784bf506fa95edc395f5cf6c7514fe9d"

func TestSplitRecover(t *testing.T) {
	shares, err := Split(testSecret, 5, 3)
	if err != nil {
		t.Fatalf("切分失败: %v", err)
	}
	if len(shares) != 5 {
		t.Fatalf("Share 数量错误: %d", len(shares))
	}
	for _, s := range shares {
		if len(s) != 66 {
			t.Errorf("Share 长度错误: %d", len(s))
		}
	}

	// 任意 3 个都可以恢复
	for _, idx := range [][]int{{0, 1, 2}, {2, 3, 4}, {0, 2, 4}, {4, 1, 3}} {
		subset := make([]string, 0, len(idx))
		for _, i := range idx {
			subset = append(subset, shares[i])
		}
		secret, err := Recover(subset)
		if err != nil {
			t.Fatalf("恢复失败 %v: %v", idx, err)
		}
		if "0x"+secret != testSecret {
			t.Errorf("恢复结果不匹配 %v: %s", idx, secret)
		}
	}

	// 全部 Share 也可以恢复
	secret, err := Recover(shares)
	if err != nil || "0x"+secret != testSecret {
		t.Errorf("使用全部 Share 恢复失败: %v", err)
	}
}

func TestSplitBytesRandomized(t *testing.T) {
	secret := []byte("seed material")
	a, err := SplitBytes(secret, 3, 2)
	if err != nil {
		t.Fatalf("切分失败: %v", err)
	}
	b, err := SplitBytes(secret, 3, 2)
	if err != nil {
		t.Fatalf("切分失败: %v", err)
	}
	if bytes.Equal(a[0][:len(secret)], b[0][:len(secret)]) {
		t.Errorf("两次切分的 Share 不应相同")
	}

	got, err := CombineBytes([][]byte{a[2], a[0]})
	if err != nil {
		t.Fatalf("恢复失败: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Errorf("恢复结果不匹配: %q", got)
	}
}

func TestSplitInvalidArguments(t *testing.T) {
	cases := []struct {
		secret           string
		parts, threshold int
	}{
		{"", 3, 2},
		{"zz", 3, 2},
		{"01", 3, 1},
		{"01", 2, 3},
		{"01", 256, 2},
	}
	for _, c := range cases {
		if _, err := Split(c.secret, c.parts, c.threshold); !errno.IsArgument(err) {
			t.Errorf("Split(%q, %d, %d) 应返回参数错误, got %v", c.secret, c.parts, c.threshold, err)
		}
	}
}

func TestRecoverInvalidShares(t *testing.T) {
	shares, err := Split(testSecret, 3, 2)
	if err != nil {
		t.Fatalf("切分失败: %v", err)
	}

	if _, err := Recover(shares[:1]); !errno.IsArgument(err) {
		t.Errorf("单个 Share 应返回参数错误, got %v", err)
	}
	if _, err := Recover([]string{shares[0], "not-hex"}); !errno.IsArgument(err) {
		t.Errorf("非 hex Share 应返回参数错误, got %v", err)
	}
	if _, err := Recover([]string{shares[0], shares[0]}); !errno.IsArgument(err) {
		t.Errorf("重复 Share 应返回参数错误, got %v", err)
	}
	if _, err := Recover([]string{shares[0], shares[1][:10]}); !errno.IsArgument(err) {
		t.Errorf("长度不一致的 Share 应返回参数错误, got %v", err)
	}
}
