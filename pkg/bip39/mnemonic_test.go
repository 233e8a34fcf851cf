package bip39

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"wallet-keycore/pkg/errno"
)

func TestGenerateMnemonic(t *testing.T) {
	service := NewMnemonicService()

	for strength, words := range strengthWords {
		mnemonic, err := service.Generate(strength)
		if err != nil {
			t.Fatalf("生成 %d 位助记词失败: %v", strength, err)
		}
		if got := len(Words(mnemonic)); got != words {
			t.Errorf("%d 位助记词应有 %d 个单词，实际 %d", strength, words, got)
		}
		if !service.Validate(mnemonic) {
			t.Errorf("生成的 %d 位助记词无效: %s", strength, mnemonic)
		}
		if seed := service.ToSeed(mnemonic, ""); len(seed) != SeedSize {
			t.Errorf("种子长度应为 %d，实际 %d", SeedSize, len(seed))
		}
	}
}

func TestGenerateInvalidStrength(t *testing.T) {
	service := NewMnemonicService()

	for _, strength := range []int{0, 64, 96, 127, 129, 288, 512} {
		_, err := service.Generate(strength)
		if !errors.Is(err, errno.ErrInvalidArgument) {
			t.Errorf("strength=%d 期望参数错误，实际: %v", strength, err)
		}
	}
}

func TestMnemonicToSeed(t *testing.T) {
	service := NewMnemonicService()

	// BIP-39 官方向量
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	cases := []struct {
		passphrase string
		seed       string
	}{
		{"", "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"},
		{"TREZOR", "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"},
	}

	if !service.Validate(mnemonic) {
		t.Fatalf("测试向量助记词无效")
	}

	for _, tc := range cases {
		seed := service.ToSeed(mnemonic, tc.passphrase)
		if got := hex.EncodeToString(seed); got != tc.seed {
			t.Errorf("Seed 生成不匹配 (passphrase=%q)。\n预期: %s\n实际: %s", tc.passphrase, tc.seed, got)
		}
	}

	// 单词列表形式结果一致
	if !bytes.Equal(service.ToSeedWords(Words(mnemonic), ""), service.ToSeed(mnemonic, "")) {
		t.Errorf("ToSeedWords 与 ToSeed 结果不一致")
	}

	// 不同 passphrase 得到不同种子
	if bytes.Equal(service.ToSeed(mnemonic, "a"), service.ToSeed(mnemonic, "b")) {
		t.Errorf("不同 passphrase 不应得到相同种子")
	}
}

func TestEntropyRoundTrip(t *testing.T) {
	service := NewMnemonicService()

	cases := []struct {
		entropy  string
		mnemonic string
	}{
		{"00000000000000000000000000000000", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"},
		{"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f", "legal winner thank year wave sausage worth useful legal winner thank yellow"},
		{"ffffffffffffffffffffffffffffffff", "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong"},
	}

	for _, tc := range cases {
		entropy, _ := hex.DecodeString(tc.entropy)
		mnemonic, err := service.EntropyToMnemonic(entropy)
		if err != nil {
			t.Fatalf("熵转助记词失败: %v", err)
		}
		if mnemonic != tc.mnemonic {
			t.Errorf("助记词不匹配。\n预期: %s\n实际: %s", tc.mnemonic, mnemonic)
		}

		back, err := service.MnemonicToEntropy(mnemonic)
		if err != nil {
			t.Fatalf("助记词转熵失败: %v", err)
		}
		if !bytes.Equal(back, entropy) {
			t.Errorf("熵往返不一致: %x != %x", back, entropy)
		}
	}

	if _, err := service.EntropyToMnemonic(make([]byte, 15)); !errors.Is(err, errno.ErrInvalidArgument) {
		t.Errorf("15 字节熵期望参数错误，实际: %v", err)
	}
}

func TestValidateMnemonic_Invalid(t *testing.T) {
	service := NewMnemonicService()

	valid := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	invalid := []string{
		"",
		"hello world invalid mnemonic phrase designed to fail validation check",
		// 校验和错误
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
		// 单词数不合法
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		// 替换校验单词 (about -> able，校验位 3 -> 2)
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon able",
	}

	for _, m := range invalid {
		if service.Validate(m) {
			t.Errorf("期望验证失败，但验证通过了: %q", m)
		}
	}

	if _, err := service.MnemonicToEntropy(invalid[2]); !errors.Is(err, errno.ErrInvalidArgument) {
		t.Errorf("错误校验和期望参数错误，实际: %v", err)
	}

	// 多余空白不影响结果
	if !service.ValidateWords(Words("  " + strings.ReplaceAll(valid, " ", "   ") + "\n")) {
		t.Errorf("规范化后的助记词应当有效")
	}
}

func TestWordList(t *testing.T) {
	list := WordList()
	if len(list) != 2048 {
		t.Fatalf("词表长度应为 2048，实际 %d", len(list))
	}
	if list[0] != "abandon" || list[2047] != "zoo" {
		t.Errorf("词表首尾不正确: %s ... %s", list[0], list[2047])
	}
}
