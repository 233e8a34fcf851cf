package bip39

import (
	"strings"

	"github.com/tyler-smith/go-bip39"

	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/safe_random"
)

// SeedSize BIP-39 种子长度 (PBKDF2-HMAC-SHA512 输出)
const SeedSize = 64

// 合法的熵位数 -> 单词个数
var strengthWords = map[int]int{
	128: 12,
	160: 15,
	192: 18,
	224: 21,
	256: 24,
}

// MnemonicService 提供助记词相关的功能。无状态，可并发使用。
type MnemonicService struct{}

// NewMnemonicService 创建一个新的助记词服务实例
func NewMnemonicService() *MnemonicService {
	return &MnemonicService{}
}

// WordCount 返回给定熵位数对应的单词个数
func WordCount(strength int) (int, error) {
	n, ok := strengthWords[strength]
	if !ok {
		return 0, errno.ErrInvalidArgument.Wrapf("mnemonic strength must be one of 128/160/192/224/256, got %d", strength)
	}
	return n, nil
}

// Generate 生成一个新的随机助记词 (BIP-39)。
// strength: 熵的位数，128 (12 个单词) ~ 256 (24 个单词)，步长 32。
func (s *MnemonicService) Generate(strength int) (string, error) {
	if _, err := WordCount(strength); err != nil {
		return "", err
	}

	entropy, err := safe_random.GenerateRandomBytes(strength / 8)
	if err != nil {
		return "", errno.ErrInternal.Wrapf("生成熵失败: %v", err)
	}
	return s.EntropyToMnemonic(entropy)
}

// EntropyToMnemonic 由熵计算助记词 (追加 SHA-256 校验位)
func (s *MnemonicService) EntropyToMnemonic(entropy []byte) (string, error) {
	if _, err := WordCount(len(entropy) * 8); err != nil {
		return "", err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errno.ErrInvalidArgument.Wrapf("生成助记词失败: %v", err)
	}
	return mnemonic, nil
}

// MnemonicToEntropy 还原助记词对应的熵，校验和错误时返回参数错误
func (s *MnemonicService) MnemonicToEntropy(mnemonic string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(normalize(mnemonic))
	if err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("无效的助记词: %v", err)
	}
	return entropy, nil
}

// Validate 验证助记词是否有效 (单词数、词表、校验和)。不返回错误。
func (s *MnemonicService) Validate(mnemonic string) bool {
	words := Words(mnemonic)
	if _, ok := strengthWords[len(words)*32/3]; !ok || len(words)%3 != 0 {
		return false
	}
	return bip39.IsMnemonicValid(strings.Join(words, " "))
}

// ValidateWords 与 Validate 相同，入参为单词列表
func (s *MnemonicService) ValidateWords(words []string) bool {
	return s.Validate(strings.Join(words, " "))
}

// ToSeed 将助记词转换为 64 字节种子。
// passphrase: 可选的密码 ("第25个单词")，不需要时传空字符串。
// 助记词本身不做校验，与 BIP-39 一致。
func (s *MnemonicService) ToSeed(mnemonic string, passphrase string) []byte {
	return bip39.NewSeed(normalize(mnemonic), passphrase)
}

// ToSeedWords 与 ToSeed 相同，入参为单词列表
func (s *MnemonicService) ToSeedWords(words []string, passphrase string) []byte {
	return s.ToSeed(strings.Join(words, " "), passphrase)
}

// Words 按空白切分助记词
func Words(mnemonic string) []string {
	return strings.Fields(mnemonic)
}

// WordList 返回英文词表 (2048 个单词)
func WordList() []string {
	list := bip39.GetWordList()
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func normalize(mnemonic string) string {
	return strings.Join(Words(mnemonic), " ")
}
