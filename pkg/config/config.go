package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/keystore"
	"wallet-keycore/pkg/validator"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Keystore KeystoreConfig `mapstructure:"keystore"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
}

type AppConfig struct {
	Env string `mapstructure:"env" validate:"oneof=development production"`
}

// KeystoreConfig Keystore V3 加密参数
type KeystoreConfig struct {
	KDF      string `mapstructure:"kdf" validate:"oneof=scrypt pbkdf2"`
	ScryptN  int    `mapstructure:"scrypt_n" validate:"gt=1"`
	ScryptR  int    `mapstructure:"scrypt_r" validate:"gte=1"`
	ScryptP  int    `mapstructure:"scrypt_p" validate:"gte=1"`
	PBKDF2C  int    `mapstructure:"pbkdf2_c" validate:"gte=1"`
	Path     string `mapstructure:"path" validate:"required"` // 本地 Keystore 文件路径
	Password string `mapstructure:"password"`                 // 通常通过环境变量 KEYSTORE_PASSWORD 传入
}

type WalletConfig struct {
	Strength   int    `mapstructure:"strength" validate:"oneof=128 160 192 224 256"`
	Curve      string `mapstructure:"curve" validate:"oneof=secp256k1 ed25519 sr25519"`
	Passphrase string `mapstructure:"passphrase"` // BIP-39 passphrase
}

var Global Config

// Options 转换为 keystore.Options
func (c KeystoreConfig) Options() keystore.Options {
	if c.KDF == keystore.KDFPBKDF2 {
		return keystore.Options{Iterations: c.PBKDF2C}
	}
	return keystore.Options{UseScrypt: true, N: c.ScryptN, R: c.ScryptR, P: c.ScryptP}
}

// Load 读取配置。path 为空时在 . 与 ./config 下查找 config.yaml，找不到文件时使用默认值与环境变量。
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config") // name of config file (without extension)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// 环境变量设置，例如 KEYSTORE_SCRYPT_N
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errno.ErrInvalidArgument.Wrapf("read config: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errno.ErrInvalidArgument.Wrapf("decode config: %v", err)
	}
	if err := validator.Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init 加载配置到 Global
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Global = *cfg
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")

	v.SetDefault("keystore.kdf", keystore.KDFScrypt)
	v.SetDefault("keystore.scrypt_n", keystore.StandardScrypt.N)
	v.SetDefault("keystore.scrypt_r", keystore.StandardScrypt.R)
	v.SetDefault("keystore.scrypt_p", keystore.StandardScrypt.P)
	v.SetDefault("keystore.pbkdf2_c", keystore.PBKDF2.Iterations)
	v.SetDefault("keystore.path", "wallet.json")
	v.SetDefault("keystore.password", "")

	v.SetDefault("wallet.strength", 128)
	v.SetDefault("wallet.curve", "secp256k1")
	v.SetDefault("wallet.passphrase", "")
}
