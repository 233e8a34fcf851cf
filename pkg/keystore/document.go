package keystore

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/google/uuid"

	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/validator"
)

const (
	Version         = 3
	CipherAES128CTR = "aes-128-ctr"
)

// Document Keystore V3 文档。KDF 决定 crypto.kdf 与 crypto.kdfparams。
type Document struct {
	Version    int
	ID         uuid.UUID
	Address    string // 可选，小写 hex，不带 0x
	Cipher     string
	IV         []byte
	CipherText []byte
	KDF        KDFParams
	MAC        []byte
}

// EncryptedKeyJSON 遵循 Ethereum Keystore V3 的 JSON 结构
type EncryptedKeyJSON struct {
	Address string     `json:"address,omitempty" validate:"omitempty,hexadecimal,len=40"`
	Crypto  CryptoJSON `json:"crypto"`
	Id      string     `json:"id" validate:"required,uuid"`
	Version int        `json:"version" validate:"eq=3"`
}

type CryptoJSON struct {
	Cipher       string          `json:"cipher" validate:"eq=aes-128-ctr"`
	CipherText   string          `json:"ciphertext" validate:"required,hexadecimal,len=64"`
	CipherParams CipherParams    `json:"cipherparams"`
	KDF          string          `json:"kdf" validate:"oneof=scrypt pbkdf2"`
	KDFParams    json.RawMessage `json:"kdfparams" validate:"required"`
	MAC          string          `json:"mac" validate:"required,hexadecimal,len=64"`
}

type CipherParams struct {
	IV string `json:"iv" validate:"required,hexadecimal,len=32"`
}

type scryptParamsJSON struct {
	DKLen int    `json:"dklen" validate:"eq=32"`
	N     int    `json:"n" validate:"gt=1"`
	P     int    `json:"p" validate:"gte=1"`
	R     int    `json:"r" validate:"gte=1"`
	Salt  string `json:"salt" validate:"required,hexadecimal"`
}

type pbkdf2ParamsJSON struct {
	C     int    `json:"c" validate:"gte=1"`
	DKLen int    `json:"dklen" validate:"eq=32"`
	PRF   string `json:"prf" validate:"eq=hmac-sha256"`
	Salt  string `json:"salt" validate:"required,hexadecimal"`
}

// MarshalJSON 输出 Keystore V3 标准字段
func (d *Document) MarshalJSON() ([]byte, error) {
	var params any
	switch p := d.KDF.(type) {
	case *ScryptParams:
		params = scryptParamsJSON{DKLen: p.DKLen, N: p.N, P: p.P, R: p.R, Salt: hex.EncodeToString(p.Salt)}
	case *PBKDF2Params:
		params = pbkdf2ParamsJSON{C: p.C, DKLen: p.DKLen, PRF: p.PRF, Salt: hex.EncodeToString(p.Salt)}
	default:
		return nil, errno.ErrInvalidState.Wrapf("keystore document has no kdf params")
	}
	rawParams, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	return json.Marshal(EncryptedKeyJSON{
		Address: d.Address,
		Crypto: CryptoJSON{
			Cipher:       d.Cipher,
			CipherText:   hex.EncodeToString(d.CipherText),
			CipherParams: CipherParams{IV: hex.EncodeToString(d.IV)},
			KDF:          d.KDF.Name(),
			KDFParams:    rawParams,
			MAC:          hex.EncodeToString(d.MAC),
		},
		Id:      d.ID.String(),
		Version: d.Version,
	})
}

// UnmarshalJSON 解析并校验 Keystore V3 JSON
func (d *Document) UnmarshalJSON(data []byte) error {
	var k EncryptedKeyJSON
	if err := json.Unmarshal(data, &k); err != nil {
		return errno.ErrInvalidArgument.Wrapf("keystore json: %v", err)
	}
	if err := validator.Struct(k); err != nil {
		return err
	}

	id, err := uuid.Parse(k.Id)
	if err != nil {
		return errno.ErrInvalidArgument.Wrapf("keystore id: %v", err)
	}
	iv, err := parseHex(k.Crypto.CipherParams.IV)
	if err != nil {
		return errno.ErrInvalidArgument.Wrapf("invalid iv: %v", err)
	}
	ciphertext, err := parseHex(k.Crypto.CipherText)
	if err != nil {
		return errno.ErrInvalidArgument.Wrapf("invalid ciphertext: %v", err)
	}
	mac, err := parseHex(k.Crypto.MAC)
	if err != nil {
		return errno.ErrInvalidArgument.Wrapf("invalid mac: %v", err)
	}

	var kdf KDFParams
	switch k.Crypto.KDF {
	case KDFScrypt:
		var p scryptParamsJSON
		if err := json.Unmarshal(k.Crypto.KDFParams, &p); err != nil {
			return errno.ErrInvalidArgument.Wrapf("scrypt kdfparams: %v", err)
		}
		if err := validator.Struct(p); err != nil {
			return err
		}
		salt, err := parseHex(p.Salt)
		if err != nil {
			return errno.ErrInvalidArgument.Wrapf("invalid salt: %v", err)
		}
		kdf = &ScryptParams{N: p.N, R: p.R, P: p.P, DKLen: p.DKLen, Salt: salt}
	case KDFPBKDF2:
		var p pbkdf2ParamsJSON
		if err := json.Unmarshal(k.Crypto.KDFParams, &p); err != nil {
			return errno.ErrInvalidArgument.Wrapf("pbkdf2 kdfparams: %v", err)
		}
		if err := validator.Struct(p); err != nil {
			return err
		}
		salt, err := parseHex(p.Salt)
		if err != nil {
			return errno.ErrInvalidArgument.Wrapf("invalid salt: %v", err)
		}
		kdf = &PBKDF2Params{C: p.C, DKLen: p.DKLen, PRF: p.PRF, Salt: salt}
	}

	*d = Document{
		Version:    k.Version,
		ID:         id,
		Address:    strings.ToLower(strings.TrimPrefix(k.Address, "0x")),
		Cipher:     k.Crypto.Cipher,
		IV:         iv,
		CipherText: ciphertext,
		KDF:        kdf,
		MAC:        mac,
	}
	return nil
}

// ParseJSON 解析 Keystore V3 JSON 文本
func ParseJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		if errno.IsArgument(err) {
			return nil, err
		}
		return nil, errno.ErrInvalidArgument.Wrapf("keystore json: %v", err)
	}
	return &d, nil
}

// SaveToFile 保存到文件 (权限 0600)
func (d *Document) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}

// LoadFromFile 从文件加载
func LoadFromFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseJSON(data)
}

func parseHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
