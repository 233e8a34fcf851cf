package types

// SignRequest 离线签名请求，msg_hash 为 32 字节 Hex (可带 0x)
type SignRequest struct {
	Curve          string `json:"curve" validate:"oneof=secp256k1 ed25519 sr25519"`
	DerivationPath string `json:"derivation_path,omitempty"` // 例如 "m/44'/60'/0'/0/0"
	MsgHash        string `json:"msg_hash" validate:"required"`
}

// SignResult 签名结果，可以独立验签
type SignResult struct {
	Curve          string `json:"curve" validate:"oneof=secp256k1 ed25519 sr25519"`
	DerivationPath string `json:"derivation_path,omitempty"`
	Address        string `json:"address,omitempty"`
	PublicKey      string `json:"public_key" validate:"required,hexadecimal"`
	MsgHash        string `json:"msg_hash" validate:"required,hexadecimal"`
	Signature      string `json:"signature" validate:"required,hexadecimal"`
}
