package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"wallet-keycore/pkg/bip32"
	"wallet-keycore/pkg/bip39"
	"wallet-keycore/pkg/config"
	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/wallet"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "从助记词派生指定曲线与路径的密钥",
	Long: `secp256k1 使用 BIP-32，ed25519 使用 SLIP-0010 (仅支持强化路径)。
助记词从终端读取，不会出现在 shell 历史中。`,
	Run: func(cmd *cobra.Command, args []string) {
		curveName, _ := cmd.Flags().GetString("curve")
		if curveName == "" {
			curveName = config.Global.Wallet.Curve
		}
		path, _ := cmd.Flags().GetString("path")
		showPrivate, _ := cmd.Flags().GetBool("show-private")

		mnemonic, err := readMnemonic()
		exitOnErr("读取助记词失败", err)

		service := bip39.NewMnemonicService()
		if !service.Validate(mnemonic) {
			exitOnErr("助记词无效", errno.ErrInvalidArgument.Wrapf("checksum or word list mismatch"))
		}
		seed := service.ToSeed(mnemonic, config.Global.Wallet.Passphrase)

		acc, err := wallet.DeriveAccount(seed, curveName, path)
		exitOnErr("派生失败", err)

		pair := acc.KeyPair()
		fmt.Printf("Curve:      %s\n", pair.Curve().Name())
		fmt.Printf("Path:       %s\n", acc.Path())
		fmt.Printf("PublicKey:  %s\n", hex.EncodeToString(pair.PublicKey()))
		if addr, err := acc.Address(); err == nil {
			fmt.Printf("Address:    %s\n", addr)
		}
		if pair.Curve().Name() == "secp256k1" {
			if key, err := bip32.FromSeed(seed); err == nil {
				if key, err = key.Derive(acc.Path()); err == nil {
					fmt.Printf("xpub:       %s\n", key.XPub())
				}
			}
		}
		if showPrivate {
			fmt.Printf("PrivateKey: %s\n", hex.EncodeToString(pair.PrivateKey()))
		}
	},
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	deriveCmd.Flags().String("curve", "", "曲线 (secp256k1 / ed25519)，默认取配置 wallet.curve")
	deriveCmd.Flags().StringP("path", "p", "", "派生路径，默认 ETH 或 SOL 的 BIP-44 路径")
	deriveCmd.Flags().Bool("show-private", false, "显示私钥 (危险)")
}
