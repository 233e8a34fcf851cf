package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/cobra"

	"wallet-keycore/pkg/address"
	"wallet-keycore/pkg/bip32"
	"wallet-keycore/pkg/bip39"
	"wallet-keycore/pkg/config"
	"wallet-keycore/pkg/wallet"
)

// newCmd 代表 new 命令
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "创建一个新的钱包",
	Long:  `生成一个新的随机 BIP-39 助记词，并显示主扩展密钥以及默认的 BTC / ETH / SOL 地址。`,
	Run: func(cmd *cobra.Command, args []string) {
		strength, _ := cmd.Flags().GetInt("strength")
		if strength == 0 {
			strength = config.Global.Wallet.Strength
		}
		showSeed, _ := cmd.Flags().GetBool("show-seed")

		fmt.Println("正在生成新钱包...")
		fmt.Println("---------------------------------------------------")

		// 1. 生成助记词
		mnemonicService := bip39.NewMnemonicService()
		mnemonic, err := mnemonicService.Generate(strength)
		exitOnErr("生成助记词失败", err)
		fmt.Printf("助记词 (Mnemonic): \n%s\n", mnemonic)
		fmt.Println("---------------------------------------------------")

		// 2. 生成种子
		seed := mnemonicService.ToSeed(mnemonic, config.Global.Wallet.Passphrase)
		if showSeed {
			fmt.Printf("种子 (Seed Hex): %s\n", hex.EncodeToString(seed))
		}

		// 3. 主密钥
		masterKey, err := bip32.NewMasterKeyFromSeed(seed, &chaincfg.MainNetParams)
		exitOnErr("生成主密钥失败", err)
		fmt.Printf("主公钥 (xpub): %s\n", masterKey.XPub())
		fmt.Println("---------------------------------------------------")

		// 4. 派生默认地址 (BIP-44)
		printAddresses(seed)

		fmt.Println("---------------------------------------------------")
		fmt.Println("请妥善保管您的助记词！任何拥有助记词的人都可以控制该钱包的所有资产。")
	},
}

func printAddresses(seed []byte) {
	if btcKey, err := bip32.FromSeed(seed); err == nil {
		if btcKey, err = btcKey.Derive(wallet.DefaultBTCPath); err == nil {
			btcGen := address.NewBTCGenerator(&chaincfg.MainNetParams)
			if addr, err := btcGen.PubKeyToAddress(btcKey.PublicKey()); err == nil {
				fmt.Printf("Bitcoin Address (P2PKH)  [%s]: %s\n", wallet.DefaultBTCPath, addr)
			}
			if addr, err := btcGen.PubKeyToSegwitAddress(btcKey.PublicKey()); err == nil {
				fmt.Printf("Bitcoin Address (P2WPKH) [%s]: %s\n", wallet.DefaultBTCPath, addr)
			}
		}
	}

	for _, curveName := range []string{"secp256k1", "ed25519"} {
		acc, err := wallet.DeriveAccount(seed, curveName, "")
		if err != nil {
			fmt.Printf("%s 派生失败: %v\n", curveName, err)
			continue
		}
		addr, err := acc.Address()
		if err != nil {
			continue
		}
		chain := "Ethereum"
		if curveName == "ed25519" {
			chain = "Solana"
		}
		fmt.Printf("%s Address [%s]: %s\n", chain, acc.Path(), addr)
	}
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().IntP("strength", "s", 0, "熵长度 (128/160/192/224/256)，默认取配置 wallet.strength")
	newCmd.Flags().Bool("show-seed", false, "同时显示 BIP-39 种子")
}
