package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"wallet-keycore/pkg/curve"
	"wallet-keycore/pkg/keystore"
	"wallet-keycore/pkg/wallet"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "解密 Keystore 文件 (校验密码)",
	Long:  `校验 Keystore V3 文件的密码，显示公钥与地址。默认不显示私钥。`,
	Run: func(cmd *cobra.Command, args []string) {
		account, doc := loadAccount(cmd)
		showPrivate, _ := cmd.Flags().GetBool("show-private")

		pair := account.KeyPair()
		fmt.Printf("ID:         %s\n", doc.ID)
		fmt.Printf("KDF:        %s\n", doc.KDF.Name())
		fmt.Printf("Curve:      %s\n", pair.Curve().Name())
		fmt.Printf("PublicKey:  %s\n", hex.EncodeToString(pair.PublicKey()))
		if addr, err := account.Address(); err == nil {
			fmt.Printf("Address:    %s\n", addr)
		}
		if showPrivate {
			fmt.Printf("PrivateKey: %s\n", hex.EncodeToString(pair.PrivateKey()))
		}
	},
}

// loadAccount 读取 Keystore 文件、输入密码并解密为账户
func loadAccount(cmd *cobra.Command) (*wallet.Account, *keystore.Document) {
	keystoreFile, _ := cmd.Flags().GetString("keystore")
	curveName, _ := cmd.Flags().GetString("curve")

	fmt.Printf("正在从 %s 加载 Keystore...\n", keystoreFile)
	doc, err := keystore.LoadFromFile(keystoreFile)
	exitOnErr("加载 Keystore 失败", err)

	password, err := readPassword("请输入 Keystore 密码: ")
	exitOnErr("读取密码失败", err)

	priv, err := keystore.Decrypt(doc, password)
	exitOnErr("解密失败 (密码错误?)", err)

	c, err := curve.Get(curveName)
	exitOnErr("曲线无效", err)
	pair, err := curve.NewKeyPair(c, priv)
	exitOnErr("私钥无效", err)
	return wallet.NewAccount(pair, ""), doc
}

func addKeystoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("keystore", "k", "wallet.json", "Keystore 文件路径")
	cmd.Flags().String("curve", "secp256k1", "Keystore 中私钥所属曲线")
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	addKeystoreFlags(decryptCmd)
	decryptCmd.Flags().Bool("show-private", false, "显示私钥 (危险)")
}
