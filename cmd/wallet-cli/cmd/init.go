package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wallet-keycore/pkg/bip39"
	"wallet-keycore/pkg/config"
	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/keystore"
	"wallet-keycore/pkg/wallet"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "初始化一个新的钱包 (生成助记词并加密保存派生私钥)",
	Long: `生成新的 BIP-39 助记词，按路径派生账户私钥，
使用用户输入的密码加密为 Keystore V3 文件。`,
	Run: func(cmd *cobra.Command, args []string) {
		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			outputFile = config.Global.Keystore.Path
		}
		if _, err := os.Stat(outputFile); err == nil {
			exitOnErr("初始化失败", errno.ErrInvalidArgument.Wrapf("文件 %s 已存在，请先删除或指定其他文件名", outputFile))
		}
		curveName, _ := cmd.Flags().GetString("curve")
		if curveName == "" {
			curveName = config.Global.Wallet.Curve
		}
		path, _ := cmd.Flags().GetString("path")

		fmt.Println("正在初始化新钱包...")
		fmt.Println("请设置一个强密码来保护您的私钥。")

		// 1. 输入密码
		password, err := readNewPassword()
		exitOnErr("读取密码失败", err)

		// 2. 生成助记词并派生账户
		service := bip39.NewMnemonicService()
		mnemonic, err := service.Generate(config.Global.Wallet.Strength)
		exitOnErr("生成助记词失败", err)
		seed := service.ToSeed(mnemonic, config.Global.Wallet.Passphrase)

		acc, err := wallet.DeriveAccount(seed, curveName, path)
		exitOnErr("派生失败", err)

		// 3. 加密保存
		fmt.Println("正在加密保存...")
		doc, err := keystore.Encrypt(acc.KeyPair().PrivateKey(), password, config.Global.Keystore.Options())
		exitOnErr("加密失败", err)
		exitOnErr("保存文件失败", doc.SaveToFile(outputFile))

		fmt.Printf("\n✅ 钱包已初始化！\n")
		fmt.Printf("文件位置: %s\n", outputFile)
		fmt.Printf("您的 ID: %s\n", doc.ID)
		fmt.Printf("Curve:   %s\n", acc.KeyPair().Curve().Name())
		fmt.Printf("Path:    %s\n", acc.Path())
		if addr, err := acc.Address(); err == nil {
			fmt.Printf("Address: %s\n", addr)
		}
		fmt.Println("\n⚠️  警告: 请务必记住您的密码！如果丢失密码，只能通过助记词恢复钱包。")

		if confirm("\n是否需要现在显示助记词以便备份? (y/N): ") {
			fmt.Println("\n---------------------------------------------------")
			fmt.Println("助记词 (请抄写在纸上并安全保管):")
			fmt.Println(mnemonic)
			fmt.Println("---------------------------------------------------")
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("output", "o", "", "输出的 Keystore 文件名，默认取配置 keystore.path")
	initCmd.Flags().String("curve", "", "曲线 (secp256k1 / ed25519)")
	initCmd.Flags().StringP("path", "p", "", "派生路径")
}
