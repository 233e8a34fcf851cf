package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/validator"
	"wallet-keycore/pkg/wallet"
	"wallet-keycore/pkg/wallet/types"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "离线签名 32 字节哈希 (Offline Signing)",
	Long: `使用 Keystore 中的私钥对 32 字节哈希签名，输出可独立验签的 JSON。
哈希可以通过 --hash 直接给出，也可以从签名请求文件 (--input) 读取。`,
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, _ := cmd.Flags().GetString("input")
		outputFile, _ := cmd.Flags().GetString("output")
		hashHex, _ := cmd.Flags().GetString("hash")

		// 1. 读取待签名哈希
		req := types.SignRequest{MsgHash: hashHex}
		if inputFile != "" {
			data, err := os.ReadFile(inputFile)
			exitOnErr("读取输入文件失败", err)
			if err := json.Unmarshal(data, &req); err != nil {
				exitOnErr("解析签名请求失败", errno.ErrInvalidArgument.Wrapf("%v", err))
			}
			exitOnErr("签名请求无效", validator.Struct(req))
			_ = cmd.Flags().Set("curve", req.Curve)
		}
		hash, err := wallet.ParseHash(req.MsgHash)
		exitOnErr("哈希无效", err)

		// 显示待签名内容供用户确认
		fmt.Println("\n================ 待签名哈希 ================")
		fmt.Printf("Hash:       0x%x\n", hash)
		if req.DerivationPath != "" {
			fmt.Printf("Path:       %s\n", req.DerivationPath)
		}
		fmt.Println("============================================")

		// 2. 解密 Keystore
		account, _ := loadAccount(cmd)

		// 3. 签名
		res, err := account.SignHash(hash)
		exitOnErr("签名失败", err)
		res.DerivationPath = req.DerivationPath

		// 4. 输出结果
		outputData, _ := json.MarshalIndent(res, "", "  ")
		if outputFile == "" {
			fmt.Println(string(outputData))
			return
		}
		exitOnErr("保存结果失败", os.WriteFile(outputFile, outputData, 0644))

		fmt.Printf("\n✅ 签名成功!\n")
		fmt.Printf("Signature: %s\n", res.Signature)
		fmt.Printf("已保存到: %s\n", outputFile)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "验证签名结果文件",
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, _ := cmd.Flags().GetString("input")

		data, err := os.ReadFile(inputFile)
		exitOnErr("读取输入文件失败", err)
		var res types.SignResult
		if err := json.Unmarshal(data, &res); err != nil {
			exitOnErr("解析签名结果失败", errno.ErrInvalidArgument.Wrapf("%v", err))
		}

		ok, err := wallet.Verify(&res)
		exitOnErr("验签失败", err)
		if !ok {
			fmt.Println("❌ 签名无效")
			os.Exit(1)
		}
		fmt.Printf("✅ 签名有效 (%s)\n", res.Curve)
		if res.Address != "" {
			fmt.Printf("Signer: %s\n", res.Address)
		}
	},
}

func init() {
	rootCmd.AddCommand(signCmd)
	addKeystoreFlags(signCmd)
	signCmd.Flags().String("hash", "", "32 字节哈希 (Hex)")
	signCmd.Flags().StringP("input", "i", "", "签名请求文件路径 (JSON)")
	signCmd.Flags().StringP("output", "o", "", "签名结果输出文件路径，为空时输出到终端")

	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringP("input", "i", "signed.json", "签名结果文件路径")
}
