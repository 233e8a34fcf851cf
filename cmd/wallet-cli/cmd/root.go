package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wallet-keycore/pkg/config"
	"wallet-keycore/pkg/errno"
	"wallet-keycore/pkg/logger"
)

var cfgFile string

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "wallet-cli",
	Short: "多链钱包密钥工具",
	Long: `离线钱包密钥工具。
支持 BIP-39 助记词、BIP-32 / SLIP-0010 分层确定性派生、
secp256k1 / ed25519 / sr25519 签名以及 Keystore V3 加密文件。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(cfgFile); err != nil {
			return err
		}
		logger.Init(config.Global.App.Env)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitOnErr("执行失败", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径 (默认 ./config.yaml)")
}

// exitOnErr 输出错误码与信息后退出
func exitOnErr(action string, err error) {
	if err == nil {
		return
	}
	code, msg := errno.Decode(err)
	fmt.Fprintf(os.Stderr, "%s [%d]: %s\n", action, code, msg)
	os.Exit(1)
}
