package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet-keycore/pkg/mpc"
)

var (
	secretHex string
	parts     int
	threshold int
	shares    []string
)

func init() {
	rootCmd.AddCommand(mpcCmd)

	mpcCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVarP(&secretHex, "secret", "s", "", "私钥或种子 (Hex)")
	splitCmd.Flags().IntVarP(&parts, "parts", "n", 3, "Share 总数 (N)")
	splitCmd.Flags().IntVarP(&threshold, "threshold", "t", 2, "恢复阈值 (M)")
	_ = splitCmd.MarkFlagRequired("secret")

	mpcCmd.AddCommand(recoverCmd)
	recoverCmd.Flags().StringSliceVarP(&shares, "shares", "S", nil, "Share 列表 (逗号分隔)")
	_ = recoverCmd.MarkFlagRequired("shares")
}

var mpcCmd = &cobra.Command{
	Use:   "mpc",
	Short: "Shamir 秘密分享工具",
	Long:  `使用 Shamir Secret Sharing 切分与恢复私钥备份。`,
}

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "将秘密切分为 N 个 Share",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := mpc.Split(secretHex, parts, threshold)
		exitOnErr("切分失败", err)

		fmt.Printf("🔐 已切分为 %d 个 Share (阈值: %d):\n", parts, threshold)
		for i, share := range res {
			fmt.Printf("Share %d: %s\n", i+1, share)
		}
	},
}

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "从 M 个 Share 恢复秘密",
	Run: func(cmd *cobra.Command, args []string) {
		recovered, err := mpc.Recover(shares)
		exitOnErr("恢复失败", err)

		fmt.Printf("🔑 Recovered Secret: %s\n", recovered)
	},
}
