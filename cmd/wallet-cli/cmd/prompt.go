package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"wallet-keycore/pkg/config"
	"wallet-keycore/pkg/errno"
)

const minPasswordLen = 6

// readPassword 优先使用配置中的密码 (KEYSTORE_PASSWORD)，否则从终端读取
func readPassword(prompt string) (string, error) {
	if config.Global.Keystore.Password != "" {
		return config.Global.Keystore.Password, nil
	}

	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("读取密码失败: %w", err)
	}
	return string(b), nil
}

// readNewPassword 需要两次输入一致
func readNewPassword() (string, error) {
	password, err := readPassword("输入密码: ")
	if err != nil {
		return "", err
	}
	if config.Global.Keystore.Password == "" {
		confirm, err := readPassword("确认密码: ")
		if err != nil {
			return "", err
		}
		if password != confirm {
			return "", errno.ErrInvalidArgument.Wrapf("两次输入的密码不一致")
		}
	}
	if len(password) < minPasswordLen {
		return "", errno.ErrInvalidArgument.Wrapf("密码长度至少需要 %d 位", minPasswordLen)
	}
	return password, nil
}

// readMnemonic 从终端读取助记词 (不回显)
func readMnemonic() (string, error) {
	fmt.Print("输入助记词: ")
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("读取助记词失败: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	input, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
