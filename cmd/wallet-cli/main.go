package main

import "wallet-keycore/cmd/wallet-cli/cmd"

func main() {
	cmd.Execute()
}
