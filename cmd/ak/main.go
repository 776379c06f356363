package main

import (
	"os"

	"github.com/bnema/account-keeper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
