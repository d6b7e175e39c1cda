package main

import (
	"os"

	"github.com/jeremyhahn/go-password-toolkit/pkg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
