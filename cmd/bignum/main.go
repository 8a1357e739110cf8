package main

import (
	"os"

	"github.com/linal-sdk/bignum/cmd/bignum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
