package main

import (
	"os"

	"github.com/skillbookhq/skillbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
