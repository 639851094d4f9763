package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-encword/tools/encword/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
