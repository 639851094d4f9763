package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "encword",
	Short: "Encode and decode RFC 2047 encoded-words",
}

func Execute() error {
	return rootCmd.Execute()
}
