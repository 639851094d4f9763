package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-encword/header/word"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [text...]",
	Short: "Decode encoded-words back into unicode text",
	Long: `Decode the RFC 2047 encoded-words in each argument (or each line of
standard input when no arguments are given) and print the decoded text, one
per line. Plain text around the encoded-words passes through unchanged.`,
	RunE: RunDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func RunDecode(cmd *cobra.Command, args []string) error {
	decode := func(text string) error {
		s, err := word.DecodeHeader(text)
		if err != nil {
			return err
		}

		fmt.Println(s)
		return nil
	}

	if len(args) > 0 {
		for _, text := range args {
			if err := decode(text); err != nil {
				return err
			}
		}
		return nil
	}

	lines := bufio.NewScanner(os.Stdin)
	for lines.Scan() {
		if err := decode(lines.Text()); err != nil {
			return err
		}
	}
	return lines.Err()
}
