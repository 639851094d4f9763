package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-encword/header/word"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text as encoded-words for use in an email header",
		Long: `Encode each argument (or each line of standard input when no arguments
are given) as RFC 2047 encoded-words and print the result, one per line.
Text that needs no encoding is printed unchanged unless --always is set or
a charset or encoding override forces the matter.`,
		RunE: RunEncode,
	}

	usageName   string
	usedChars   int
	charsetName string
	encodingTag string
	always      bool
)

func init() {
	encodeCmd.Flags().StringVarP(&usageName, "usage", "u", "text",
		"token the words stand in for: \"text\" (Subject-like) or \"word\" (phrase)")
	encodeCmd.Flags().IntVarP(&usedChars, "used", "b", 0,
		"characters already consumed on the current header line (0-50)")
	encodeCmd.Flags().StringVarP(&charsetName, "charset", "c", "",
		"charset override; detected from the text when empty")
	encodeCmd.Flags().StringVarP(&encodingTag, "encoding", "e", "",
		"body encoding override, B or Q; picked by size when empty")
	encodeCmd.Flags().BoolVarP(&always, "always", "a", false,
		"encode even when the text could travel as-is")

	rootCmd.AddCommand(encodeCmd)
}

func encodeOptions() (word.Usage, []word.Option, error) {
	var usage word.Usage
	switch usageName {
	case "text":
		usage = word.TextToken
	case "word":
		usage = word.WordEntity
	default:
		return 0, nil, fmt.Errorf("unknown usage %q: want \"text\" or \"word\"", usageName)
	}

	var opts []word.Option
	if charsetName != "" {
		opts = append(opts, word.WithCharset(word.Charset(charsetName)))
	}

	switch encodingTag {
	case "":
	case "B", "b":
		opts = append(opts, word.WithEncoding(word.B))
	case "Q", "q":
		opts = append(opts, word.WithEncoding(word.Q))
	default:
		return 0, nil, fmt.Errorf("unknown encoding %q: want B or Q", encodingTag)
	}

	return usage, opts, nil
}

func RunEncode(cmd *cobra.Command, args []string) error {
	usage, opts, err := encodeOptions()
	if err != nil {
		return err
	}

	encode := func(text string) error {
		var s string
		var err error
		if always || len(opts) > 0 {
			s, err = word.Encode(text, usage, usedChars, opts...)
		} else {
			s, err = word.EncodeIfNeeded(text, usage, usedChars)
		}
		if err != nil {
			return err
		}

		fmt.Println(s)
		return nil
	}

	if len(args) > 0 {
		for _, text := range args {
			if err := encode(text); err != nil {
				return err
			}
		}
		return nil
	}

	lines := bufio.NewScanner(os.Stdin)
	for lines.Scan() {
		if err := encode(lines.Text()); err != nil {
			return err
		}
	}
	return lines.Err()
}
