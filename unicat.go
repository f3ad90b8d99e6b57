// unicat - Unicode character-class scanning

//go:build !js || !wasm
// +build !js !wasm

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/MattSimmons1/unicat/scan"
	"github.com/spf13/cobra"
)

// unescape converts raw escaped chars typed on the command line to literals
func unescape(input string) string {
	input = strings.Replace(input, "\\n", "\n", -1)
	input = strings.Replace(input, "\\r", "\r", -1)
	input = strings.Replace(input, "\\t", "\t", -1)
	return input
}

func write(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		j, err := json.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(j))
	case "yaml":
		y, err := scan.Encode(v)
		if err != nil {
			return err
		}
		fmt.Fprint(w, y)
	default:
		return fmt.Errorf("unknown output format %q, expected json or yaml", format)
	}
	return nil
}

// UnitTest runs the built-in conformance table and reports every failure.
func UnitTest(w io.Writer) error {
	cases, err := scan.Cases()
	if err != nil {
		return err
	}
	failed := 0
	for _, c := range cases {
		if err := c.Check(); err != nil {
			failed++
			fmt.Fprintln(w, "\033[91mFAIL\033[0m", err)
			continue
		}
		fmt.Fprintln(w, "\033[92mok\033[0m  ", c.Name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(cases))
	}
	return nil
}

// Tokens streams the items of r to w, one JSON or YAML document per item.
func Tokens(w io.Writer, r io.Reader, chunkSize int, format string) error {
	rd := scan.NewReader(r, chunkSize)
	for {
		item, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		v := map[string]interface{}{"class": item.Type.String(), "value": item.Val, "pos": item.Pos, "line": item.Line}
		if format == "yaml" {
			fmt.Fprintln(w, "---")
		}
		if err := write(w, format, v); err != nil {
			return err
		}
	}
}

func main() {
	if err := func() (rootCmd *cobra.Command) {
		var IsPreview, IsVerbose, IsStreaming bool
		var Min int
		var Class, Script, Output string

		rootCmd = &cobra.Command{
			Use:   "unicat <input>",
			Short: "unicat command line tools",
			Long: "Scan the longest leading run of a Unicode class from <input> and print\n" +
				"the match and the rest.",
			Args:          cobra.ArbitraryArgs,
			SilenceUsage:  true,
			SilenceErrors: true,
			PersistentPreRun: func(c *cobra.Command, args []string) {
				if IsVerbose {
					scan.SetVerbose()
				}
			},
			RunE: func(c *cobra.Command, args []string) error {
				if len(args) < 1 {
					fmt.Println("unicat command line tools.\nUsage:\n  unicat <input>\nUse \"unicat help\" for more information.")
					return nil
				}
				input := unescape(args[0])
				if IsPreview {
					scan.Preview(os.Stdout, input)
					fmt.Println()
					return nil
				}

				mode := scan.Complete
				if IsStreaming {
					mode = scan.Streaming
				}
				var card scan.Cardinality
				switch Min {
				case 0:
					card = scan.ZeroOrMore
				case 1:
					card = scan.OneOrMore
				default:
					return fmt.Errorf("--min must be 0 or 1, got %d", Min)
				}

				var p scan.Parser
				if Script != "" {
					pred, err := scan.Script(Script)
					if err != nil {
						return err
					}
					p = scan.TakeWhile("script", pred, mode, card)
				} else {
					category, err := scan.ParseCategory(Class)
					if err != nil {
						return err
					}
					p = scan.Primitive(category, mode, card)
				}
				return write(os.Stdout, Output, scan.Apply(p, input))
			},
		}
		rootCmd.PersistentFlags().BoolVarP(&IsVerbose, "verbose", "v", false,
			"trace the lexer and reader")
		rootCmd.PersistentFlags().StringVarP(&Output, "output", "o", "json",
			"output format: json or yaml")
		rootCmd.Flags().BoolVarP(&IsPreview, "preview", "p", false,
			"colour the input by class instead of scanning it")
		rootCmd.Flags().StringVarP(&Class, "class", "c", "alpha",
			"class to scan: alpha, digit, alphanumeric, space or multispace")
		rootCmd.Flags().BoolVarP(&IsStreaming, "streaming", "s", false,
			"treat the end of the input as possibly artificial")
		rootCmd.Flags().IntVarP(&Min, "min", "m", 0,
			"shortest run accepted: 0 or 1")
		rootCmd.Flags().StringVar(&Script, "script", "",
			"JavaScript predicate to use as the class, e.g. 'c => c === \"_\"'")

		rootCmd.AddCommand(func() (createCmd *cobra.Command) {
			createCmd = &cobra.Command{
				Use:   "test",
				Short: "run the conformance table",
				Args:  cobra.NoArgs,
				RunE: func(c *cobra.Command, args []string) error {
					return UnitTest(os.Stdout)
				},
			}
			return
		}())

		rootCmd.AddCommand(func() (createCmd *cobra.Command) {
			createCmd = &cobra.Command{
				Use:   "classify <input>",
				Short: "list the classes of every codepoint of the input",
				Args:  cobra.ExactArgs(1),
				RunE: func(c *cobra.Command, args []string) error {
					return write(os.Stdout, Output, scan.Classify(unescape(args[0])))
				},
			}
			return
		}())

		rootCmd.AddCommand(func() (createCmd *cobra.Command) {
			var ChunkSize int
			createCmd = &cobra.Command{
				Use:   "tokens [file]",
				Short: "split a file, or stdin, into runs of one class",
				Args:  cobra.MaximumNArgs(1),
				RunE: func(c *cobra.Command, args []string) error {
					var r io.Reader = os.Stdin
					if len(args) == 1 {
						f, err := os.Open(args[0])
						if err != nil {
							return err
						}
						defer f.Close()
						r = f
					}
					return Tokens(os.Stdout, r, ChunkSize, Output)
				},
			}
			createCmd.Flags().IntVar(&ChunkSize, "chunk", scan.DefaultChunkSize,
				"bytes read at a time")
			return
		}())
		return
	}().Execute(); err != nil {
		log.Fatalln(err)
	}
}
