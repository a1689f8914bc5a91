package cmd

import (
	"github.com/spf13/cobra"
)

var (
	outDir  string
	verbose bool
	logJSON string
)

var rootCmd = &cobra.Command{
	Use:   "tinyc",
	Short: "tinyc — Tiny-to-C transpiler",
	Long: `tinyc translates Tiny source files into C.

Commands:
  build  Compile a (.tiny) Tiny source file into C
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for build artifacts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logJSON, "log-json", "", "also write log records as JSON to this file")

	rootCmd.AddCommand(BuildCmd)
}
