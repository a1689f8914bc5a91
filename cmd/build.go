package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tinylang/tinyc/internal/compiler"
	"github.com/tinylang/tinyc/internal/logging"
)

// build: compile .tiny -> .c
var BuildCmd = &cobra.Command{
	Use:   "build <source.tiny>",
	Short: "Compile a Tiny source file into C",
	Args:  cobra.ExactArgs(1),
	RunE:  buildRun,
}

func buildRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	logging.SetVerbose(verbose)
	logger, closeLog, err := logging.New(logJSON)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("building", "source", src, "out", outDir)

	outFile, err := compiler.CompileAndWrite(src, outDir)
	if err != nil {
		logger.Error("build failed", "source", src, "error", err)
		return err
	}

	logger.Info("wrote C artifact", "path", outFile)
	return nil
}
