package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinylang/tinyc/internal/compiler/emitter"
	"github.com/tinylang/tinyc/internal/compiler/lexer"
	"github.com/tinylang/tinyc/internal/compiler/parser"
)

// OutputFileName is the fixed name of the generated artifact inside the
// output directory.
const OutputFileName = "out.c"

// CompileAndWrite translates one source file and writes the generated C to
// <outDir>/out.c. Nothing is written unless the whole program was
// recognized and validated.
func CompileAndWrite(srcPath, outDir string) (string, error) {
	if err := validateExtension(srcPath); err != nil {
		return "", err
	}

	content, err := readSource(srcPath)
	if err != nil {
		return "", err
	}

	artifact, err := Translate(content)
	if err != nil {
		return "", err
	}

	outFile, err := writeOutput(artifact, outDir)
	if err != nil {
		return "", err
	}

	return outFile, nil
}

// Translate runs the full lexer/parser/emitter pipeline over one source
// blob and returns the generated C. This is the seam tests drive directly.
func Translate(src string) (string, error) {
	l := lexer.NewLexer(src)
	em := emitter.NewEmitter()
	p := parser.NewParser(l, em)
	if err := p.ParseProgram(); err != nil {
		return "", err
	}
	return em.Finalize(), nil
}

func validateExtension(path string) error {
	if filepath.Ext(path) != ".tiny" {
		return fmt.Errorf("source must have .tiny extension")
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func writeOutput(artifact, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outFile := filepath.Join(outDir, OutputFileName)
	return outFile, os.WriteFile(outFile, []byte(artifact), 0o644)
}
