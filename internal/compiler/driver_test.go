package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing source fixture: %v", err)
	}
	return path
}

func TestCompileAndWrite(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "hello.tiny", "print \"hello\"\n")
	outDir := filepath.Join(dir, "out")

	outFile, err := CompileAndWrite(src, outDir)
	if err != nil {
		t.Fatalf("CompileAndWrite() unexpected error: %v", err)
	}
	if filepath.Base(outFile) != OutputFileName {
		t.Errorf("output name expected=%q, got=%q", OutputFileName, filepath.Base(outFile))
	}

	b, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if !strings.Contains(string(b), "#include <stdio.h>") {
		t.Errorf("artifact missing preamble.\nartifact:\n%s", b)
	}
	if !strings.Contains(string(b), `printf("hello\n");`) {
		t.Errorf("artifact missing print.\nartifact:\n%s", b)
	}
}

func TestCompileAndWriteRejectsExtension(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "hello.txt", "print \"hello\"\n")

	if _, err := CompileAndWrite(src, filepath.Join(dir, "out")); err == nil {
		t.Fatalf("CompileAndWrite() expected extension error, got none")
	}
}

func TestFailedTranslationWritesNothing(t *testing.T) {
	dir := t.TempDir()
	// goto to a label that is never declared: fails only after the whole
	// program is recognized, and still must not produce out.c
	src := writeSource(t, dir, "bad.tiny", "goto nowhere\n")
	outDir := filepath.Join(dir, "out")

	if _, err := CompileAndWrite(src, outDir); err == nil {
		t.Fatalf("CompileAndWrite() expected error, got none")
	}
	if _, err := os.Stat(filepath.Join(outDir, OutputFileName)); !os.IsNotExist(err) {
		t.Errorf("artifact must not exist after a failed run, stat err=%v", err)
	}
}

func TestMissingSourceFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := CompileAndWrite(filepath.Join(dir, "absent.tiny"), dir); err == nil {
		t.Fatalf("CompileAndWrite() expected read error, got none")
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	src := `int total = 0
int i = 0
while i < 5 repeat
int total = total + i
int i = i + 1
endwhile
print total
`
	artifact, err := Translate(src)
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}

	for _, fragment := range []string{
		"int total;",
		"int i;",
		"while(i<5){",
		"total = total+i;",
		`printf("%.2f\n", (float)(total));`,
		"return 0;",
	} {
		if !strings.Contains(artifact, fragment) {
			t.Errorf("artifact missing fragment %q.\nartifact:\n%s", fragment, artifact)
		}
	}
}
