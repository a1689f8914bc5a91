package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutFile(t *testing.T) {
	logger, closer, err := New("")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("New() returned nil logger")
	}
	if err := closer(); err != nil {
		t.Errorf("closer() unexpected error: %v", err)
	}
}

func TestNewWithJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.log")

	logger, closer, err := New(path)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	logger.Info("wrote C artifact", "path", "out/out.c")
	if err := closer(); err != nil {
		t.Fatalf("closer() unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"wrote C artifact"`) {
		t.Errorf("log file missing JSON record, got=%q", string(b))
	}
}
