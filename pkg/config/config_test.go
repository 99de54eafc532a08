package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/agenthands/tlang/pkg/vm"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[vm]
stack-depth = 16

[log]
verbosity = 2
file = "tlang.log"

[build]
output = "out.tlc"
`
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.VM.StackDepth != 16 {
		t.Errorf("stack depth = %d, want 16", c.VM.StackDepth)
	}
	if c.Log.Verbosity != 2 {
		t.Errorf("verbosity = %d, want 2", c.Log.Verbosity)
	}
	if c.Log.File != "tlang.log" {
		t.Errorf("log file = %q", c.Log.File)
	}
	if c.OutputFor("prog.tl") != "out.tlc" {
		t.Errorf("OutputFor = %q, want out.tlc", c.OutputFor("prog.tl"))
	}
	if c.Path != path {
		t.Errorf("Path = %q, want %q", c.Path, path)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("[log]\nverbosity = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.VM.StackDepth != vm.DefaultStackDepth {
		t.Errorf("stack depth = %d, want default %d", c.VM.StackDepth, vm.DefaultStackDepth)
	}
	if got := c.OutputFor(filepath.Join("src", "prog.tl")); got != filepath.Join("src", "prog.tlc") {
		t.Errorf("OutputFor = %q", got)
	}
}

func TestLoadRejectsZeroStack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("[vm]\nstack-depth = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidStackDepth) {
		t.Errorf("expected ErrInvalidStackDepth, got %v", err)
	}
}

func TestLoadRejectsHugeStack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	body := fmt.Sprintf("[vm]\nstack-depth = %d\n", vm.MaxStackDepth+1)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidStackDepth) {
		t.Errorf("expected ErrInvalidStackDepth, got %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("[vm\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestFindAndLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("[vm]\nstack-depth = 8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	c, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if c.VM.StackDepth != 8 {
		t.Errorf("stack depth = %d, want 8", c.VM.StackDepth)
	}
}

func TestOutputForDirectory(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "build")
	if err := os.Mkdir(out, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		output string
		source string
		want   string
	}{
		{out, filepath.Join("src", "a.tl"), filepath.Join(out, "a.tlc")},
		{out, filepath.Join("src", "b.tl"), filepath.Join(out, "b.tlc")},
		{filepath.Join(dir, "later") + string(filepath.Separator), "c.tl", filepath.Join(dir, "later", "c.tlc")},
		{filepath.Join(dir, "one.tlc"), "d.tl", filepath.Join(dir, "one.tlc")},
	}
	for _, tt := range tests {
		c := Default()
		c.Build.Output = tt.output
		if got := c.OutputFor(tt.source); got != tt.want {
			t.Errorf("OutputFor(%q) with output %q = %q, want %q", tt.source, tt.output, got, tt.want)
		}
	}
}
