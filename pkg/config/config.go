// Package config handles tlang.toml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/agenthands/tlang/pkg/vm"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "tlang.toml"

// ImageExt is the default extension of compiled program images.
const ImageExt = ".tlc"

var ErrInvalidStackDepth = fmt.Errorf("config: stack-depth must be between 1 and %d", vm.MaxStackDepth)

// Config represents a tlang.toml file.
type Config struct {
	VM    VMConfig    `toml:"vm"`
	Log   LogConfig   `toml:"log"`
	Build BuildConfig `toml:"build"`

	// Path is the file the configuration was loaded from, if any.
	Path string `toml:"-"`
}

// VMConfig sizes the execution state.
type VMConfig struct {
	StackDepth int `toml:"stack-depth"`
}

// LogConfig configures commonlog.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// BuildConfig configures image output. Output is a file path, or a
// directory when it ends in a separator or already exists.
type BuildConfig struct {
	Output string `toml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		VM: VMConfig{StackDepth: vm.DefaultStackDepth},
	}
}

// Load parses the file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	c.Path = path

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a tlang.toml file. It
// returns Default when none is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Validate rejects settings the VM cannot run with.
func (c *Config) Validate() error {
	if c.VM.StackDepth < 1 || c.VM.StackDepth > vm.MaxStackDepth {
		return ErrInvalidStackDepth
	}
	return nil
}

// OutputFor returns the image path for a source file. Without a
// configured output the image sits next to the source with ImageExt. An
// output ending in a path separator, or naming an existing directory,
// receives one image per source under the source's base name. Any other
// output is a single file path, meant for one-program projects.
func (c *Config) OutputFor(source string) string {
	image := withImageExt(source)
	out := c.Build.Output
	if out == "" {
		return image
	}
	if isDirPath(out) {
		return filepath.Join(out, filepath.Base(image))
	}
	return out
}

func withImageExt(source string) string {
	return source[:len(source)-len(filepath.Ext(source))] + ImageExt
}

func isDirPath(p string) bool {
	if os.IsPathSeparator(p[len(p)-1]) {
		return true
	}
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}
