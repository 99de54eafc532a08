package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/agenthands/tlang/pkg/config"
	"github.com/agenthands/tlang/pkg/image"
	"github.com/agenthands/tlang/pkg/runner"
	"github.com/agenthands/tlang/pkg/vm"
)

var log = commonlog.GetLogger("tlang.cli")

const usage = `Usage: tlang [-config path] [-v] <command> [args]

Commands:
  eval <expr>              evaluate an expression
  run <file>               evaluate a source file
  build <file> [-o out]    compile a source file to an image
  exec <image>             run a compiled image
  disasm <file|image>      list the bytecode of a source file or image
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cli struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tlang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "Path to tlang.toml (default: search upwards from the working directory)")
	verbose := fs.Int("v", 0, "Log verbosity from -4 (none) to 2 (debug), overrides the config file")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Config Error: %v\n", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "v" {
			cfg.Log.Verbosity = *verbose
		}
	})
	configureLogging(cfg)
	if cfg.Path != "" {
		log.Debugf("using config %s", cfg.Path)
	}

	c := &cli{cfg: cfg, stdout: stdout, stderr: stderr}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "eval":
		return c.eval(rest)
	case "run":
		return c.runFile(rest)
	case "build":
		return c.build(rest)
	case "exec":
		return c.exec(rest)
	case "disasm":
		return c.disasm(rest)
	default:
		fmt.Fprintln(stderr, "Unknown command:", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	return config.FindAndLoad(wd)
}

func configureLogging(cfg *config.Config) {
	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)
}

func (c *cli) eval(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "Usage: tlang eval <expr>")
		return 1
	}
	return c.evalSource([]byte(args[0]))
}

func (c *cli) runFile(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "Usage: tlang run <file>")
		return 1
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(c.stderr, "Error reading file: %v\n", err)
		return 1
	}
	return c.evalSource(src)
}

func (c *cli) evalSource(src []byte) int {
	res, err := runner.New(c.cfg).Eval(src)
	if err != nil {
		c.report(src, err)
		return 1
	}
	fmt.Fprintln(c.stdout, res.Format())
	return 0
}

func (c *cli) build(args []string) int {
	buildCmd := flag.NewFlagSet("build", flag.ContinueOnError)
	buildCmd.SetOutput(c.stderr)
	out := buildCmd.String("o", "", "Output image path")
	if err := buildCmd.Parse(args); err != nil {
		return 1
	}
	if buildCmd.NArg() != 1 {
		fmt.Fprintln(c.stderr, "Usage: tlang build <file> [-o out.tlc]")
		return 1
	}
	srcPath := buildCmd.Arg(0)

	src, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error reading file: %v\n", err)
		return 1
	}

	r := runner.New(c.cfg)
	code, err := r.Compile(src)
	if err != nil {
		c.report(src, err)
		return 1
	}

	outPath := *out
	if outPath == "" {
		outPath = c.cfg.OutputFor(srcPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		fmt.Fprintf(c.stderr, "Build Error: %v\n", err)
		return 1
	}
	if err := image.WriteFile(outPath, image.New(string(src), code, r.StackDepth())); err != nil {
		fmt.Fprintf(c.stderr, "Build Error: %v\n", err)
		return 1
	}
	log.Infof("wrote %s (%d bytes of bytecode)", outPath, len(code))
	fmt.Fprintln(c.stdout, outPath)
	return 0
}

func (c *cli) exec(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "Usage: tlang exec <image>")
		return 1
	}
	img, err := image.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(c.stderr, "Image Error: %v\n", err)
		return 1
	}

	res, err := runner.New(c.cfg).RunWith(img.Code, vm.NewFixedState(img.StackDepth))
	if err != nil {
		c.report([]byte(img.Source), err)
		return 1
	}
	fmt.Fprintln(c.stdout, res.Format())
	return 0
}

func (c *cli) disasm(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "Usage: tlang disasm <file|image>")
		return 1
	}
	path := args[0]

	var code []byte
	if strings.EqualFold(filepath.Ext(path), config.ImageExt) {
		img, err := image.ReadFile(path)
		if err != nil {
			fmt.Fprintf(c.stderr, "Image Error: %v\n", err)
			return 1
		}
		code = img.Code
	} else {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(c.stderr, "Error reading file: %v\n", err)
			return 1
		}
		code, err = runner.New(c.cfg).Compile(src)
		if err != nil {
			c.report(src, err)
			return 1
		}
	}

	listing, err := vm.Disassemble(code)
	if err != nil {
		fmt.Fprintf(c.stderr, "Disassembly Error: %v\n", err)
		return 1
	}
	fmt.Fprint(c.stdout, listing)
	return 0
}

func (c *cli) report(src []byte, err error) {
	log.Debugf("%v", err)
	var rerr *runner.Error
	if errors.As(err, &rerr) {
		fmt.Fprintln(c.stderr, rerr.Diagnostic(src))
		return
	}
	fmt.Fprintf(c.stderr, "Error: %v\n", err)
}
