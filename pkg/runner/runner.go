// Package runner wires the pipeline together for embedding: source bytes
// are parsed, compiled to bytecode and executed on a fresh VM state.
package runner

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/agenthands/tlang/pkg/compiler/ast"
	"github.com/agenthands/tlang/pkg/compiler/emitter"
	"github.com/agenthands/tlang/pkg/compiler/parser"
	"github.com/agenthands/tlang/pkg/config"
	"github.com/agenthands/tlang/pkg/core/value"
	"github.com/agenthands/tlang/pkg/diag"
	"github.com/agenthands/tlang/pkg/vm"
)

var log = commonlog.GetLogger("tlang.runner")

// Stage names the pipeline step that failed.
type Stage uint8

const (
	StageParse Stage = iota
	StageCompile
	StageRun
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageCompile:
		return "compile"
	case StageRun:
		return "run"
	}
	return "unknown"
}

// Error tags a failure with its stage. The underlying error keeps its own
// type: *parser.Error, emitter.ErrIO or one of the vm errors.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic renders the failure for display. Parse errors get the
// offending source line with a caret marker.
func (e *Error) Diagnostic(src []byte) string {
	if perr, ok := e.Err.(*parser.Error); ok {
		return diag.FromSource(src, perr.Pos).String() + "\nParse error: " + perr.Msg
	}
	return e.Error()
}

// Runner evaluates programs with a fixed configuration.
type Runner struct {
	stackDepth int
}

// New creates a runner. A nil cfg means config.Default.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{stackDepth: cfg.VM.StackDepth}
}

// StackDepth is the capacity of states created by Run.
func (r *Runner) StackDepth() int {
	return r.stackDepth
}

// Parse builds the AST for src.
func (r *Runner) Parse(src []byte) (ast.Expr, error) {
	expr, err := parser.ParseBytes(src)
	if err != nil {
		log.Debugf("parse failed: %v", err)
		return nil, &Error{Stage: StageParse, Err: err}
	}
	return expr, nil
}

// Compile parses src and returns its bytecode.
func (r *Runner) Compile(src []byte) ([]byte, error) {
	expr, err := r.Parse(src)
	if err != nil {
		return nil, err
	}
	code, err := emitter.CompileBytes(expr)
	if err != nil {
		return nil, &Error{Stage: StageCompile, Err: err}
	}
	log.Debugf("compiled %d source bytes to %d bytecode bytes", len(src), len(code))
	return code, nil
}

// Run executes code on a new state of the configured depth.
func (r *Runner) Run(code []byte) (value.Value, error) {
	return r.RunWith(code, vm.NewFixedState(r.stackDepth))
}

// RunWith executes code on a caller-owned state.
func (r *Runner) RunWith(code []byte, st *vm.State) (value.Value, error) {
	res, err := vm.RunBytes(code, st)
	if err != nil {
		log.Debugf("run failed: %v", err)
		return value.Void, &Error{Stage: StageRun, Err: err}
	}
	log.Debugf("result %v", res)
	return res, nil
}

// Eval compiles and runs src.
func (r *Runner) Eval(src []byte) (value.Value, error) {
	code, err := r.Compile(src)
	if err != nil {
		return value.Void, err
	}
	return r.Run(code)
}

// Eval evaluates src with the default configuration.
func Eval(src string) (value.Value, error) {
	return New(nil).Eval([]byte(src))
}
