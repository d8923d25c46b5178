// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interp runs µASM programs to completion.
//
// The Interp wraps an asm.Machine with the run-level policy the core
// leaves to the caller: the output join mode, an optional executed
// instruction limit, and an optional per-step trace hook. Execution
// errors are reported as *ErrRuntime carrying the offending source
// line; parse errors pass through as *asm.ErrSyntax.
package interp

import (
	"strings"

	"github.com/ezrec/uasm/asm"
)

// TraceFunc observes the machine state ahead of each executed
// instruction. The snapshot is a deep copy; mutating it has no
// effect on the run.
type TraceFunc func(snap asm.Snapshot, inst asm.Inst)

// Interp interprets a parsed program.
type Interp struct {
	Verbose  bool         // If set, enables verbose logging.
	Join     asm.JoinMode // Output join policy.
	MaxSteps int          // Executed instruction limit; 0 is unbounded.
	Trace    TraceFunc    // Optional per-step observer.

	Program *asm.Program // Currently loaded program.
	Machine *asm.Machine // Machine executing the program.
}

// Result is the outcome of one interpretation run.
type Result struct {
	Output    string // Joined msg output; empty unless Completed.
	Completed bool   // True when the program executed end.
	Steps     int    // Instructions executed.
}

// NewInterp creates an interpreter for a parsed program.
func NewInterp(prog *asm.Program) (in *Interp) {
	in = &Interp{
		Program: prog,
		Machine: asm.NewMachine(prog),
	}

	return
}

// Tick executes a single instruction.
func (in *Interp) Tick() (done bool, err error) {
	lineno := in.Program.LineNo(in.Machine.Ip())
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if in.MaxSteps > 0 && in.Machine.Steps() >= in.MaxSteps {
		err = ErrSteps
		return
	}

	in.Machine.Verbose = in.Verbose

	if in.Trace != nil && in.Machine.State() == asm.STATE_RUNNING && in.Machine.Ip() < in.Program.Len() {
		in.Trace(in.Machine.Snapshot(), in.Program.At(in.Machine.Ip()))
	}

	done, err = in.Machine.Step()

	return
}

// Run ticks the machine until the program ends, overruns the table,
// or fails.
func (in *Interp) Run() (err error) {
	var done bool
	for !done && err == nil {
		done, err = in.Tick()
	}

	return
}

// Result returns the outcome of the run so far. The joined output is
// only produced for a completed run; an overrun yields the default
// result, never the partial buffer.
func (in *Interp) Result() (res Result) {
	res = Result{
		Completed: in.Machine.Completed(),
		Steps:     in.Machine.Steps(),
	}
	if res.Completed {
		res.Output = in.Machine.Output(in.Join)
	}

	return
}

// Interpret parses and runs source text with this interpreter's
// settings, replacing any loaded program.
func (in *Interp) Interpret(source string) (res Result, err error) {
	p := &asm.Parser{Verbose: in.Verbose}
	prog, err := p.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	in.Program = prog
	in.Machine = asm.NewMachine(prog)

	err = in.Run()
	if err != nil {
		return
	}

	res = in.Result()
	return
}

// Interpret parses and runs source text with default settings.
func Interpret(source string) (Result, error) {
	in := &Interp{}
	return in.Interpret(source)
}
