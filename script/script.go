// Package script loads and runs Starlark scenario suites against the
// interpreter.
//
// A suite file is a Starlark program that registers scenarios through
// the predeclared case() builtin:
//
//	case(
//	    name = "first program",
//	    source = "mov a, 5\ninc a\nend\n",
//	    want = "",
//	)
//
// A case either expects an output (want), expects termination without
// end (want_default), or expects an error containing a substring
// (want_error). The join keyword selects the output join mode.
package script

import (
	"context"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/uasm/asm"
	"github.com/ezrec/uasm/internal"
	"github.com/ezrec/uasm/interp"
)

// Case is a single scripted interpreter scenario.
type Case struct {
	Name        string // Case name.
	Source      string // Program source text.
	Want        string // Expected output for a completed run.
	WantDefault bool   // Expect termination without end.
	WantError   string // Expected error substring.
	Join        string // Output join mode; concat when empty.
	Steps       int    // Step limit; 0 is unbounded.
}

// Suite is an ordered collection of cases.
type Suite struct {
	Cases []Case
}

// Load reads and executes a Starlark suite file.
func Load(filename string) (suite *Suite, err error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	return LoadSource(filename, string(src))
}

// LoadSource executes Starlark suite text, collecting the registered
// cases in execution order.
func LoadSource(filename string, src string) (suite *Suite, err error) {
	suite = &Suite{}

	caseFn := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var c Case
		uerr := starlark.UnpackArgs(b.Name(), args, kwargs,
			"name", &c.Name,
			"source", &c.Source,
			"want?", &c.Want,
			"want_default?", &c.WantDefault,
			"want_error?", &c.WantError,
			"join?", &c.Join,
			"steps?", &c.Steps,
		)
		if uerr != nil {
			return nil, uerr
		}
		suite.Cases = append(suite.Cases, c)
		return starlark.None, nil
	}

	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"case": starlark.NewBuiltin("case", caseFn),
	}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		suite = nil
		return
	}

	return
}

// Merge concatenates suites in order.
func Merge(suites ...*Suite) (merged *Suite) {
	seqs := make([]iter.Seq[Case], len(suites))
	for n, suite := range suites {
		seqs[n] = slices.Values(suite.Cases)
	}

	merged = &Suite{}
	for c := range internal.IterSeqConcat(seqs...) {
		merged.Cases = append(merged.Cases, c)
	}

	return
}

// Run interprets every case and returns the names of the failed
// ones. The context is checked between cases.
func (suite *Suite) Run(ctx context.Context, logger *log.Logger) (failed []string, err error) {
	for _, c := range suite.Cases {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		if !c.run(logger) {
			failed = append(failed, c.Name)
		}
	}

	return
}

// run interprets one case and logs the outcome.
func (c *Case) run(logger *log.Logger) (ok bool) {
	in := &interp.Interp{MaxSteps: c.Steps}
	if c.Join != "" {
		mode, err := asm.ParseJoinMode(c.Join)
		if err != nil {
			logger.Error("Bad join mode",
				log.String("case", c.Name),
				log.String("join", c.Join))
			return
		}
		in.Join = mode
	}

	res, err := in.Interpret(c.Source)

	switch {
	case c.WantError != "":
		if err == nil || !strings.Contains(err.Error(), c.WantError) {
			logger.Error("Expected error",
				log.String("case", c.Name),
				log.String("want", c.WantError),
				log.Err(err))
			return
		}
	case err != nil:
		logger.Error("Case failed",
			log.String("case", c.Name),
			log.Err(err))
		return
	case c.WantDefault:
		if res.Completed {
			logger.Error("Expected default result",
				log.String("case", c.Name),
				log.String("output", res.Output))
			return
		}
	default:
		if !res.Completed || res.Output != c.Want {
			logger.Error("Output mismatch",
				log.String("case", c.Name),
				log.String("want", c.Want),
				log.String("output", res.Output))
			return
		}
	}

	logger.Debug("Case passed",
		log.String("case", c.Name),
		log.Int("steps", res.Steps))

	ok = true
	return
}
