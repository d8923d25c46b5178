package interp

import (
	"errors"

	"github.com/ezrec/uasm/translate"
)

var f = translate.From

// ErrSteps reports that the configured step limit was reached.
var ErrSteps = errors.New(f("step limit reached"))

// ErrRuntime indicates the source location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
