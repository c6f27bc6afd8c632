package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// CheckRange panics unless 0 <= low <= high.
func CheckRange(low, high int) {
	if (low < 0) || (high < low) {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
}

// CheckThreshold panics unless threshold is at least one.
func CheckThreshold(threshold int) {
	if threshold < 1 {
		panic(fmt.Sprintf("invalid threshold: %v", threshold))
	}
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
