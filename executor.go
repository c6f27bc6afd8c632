package abparallel

import (
	"fmt"
	"sync"

	"github.com/ahboujelben/ABParallel/internal"
)

// A Task is a handle for a spawned thunk, created by an Executor's Spawn
// method and consumed exactly once by Join.
type Task struct {
	wg sync.WaitGroup
	p  interface{}
}

// Join blocks until the spawned thunk has terminated. If the thunk
// panicked, Join panics with the recovered value, wrapped with the
// thunk's stack trace. Join must be called exactly once per task.
func (t *Task) Join() {
	t.wg.Wait()
	if t.p != nil {
		panic(t.p)
	}
}

/*
An Executor spawns thunks as concurrently schedulable tasks. The engines
in the parallel and sort packages are parameterized over this interface,
so that the concurrency backend is swappable.

Spawn returns a handle that must be joined exactly once. A panic inside
the thunk is captured by the task and re-raised at the join point; it is
never dropped.
*/
type Executor interface {
	Spawn(thunk Thunk) *Task
}

// Goroutines is the default Executor. Every spawned thunk runs in its
// own goroutine, scheduled by the Go runtime; the number of
// simultaneously live tasks is not bounded by this backend.
type Goroutines struct{}

// Spawn implements the Executor interface.
func (Goroutines) Spawn(thunk Thunk) *Task {
	t := new(Task)
	t.wg.Add(1)
	go func() {
		defer func() {
			t.p = internal.WrapPanic(recover())
			t.wg.Done()
		}()
		thunk()
	}()
	return t
}

// Limited is an Executor that bounds the number of concurrently spawned
// goroutines. When the bound is reached, Spawn runs the thunk inline on
// the calling goroutine instead of blocking, so that recursive spawns
// cannot deadlock on the bound.
type Limited struct {
	semaphore chan struct{}
}

// NewLimited returns a Limited executor that runs at most n spawned
// thunks in their own goroutines at any time, with n >= 1. Counting the
// calling goroutine, at most n+1 thunks make progress concurrently.
//
// NewLimited panics if n < 1.
func NewLimited(n int) *Limited {
	if n < 1 {
		panic(fmt.Sprintf("invalid concurrency limit: %v", n))
	}
	return &Limited{semaphore: make(chan struct{}, n)}
}

// Spawn implements the Executor interface.
func (l *Limited) Spawn(thunk Thunk) *Task {
	t := new(Task)
	t.wg.Add(1)
	select {
	case l.semaphore <- struct{}{}:
		go func() {
			defer func() {
				t.p = internal.WrapPanic(recover())
				<-l.semaphore
				t.wg.Done()
			}()
			thunk()
		}()
	default:
		func() {
			defer func() {
				t.p = internal.WrapPanic(recover())
				t.wg.Done()
			}()
			thunk()
		}()
	}
	return t
}
