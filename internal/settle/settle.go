// Package settle runs independent tasks concurrently and waits for all of
// them, collecting each task's value or error. One failing task never
// cancels or hides the others.
package settle

import (
	"context"
	"fmt"
	"sync"
)

// Task is a unit of work started by All.
type Task[T any] func(ctx context.Context) (T, error)

// Outcome is the settled result of one task.
type Outcome[T any] struct {
	Value T
	Err   error
}

// All starts every task in its own goroutine and blocks until all have
// returned. Outcomes are indexed like tasks. A panicking task settles with
// an error.
func All[T any](ctx context.Context, tasks []Task[T]) []Outcome[T] {
	out := make([]Outcome[T], len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(i int, task Task[T]) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					out[i].Err = fmt.Errorf("task %d panicked: %v", i, r)
				}
			}()
			out[i].Value, out[i].Err = task(ctx)
		}(i, task)
	}
	wg.Wait()
	return out
}

// Failed returns the number of outcomes carrying an error.
func Failed[T any](outcomes []Outcome[T]) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
