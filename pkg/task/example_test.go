package task_test

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/runlet/pkg/sched"
	"github.com/bft-labs/runlet/pkg/task"
)

// Example demonstrates start/stop control of a background loop.
func Example() {
	s := sched.New()

	lc, err := task.New(s,
		func(ctx context.Context) { <-ctx.Done() },
		task.WithOnStart(func() { fmt.Println("starting") }),
		task.WithOnStop(func() { fmt.Println("stopping") }),
	)
	if err != nil {
		fmt.Printf("failed to create lifecycle: %v\n", err)
		return
	}

	if err := lc.Start(); err != nil {
		fmt.Printf("failed to start: %v\n", err)
		return
	}

	lc.Stop()
	_ = lc.WaitWithTimeout(time.Second)

	fmt.Println(lc.State())

	// Output:
	// starting
	// stopping
	// Stopped
}

// ExampleLifecycle_Acquire demonstrates scoped acquisition: acquiring
// starts the work, releasing stops it on every exit path.
func ExampleLifecycle_Acquire() {
	s := sched.New()

	lc, err := task.New(s, func(ctx context.Context) { <-ctx.Done() })
	if err != nil {
		fmt.Printf("failed to create lifecycle: %v\n", err)
		return
	}

	g, err := lc.Acquire()
	if err != nil {
		fmt.Printf("failed to acquire: %v\n", err)
		return
	}

	// ... use the running task within the scope ...

	g.Release()

	// Release only requested cancellation; once the work has unwound,
	// re-reporting observes the final state.
	_ = lc.WaitWithTimeout(time.Second)
	fmt.Println(g.Release())

	// Output: Cancelled
}
