package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/naruneph/lockcounter/counter"
	"github.com/naruneph/lockcounter/registry"
)

func init() {
	registry.Register(
		"counter",
		"109 goroutines each doing 100 mutex-protected increments; traces the final value.",
		CounterExample,
	)
	registry.Register(
		"counter_checked",
		"Same fan-out on errgroup; lock failures come back as errors.",
		CheckedCounterExample,
	)
	registry.Register(
		"counter_poisoned",
		"Poisons the lock before the workers start; the first worker aborts the process.",
		PoisonedCounterExample,
	)
}

func CounterExample() {
	Run()
}

func CheckedCounterExample() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := New(DefaultConfig()).RunContext(ctx); err != nil {
		fmt.Println("run error:", err)
	}
}

func PoisonedCounterExample() {
	c := counter.New()
	c.Poison()
	New(DefaultConfig(), WithCounter(c)).Run()
}
