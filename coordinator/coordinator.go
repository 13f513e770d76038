package coordinator

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/naruneph/lockcounter/counter"
	"github.com/naruneph/lockcounter/trace"
)

const (
	DefaultWorkers    = 109
	DefaultIterations = 100
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("coordinator: invalid config")

// Config sizes the fan-out.
type Config struct {
	Workers    int // goroutines spawned
	Iterations int // protected increments per goroutine
}

// DefaultConfig returns 109 workers with 100 increments each.
func DefaultConfig() Config {
	return Config{Workers: DefaultWorkers, Iterations: DefaultIterations}
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be >= 0, got %d", ErrInvalidConfig, c.Iterations)
	}
	return nil
}

// Expected is the value the counter holds after a complete run.
func (c Config) Expected() int {
	return c.Workers * c.Iterations
}

// Coordinator spawns workers against one shared counter and waits for
// all of them before reading the result.
type Coordinator struct {
	cfg     Config
	counter *counter.Counter
	tracer  *trace.Tracer
	abort   func(error)
}

type Option func(*Coordinator)

// WithCounter makes the coordinator increment c instead of a fresh counter.
func WithCounter(c *counter.Counter) Option {
	return func(co *Coordinator) { co.counter = c }
}

func WithTracer(t *trace.Tracer) Option {
	return func(co *Coordinator) { co.tracer = t }
}

// WithAbort replaces the fatal routine called on lock failure.
// fn must not return normally.
func WithAbort(fn func(error)) Option {
	return func(co *Coordinator) { co.abort = fn }
}

// New panics on an invalid config.
func New(cfg Config, opts ...Option) *Coordinator {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	co := &Coordinator{
		cfg:     cfg,
		counter: counter.New(),
		tracer:  trace.Stderr(),
		abort:   fatal,
	}
	for _, opt := range opts {
		opt(co)
	}
	return co
}

// Counter returns the shared counter.
func (co *Coordinator) Counter() *counter.Counter {
	return co.counter
}

func fatal(err error) {
	log.New(os.Stderr, "", log.Lshortfile).Output(2, "fatal: "+err.Error())
	os.Exit(1)
}

// Run spawns cfg.Workers goroutines, each doing cfg.Iterations protected
// increments, joins them in creation order and returns the final value.
// A lock failure in any worker aborts the run.
func (co *Coordinator) Run() int {
	handles := make([]*Handle, 0, co.cfg.Workers)
	for i := 0; i < co.cfg.Workers; i++ {
		i := i
		handles = append(handles, spawn(func() { co.work(i) }))
	}
	for _, h := range handles {
		h.Join()
	}

	v, err := co.counter.Value()
	if err != nil {
		co.abort(fmt.Errorf("read result: %w", err))
		return 0
	}
	co.tracer.Value("counter", v)
	return v
}

func (co *Coordinator) work(id int) {
	for it := 0; it < co.cfg.Iterations; it++ {
		if err := co.counter.Increment(); err != nil {
			co.abort(fmt.Errorf("worker %d: %w", id, err))
			return
		}
	}
}

// Run executes the default 109x100 fan-out and returns 10900.
func Run() int {
	return New(DefaultConfig()).Run()
}
