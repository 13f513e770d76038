package trace

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dolmen-go/contextio"
)

// Tracer prints debug lines tagged with the caller's file and line.
type Tracer struct {
	l *log.Logger
}

// New returns a Tracer writing to w. Once ctx is done, writes fail and
// lines are dropped.
func New(ctx context.Context, w io.Writer) *Tracer {
	return &Tracer{
		l: log.New(contextio.NewWriter(ctx, w), "", log.Lshortfile),
	}
}

// Stderr returns a Tracer on os.Stderr that never stops.
func Stderr() *Tracer {
	return New(context.Background(), os.Stderr)
}

// Value prints "file:line: name = value" for the caller of Value.
func (t *Tracer) Value(name string, v any) {
	t.ValueDepth(1, name, v)
}

// ValueDepth is Value with the source location taken depth frames above
// the caller of ValueDepth.
func (t *Tracer) ValueDepth(depth int, name string, v any) {
	_ = t.l.Output(depth+2, fmt.Sprintf("%s = %#v", name, v))
}
