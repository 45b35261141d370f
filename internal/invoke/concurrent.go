package invoke

import (
	stdcontext "context"

	"golang.org/x/sync/errgroup"

	"github.com/lyraproj/feel-evaluator/context"
	"github.com/lyraproj/feel-evaluator/value"
)

// Invocation is one function/argument pair for InvokeAll.
type Invocation struct {
	Fn   value.Function
	Args Args
}

// InvokeAll fans out several independent invocations concurrently and
// collects their results in the same order as calls. Evaluation never mutates a Context, so
// every goroutine sharing the same read-only ctx is safe.
func InvokeAll(ctx *context.Context, calls []Invocation) []value.Value {
	results := make([]value.Value, len(calls))
	g, _ := errgroup.WithContext(stdcontext.Background())
	for i, c := range calls {
		i, c := i, c
		g.Go(func() error {
			results[i] = Call(ctx, c.Fn, c.Args)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
