// Package pipeline runs a per-line computation over an input stream
// with a bounded worker pool while re-emitting results in input order.
// The core gives no ordering guarantee across concurrent calls, so the
// re-serialization lives here, next to the I/O.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tzbucket/tzbucket/core/logger"
)

// Func computes one result from one non-blank input line.
type Func[T any] func(line string) (T, error)

// Result pairs a computed value (or error) with its originating line.
type Result[T any] struct {
	Index int
	Line  string
	Value T
	Err   error
}

type job struct {
	index int
	line  string
	err   error
}

// Run streams results for every non-blank line of r, in input order.
// workers < 1 uses one worker per CPU. The output channel closes after
// the last result; cancellation through ctx drops remaining work.
func Run[T any](ctx context.Context, r io.Reader, workers int, log logger.Logger, fn Func[T]) <-chan Result[T] {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	runID := uuid.NewString()
	log.Debugw("pipeline start", map[string]any{"run_id": runID, "workers": workers})

	jobs := make(chan job, workers)
	raw := make(chan Result[T], workers)
	ordered := make(chan Result[T], workers)

	go func() {
		defer close(jobs)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		index := 0
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case jobs <- job{index: index, line: line}:
				index++
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case jobs <- job{index: index, err: fmt.Errorf("read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := Result[T]{Index: j.index, Line: j.line, Err: j.err}
				if j.err == nil {
					res.Value, res.Err = fn(j.line)
				}
				select {
				case raw <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(raw)
	}()

	go func() {
		defer close(ordered)
		pending := make(map[int]Result[T])
		next := 0
		for res := range raw {
			pending[res.Index] = res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				select {
				case ordered <- r:
				case <-ctx.Done():
					return
				}
			}
		}
		log.Debugw("pipeline done", map[string]any{"run_id": runID, "lines": next})
	}()

	return ordered
}
