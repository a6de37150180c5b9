package pipeline

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzbucket/tzbucket/core/logger"
)

func collect[T any](ch <-chan Result[T]) []Result[T] {
	var out []Result[T]
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func TestRunPreservesInputOrder(t *testing.T) {
	input := strings.Join([]string{"1", "2", "3", "4", "5", "6", "7", "8"}, "\n")
	results := collect(Run(context.Background(), strings.NewReader(input), 4, logger.NopLogger{},
		func(line string) (int, error) {
			n, err := strconv.Atoi(line)
			return n * 10, err
		}))

	require.Len(t, results, 8)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.NoError(t, r.Err)
		assert.Equal(t, (i+1)*10, r.Value)
	}
}

func TestRunSkipsBlankLines(t *testing.T) {
	input := "a\n\n  \nb\n\nc\n"
	results := collect(Run(context.Background(), strings.NewReader(input), 2, logger.NopLogger{},
		func(line string) (string, error) { return line, nil }))

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Value)
	assert.Equal(t, "b", results[1].Value)
	assert.Equal(t, "c", results[2].Value)
}

func TestRunCarriesPerLineErrors(t *testing.T) {
	boom := errors.New("bad line")
	input := "ok\nfail\nok\n"
	results := collect(Run(context.Background(), strings.NewReader(input), 3, logger.NopLogger{},
		func(line string) (string, error) {
			if line == "fail" {
				return "", boom
			}
			return line, nil
		}))

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.Equal(t, "fail", results[1].Line)
	assert.NoError(t, results[2].Err)
}

func TestRunDefaultsWorkerCount(t *testing.T) {
	results := collect(Run(context.Background(), strings.NewReader("x\n"), 0, logger.NopLogger{},
		func(line string) (string, error) { return line, nil }))
	require.Len(t, results, 1)
	assert.Equal(t, "x", results[0].Value)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch := Run(ctx, strings.NewReader(strings.Repeat("line\n", 1000)), 2, logger.NopLogger{},
		func(line string) (string, error) { return line, nil })
	results := collect(ch)
	assert.Less(t, len(results), 1000)
}
