package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tzbucket/tzbucket/app"
	"github.com/tzbucket/tzbucket/internal/pipeline"
	"github.com/tzbucket/tzbucket/pkg/render"
)

var bucketFlags struct {
	tz        string
	interval  string
	weekStart string
	format    string
	output    string
	input     string
	workers   int
}

var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Compute time buckets for timestamps",
	Long: `Reads one timestamp per line from a file or stdin and prints the
calendar bucket enclosing each one, NDJSON or text per line.`,
	RunE: runBucket,
}

func init() {
	f := bucketCmd.Flags()
	f.StringVarP(&bucketFlags.tz, "tz", "t", "", "IANA timezone (e.g. Europe/Berlin)")
	f.StringVarP(&bucketFlags.interval, "interval", "i", "", "bucket interval: day, week, month")
	f.StringVar(&bucketFlags.weekStart, "week-start", "", "week start day: monday or sunday")
	f.StringVarP(&bucketFlags.format, "format", "f", "", "input format: epoch_ms, epoch_s, rfc3339, auto")
	f.StringVar(&bucketFlags.output, "output-format", "", "output format: json, text")
	f.StringVar(&bucketFlags.input, "input", "-", "input file path (use - for stdin)")
	f.IntVar(&bucketFlags.workers, "workers", 0, "concurrent workers (0 = one per CPU)")
	rootCmd.AddCommand(bucketCmd)
}

func runBucket(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return app.RuntimeError(err.Error())
	}
	defer func() {
		if err := svc.Close(); err != nil {
			svc.Log().Errorf("service close: %v", err)
		}
	}()

	out, err := resolveOutput(bucketFlags.output, cfg, "text")
	if err != nil {
		return err
	}
	req, err := svc.RequestFrom(bucketFlags.tz, bucketFlags.interval, bucketFlags.weekStart, bucketFlags.format)
	if err != nil {
		return err
	}

	var reader io.ReadCloser = os.Stdin
	if bucketFlags.input != "-" {
		file, err := os.Open(bucketFlags.input)
		if err != nil {
			return app.RuntimeError(fmt.Sprintf("failed to open file %q: %v", bucketFlags.input, err))
		}
		defer file.Close()
		reader = file
	}

	workers := bucketFlags.workers
	if workers == 0 {
		workers = cfg.Defaults.Workers
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	lines := 0
	results := pipeline.Run(ctx, reader, workers, svc.Log(), func(line string) (render.BucketResult, error) {
		return svc.Bucket(line, req)
	})
	for res := range results {
		if res.Err != nil {
			cancel()
			appErr := app.Classify(res.Err)
			if appErr.Code == app.ExitInput && res.Line != "" {
				appErr = &app.Error{
					Message: fmt.Sprintf("error processing %q: %s", res.Line, appErr.Message),
					Code:    appErr.Code,
					Status:  appErr.Status,
				}
			}
			return appErr
		}
		if out == "json" {
			if err := render.WriteNDJSON(os.Stdout, res.Value); err != nil {
				return app.RuntimeError(fmt.Sprintf("write output: %v", err))
			}
		} else {
			fmt.Println(res.Value.Text())
		}
		lines++
	}
	if err := svc.Sink().RecordLines("bucket", lines); err != nil {
		svc.Log().Warnf("record lines: %v", err)
	}
	return nil
}
