package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tzbucket/tzbucket/app"
	"github.com/tzbucket/tzbucket/pkg/render"
)

var explainFlags struct {
	tz          string
	local       string
	nonexistent string
	ambiguous   string
	output      string
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain local time resolution (DST handling)",
	Long: `Classifies a naive local time as normal, nonexistent or ambiguous
and shows how the selected policies resolve it.`,
	RunE: runExplain,
}

func init() {
	f := explainCmd.Flags()
	f.StringVarP(&explainFlags.tz, "tz", "t", "", "IANA timezone")
	f.StringVar(&explainFlags.local, "local", "", "local time without offset (e.g. 2026-03-29T02:30:00)")
	f.StringVar(&explainFlags.nonexistent, "policy-nonexistent", "", "policy for nonexistent times: error, shift_forward, shift_backward")
	f.StringVar(&explainFlags.ambiguous, "policy-ambiguous", "", "policy for ambiguous times: error, first, second")
	f.StringVar(&explainFlags.output, "output-format", "", "output format: json, text")
	_ = explainCmd.MarkFlagRequired("local")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
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

	out, err := resolveOutput(explainFlags.output, cfg, "json")
	if err != nil {
		return err
	}
	req, err := svc.RequestFrom(explainFlags.tz, "", "", "")
	if err != nil {
		return err
	}
	pol, err := app.PolicyFrom(explainFlags.nonexistent, explainFlags.ambiguous)
	if err != nil {
		return err
	}

	res, err := svc.Explain(explainFlags.local, req.TZ, pol)
	if err != nil {
		return app.Classify(err)
	}

	if out == "json" {
		if err := render.WriteJSON(os.Stdout, res); err != nil {
			return app.RuntimeError(fmt.Sprintf("write output: %v", err))
		}
	} else {
		fmt.Print(res.Text())
	}
	if err := svc.Sink().RecordLines("explain", 1); err != nil {
		svc.Log().Warnf("record lines: %v", err)
	}
	return nil
}
