// Package render encodes computation results for the CLI and the HTTP
// API: NDJSON per input line, pretty JSON for single documents, and
// plain text lines. Local instants always carry an explicit offset and
// UTC instants end in Z.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tzbucket/tzbucket/core/model"
)

// BucketJSON is the wire form of one bucket.
type BucketJSON struct {
	Key        string `json:"key"`
	StartLocal string `json:"start_local"`
	EndLocal   string `json:"end_local"`
	StartUTC   string `json:"start_utc"`
	EndUTC     string `json:"end_utc"`
}

// NewBucketJSON converts a computed bucket to its wire form.
func NewBucketJSON(b model.Bucket) BucketJSON {
	return BucketJSON{
		Key:        b.Key,
		StartLocal: b.Start.LocalString(),
		EndLocal:   b.End.LocalString(),
		StartUTC:   b.Start.UTCString(),
		EndUTC:     b.End.UTCString(),
	}
}

// Line renders the bucket as a single text line.
func (b BucketJSON) Line() string {
	return fmt.Sprintf("%s: %s to %s", b.Key, b.StartLocal, b.EndLocal)
}

// InputTimestamp echoes the parsed input.
type InputTimestamp struct {
	TS      string `json:"ts"`
	EpochMS int64  `json:"epoch_ms"`
}

// BucketResult is the per-line output of the bucket operation.
type BucketResult struct {
	Input    InputTimestamp `json:"input"`
	TZ       string         `json:"tz"`
	Interval string         `json:"interval"`
	Bucket   BucketJSON     `json:"bucket"`
}

// NewBucketResult assembles the bucket operation output for one input.
func NewBucketResult(input string, utc time.Time, tz string, interval model.Interval, b model.Bucket) BucketResult {
	return BucketResult{
		Input:    InputTimestamp{TS: input, EpochMS: utc.UnixMilli()},
		TZ:       tz,
		Interval: interval.String(),
		Bucket:   NewBucketJSON(b),
	}
}

// Text renders the result as a single text line.
func (r BucketResult) Text() string {
	return fmt.Sprintf("%s -> %s to %s", r.Bucket.Key, r.Bucket.StartLocal, r.Bucket.EndLocal)
}

// Resolution reports which policy resolved an irregular local time and
// the RFC3339 instant it resolved to.
type Resolution struct {
	Policy string `json:"policy"`
	Result string `json:"result"`
}

// ExplainResult is the output of the explain operation.
type ExplainResult struct {
	LocalTime  string      `json:"local_time"`
	TZ         string      `json:"tz"`
	Status     string      `json:"status"`
	Resolution *Resolution `json:"resolution,omitempty"`
}

// Text renders the explain result as a multi-line block.
func (e ExplainResult) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Local time: %s\n", e.LocalTime)
	fmt.Fprintf(&sb, "Timezone: %s\n", e.TZ)
	fmt.Fprintf(&sb, "Status: %s\n", e.Status)
	if e.Resolution != nil {
		fmt.Fprintf(&sb, "Resolution: %s -> %s\n", e.Resolution.Policy, e.Resolution.Result)
	}
	return sb.String()
}

// ErrorEnvelope is the JSON error shape shared by CLI stderr and the
// HTTP API.
type ErrorEnvelope struct {
	Error    string `json:"error"`
	ExitCode int    `json:"exit_code"`
	Status   string `json:"status,omitempty"`
}

// WriteNDJSON writes v as one compact JSON line.
func WriteNDJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

// WriteJSON writes v as an indented JSON document followed by a
// newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RangeText writes one text line per bucket.
func RangeText(w io.Writer, buckets []BucketJSON) error {
	for _, b := range buckets {
		if _, err := fmt.Fprintln(w, b.Line()); err != nil {
			return err
		}
	}
	return nil
}

// Buckets converts a bucket slice to wire form. The result is never
// nil so an empty range encodes as [].
func Buckets(in []model.Bucket) []BucketJSON {
	out := make([]BucketJSON, 0, len(in))
	for _, b := range in {
		out = append(out, NewBucketJSON(b))
	}
	return out
}
