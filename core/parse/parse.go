// Package parse turns textual timestamps and naive local datetimes
// into core values. All failures are *Error so callers can map them to
// the input error class.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Error reports malformed input.
type Error struct {
	Input  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error for %q: %s", e.Input, e.Reason)
}

// Format selects how timestamp strings are interpreted.
type Format int

const (
	// FormatEpochMs expects Unix epoch milliseconds.
	FormatEpochMs Format = iota
	// FormatEpochS expects Unix epoch seconds.
	FormatEpochS
	// FormatRFC3339 expects an RFC3339 timestamp with Z or offset.
	FormatRFC3339
	// FormatAuto detects RFC3339 vs epoch ms vs epoch s.
	FormatAuto
)

func (f Format) String() string {
	switch f {
	case FormatEpochS:
		return "epoch_s"
	case FormatRFC3339:
		return "rfc3339"
	case FormatAuto:
		return "auto"
	}
	return "epoch_ms"
}

// ParseFormat converts a user-supplied string into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "epoch_ms":
		return FormatEpochMs, nil
	case "epoch_s":
		return FormatEpochS, nil
	case "rfc3339":
		return FormatRFC3339, nil
	case "auto":
		return FormatAuto, nil
	}
	return 0, &Error{Input: s, Reason: "expected epoch_ms, epoch_s, rfc3339 or auto"}
}

// Timestamp parses one timestamp string into a UTC instant.
func Timestamp(input string, format Format) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	switch format {
	case FormatEpochMs:
		return epochMs(trimmed)
	case FormatEpochS:
		return epochS(trimmed)
	case FormatRFC3339:
		return rfc3339(trimmed)
	case FormatAuto:
		return auto(trimmed)
	}
	return time.Time{}, &Error{Input: input, Reason: "unknown timestamp format"}
}

func epochMs(input string) (time.Time, error) {
	ms, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return time.Time{}, &Error{Input: input, Reason: "expected integer epoch milliseconds"}
	}
	return time.UnixMilli(ms).UTC(), nil
}

func epochS(input string) (time.Time, error) {
	s, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return time.Time{}, &Error{Input: input, Reason: "expected integer epoch seconds"}
	}
	return time.Unix(s, 0).UTC(), nil
}

func rfc3339(input string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return time.Time{}, &Error{Input: input, Reason: "expected RFC3339 timestamp"}
	}
	return t.UTC(), nil
}

// auto picks a format: anything shaped like RFC3339 parses as such,
// numeric values above 1e10 count as milliseconds, the rest as seconds.
func auto(input string) (time.Time, error) {
	if strings.ContainsAny(input, "TZ:+") {
		return rfc3339(input)
	}
	num, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return time.Time{}, &Error{Input: input, Reason: "could not auto-detect timestamp format"}
	}
	if num > 10_000_000_000 {
		return time.UnixMilli(num).UTC(), nil
	}
	return time.Unix(num, 0).UTC(), nil
}
