package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzbucket/tzbucket/core/model"
)

func dstDayBucket() model.Bucket {
	return model.Bucket{
		Key: "2026-03-29",
		Start: model.ZonedInstant{
			UTC:    time.Date(2026, 3, 28, 23, 0, 0, 0, time.UTC),
			Zone:   "Europe/Berlin",
			Offset: 3600,
		},
		End: model.ZonedInstant{
			UTC:    time.Date(2026, 3, 29, 22, 0, 0, 0, time.UTC),
			Zone:   "Europe/Berlin",
			Offset: 7200,
		},
	}
}

func TestNewBucketJSON(t *testing.T) {
	b := NewBucketJSON(dstDayBucket())
	assert.Equal(t, "2026-03-29", b.Key)
	assert.Equal(t, "2026-03-29T00:00:00+01:00", b.StartLocal)
	assert.Equal(t, "2026-03-30T00:00:00+02:00", b.EndLocal)
	assert.Equal(t, "2026-03-28T23:00:00Z", b.StartUTC)
	assert.Equal(t, "2026-03-29T22:00:00Z", b.EndUTC)
}

func TestBucketResultNDJSON(t *testing.T) {
	utc := time.Date(2026, 3, 29, 0, 15, 0, 0, time.UTC)
	res := NewBucketResult("1774743300000", utc, "Europe/Berlin", model.IntervalDay, dstDayBucket())

	var buf bytes.Buffer
	require.NoError(t, WriteNDJSON(&buf, res))
	line := buf.String()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	input := decoded["input"].(map[string]any)
	assert.Equal(t, "1774743300000", input["ts"])
	assert.Equal(t, float64(1774739700000), input["epoch_ms"])
	assert.Equal(t, "Europe/Berlin", decoded["tz"])
	assert.Equal(t, "day", decoded["interval"])
	bucket := decoded["bucket"].(map[string]any)
	assert.Equal(t, "2026-03-29", bucket["key"])
}

func TestBucketResultText(t *testing.T) {
	utc := time.Date(2026, 3, 29, 0, 15, 0, 0, time.UTC)
	res := NewBucketResult("1774743300000", utc, "Europe/Berlin", model.IntervalDay, dstDayBucket())
	assert.Equal(t,
		"2026-03-29 -> 2026-03-29T00:00:00+01:00 to 2026-03-30T00:00:00+02:00",
		res.Text())
}

func TestExplainResultText(t *testing.T) {
	e := ExplainResult{
		LocalTime: "2026-03-29T02:30:00",
		TZ:        "Europe/Berlin",
		Status:    "nonexistent",
		Resolution: &Resolution{
			Policy: "shift_forward",
			Result: "2026-03-29T03:30:00+02:00",
		},
	}
	want := "Local time: 2026-03-29T02:30:00\n" +
		"Timezone: Europe/Berlin\n" +
		"Status: nonexistent\n" +
		"Resolution: shift_forward -> 2026-03-29T03:30:00+02:00\n"
	assert.Equal(t, want, e.Text())
}

func TestExplainResultJSONOmitsResolution(t *testing.T) {
	e := ExplainResult{LocalTime: "2026-06-15T12:00:00", TZ: "UTC", Status: "normal"}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "resolution")
}

func TestErrorEnvelope(t *testing.T) {
	data, err := json.Marshal(ErrorEnvelope{Error: "boom", ExitCode: 2, Status: "ambiguous"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom","exit_code":2,"status":"ambiguous"}`, string(data))

	data, err = json.Marshal(ErrorEnvelope{Error: "boom", ExitCode: 3})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "status")
}

func TestRangeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RangeText(&buf, Buckets([]model.Bucket{dstDayBucket()})))
	assert.Equal(t,
		"2026-03-29: 2026-03-29T00:00:00+01:00 to 2026-03-30T00:00:00+02:00\n",
		buf.String())
}

func TestBucketsEmptyIsNotNil(t *testing.T) {
	out := Buckets(nil)
	require.NotNil(t, out)
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
