package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzbucket/tzbucket/config"
	"github.com/tzbucket/tzbucket/core/logger"
	coremetrics "github.com/tzbucket/tzbucket/core/metrics"
	"github.com/tzbucket/tzbucket/core/model"
	"github.com/tzbucket/tzbucket/core/parse"
	infratz "github.com/tzbucket/tzbucket/infra/timezone"
)

func newTestService() *Service {
	return NewWith(config.Default(), infratz.NewStdOracle(), coremetrics.NopSink{}, logger.NopLogger{})
}

func berlinRequest() Request {
	return Request{
		TZ:        "Europe/Berlin",
		Interval:  model.IntervalDay,
		WeekStart: model.WeekStartMonday,
		Format:    parse.FormatEpochMs,
	}
}

func TestServiceBucket(t *testing.T) {
	svc := newTestService()
	res, err := svc.Bucket("1774743300000", berlinRequest())
	require.NoError(t, err)

	assert.Equal(t, "1774743300000", res.Input.TS)
	assert.Equal(t, int64(1774739700000), res.Input.EpochMS)
	assert.Equal(t, "Europe/Berlin", res.TZ)
	assert.Equal(t, "day", res.Interval)
	assert.Equal(t, "2026-03-29", res.Bucket.Key)
	assert.Equal(t, "2026-03-28T23:00:00Z", res.Bucket.StartUTC)
	assert.Equal(t, "2026-03-29T22:00:00Z", res.Bucket.EndUTC)
}

func TestServiceBucketBadInput(t *testing.T) {
	svc := newTestService()
	_, err := svc.Bucket("not-a-number", berlinRequest())
	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ExitInput, appErr.Code)
}

func TestServiceRange(t *testing.T) {
	svc := newTestService()
	buckets, err := svc.Range("2026-03-28T00:00:00Z", "2026-03-30T00:00:00Z", berlinRequest())
	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2026-03-28", buckets[0].Key)
	assert.Equal(t, "2026-03-29", buckets[1].Key)
	assert.Equal(t, "2026-03-30", buckets[2].Key)
}

func TestServiceRangeInvalidOrder(t *testing.T) {
	svc := newTestService()
	_, err := svc.Range("2026-03-30T00:00:00Z", "2026-03-28T00:00:00Z", berlinRequest())
	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ExitInput, appErr.Code)
}

func TestServiceRangeRejectsEpochBounds(t *testing.T) {
	svc := newTestService()
	_, err := svc.Range("1774743300000", "2026-03-30T00:00:00Z", berlinRequest())
	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ExitInput, appErr.Code)
	assert.Contains(t, appErr.Message, "invalid start timestamp")
}

func TestServiceExplainNormal(t *testing.T) {
	svc := newTestService()
	res, err := svc.Explain("2026-06-15T12:00:00", "Europe/Berlin", model.Policy{})
	require.NoError(t, err)
	assert.Equal(t, "normal", res.Status)
	assert.Nil(t, res.Resolution)
}

func TestServiceExplainNonexistentShiftForward(t *testing.T) {
	svc := newTestService()
	pol := model.Policy{Nonexistent: model.NonexistentShiftForward}
	res, err := svc.Explain("2026-03-29T02:30:00", "Europe/Berlin", pol)
	require.NoError(t, err)
	assert.Equal(t, "nonexistent", res.Status)
	require.NotNil(t, res.Resolution)
	assert.Equal(t, "shift_forward", res.Resolution.Policy)
	assert.Equal(t, "2026-03-29T03:30:00+02:00", res.Resolution.Result)
}

func TestServiceExplainAmbiguousErrorPolicy(t *testing.T) {
	svc := newTestService()
	_, err := svc.Explain("2026-10-25T02:30:00", "Europe/Berlin", model.Policy{})
	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ExitInput, appErr.Code)
	assert.Equal(t, "ambiguous", appErr.Status)
}

func TestServiceExplainAmbiguousSecond(t *testing.T) {
	svc := newTestService()
	pol := model.Policy{Ambiguous: model.AmbiguousSecond}
	res, err := svc.Explain("2026-10-25T02:30:00", "Europe/Berlin", pol)
	require.NoError(t, err)
	assert.Equal(t, "ambiguous", res.Status)
	require.NotNil(t, res.Resolution)
	assert.Equal(t, "second", res.Resolution.Policy)
	assert.Equal(t, "2026-10-25T02:30:00+01:00", res.Resolution.Result)
}

func TestServiceCheckZone(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.CheckZone("Europe/Berlin"))

	err := svc.CheckZone("Mars/Olympus")
	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ExitInput, appErr.Code)
}
