// Package app wires the core engine to its infrastructure and exposes
// the three operations the CLI and the HTTP API share.
package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tzbucket/tzbucket/config"
	"github.com/tzbucket/tzbucket/core/bucket"
	"github.com/tzbucket/tzbucket/core/dst"
	"github.com/tzbucket/tzbucket/core/logger"
	coremetrics "github.com/tzbucket/tzbucket/core/metrics"
	"github.com/tzbucket/tzbucket/core/model"
	"github.com/tzbucket/tzbucket/core/parse"
	"github.com/tzbucket/tzbucket/core/timezone"
	infralogger "github.com/tzbucket/tzbucket/infra/logger"
	inframetrics "github.com/tzbucket/tzbucket/infra/metrics"
	infratz "github.com/tzbucket/tzbucket/infra/timezone"
	"github.com/tzbucket/tzbucket/pkg/render"
)

// Request carries the per-call options of an operation.
type Request struct {
	TZ        string
	Interval  model.Interval
	WeekStart model.WeekStart
	Format    parse.Format
}

// Service bundles the oracle, the bucket builder and the configured
// observability stack.
type Service struct {
	cfg     *config.Config
	oracle  timezone.Oracle
	builder *bucket.Builder
	sink    coremetrics.Sink
	log     logger.Logger
	closers []io.Closer
}

// New creates a Service from the configuration, with the stdlib tzdata
// oracle and the configured metrics sinks.
func New(cfg *config.Config) (*Service, error) {
	logg := infralogger.NewWithLevel("service", cfg.Logging.Level)
	sink, err := inframetrics.NewSink(cfg.Metrics, logg)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	svc := NewWith(cfg, infratz.NewStdOracle(), sink, logg)
	if closer, ok := sink.(io.Closer); ok {
		svc.closers = append(svc.closers, closer)
	}
	return svc, nil
}

// NewWith assembles a Service from explicit dependencies.
func NewWith(cfg *config.Config, oracle timezone.Oracle, sink coremetrics.Sink, log logger.Logger) *Service {
	return &Service{
		cfg:     cfg,
		oracle:  oracle,
		builder: bucket.NewBuilder(oracle),
		sink:    sink,
		log:     log,
	}
}

func (s *Service) Config() *config.Config  { return s.cfg }
func (s *Service) Oracle() timezone.Oracle { return s.oracle }
func (s *Service) Sink() coremetrics.Sink  { return s.sink }
func (s *Service) Log() logger.Logger      { return s.log }

// RequestFrom builds a Request from raw option strings, falling back
// to the configured defaults for any empty value. The zone is verified
// so option errors surface before any input is consumed.
func (s *Service) RequestFrom(tz, interval, weekStart, format string) (Request, error) {
	d := s.cfg.Defaults
	if tz == "" {
		tz = d.TZ
	}
	if interval == "" {
		interval = d.Interval
	}
	if weekStart == "" {
		weekStart = d.WeekStart
	}
	if format == "" {
		format = d.Format
	}
	iv, err := model.ParseInterval(interval)
	if err != nil {
		return Request{}, InputError(err.Error())
	}
	ws, err := model.ParseWeekStart(weekStart)
	if err != nil {
		return Request{}, InputError(err.Error())
	}
	f, err := parse.ParseFormat(format)
	if err != nil {
		return Request{}, InputError(err.Error())
	}
	if err := s.CheckZone(tz); err != nil {
		return Request{}, err
	}
	return Request{TZ: tz, Interval: iv, WeekStart: ws, Format: f}, nil
}

// PolicyFrom parses the explain policy pair, defaulting both to error.
func PolicyFrom(nonexistent, ambiguous string) (model.Policy, error) {
	if nonexistent == "" {
		nonexistent = "error"
	}
	if ambiguous == "" {
		ambiguous = "error"
	}
	np, err := model.ParseNonexistentPolicy(nonexistent)
	if err != nil {
		return model.Policy{}, InputError(err.Error())
	}
	ap, err := model.ParseAmbiguousPolicy(ambiguous)
	if err != nil {
		return model.Policy{}, InputError(err.Error())
	}
	return model.Policy{Nonexistent: np, Ambiguous: ap}, nil
}

// CheckZone verifies the zone id up front so an unknown zone surfaces
// as an input error rather than a runtime failure mid-stream.
func (s *Service) CheckZone(tz string) error {
	if _, err := s.oracle.OffsetForInstant(tz, time.Now().UTC()); err != nil {
		return InputError(fmt.Sprintf("invalid timezone %q", tz))
	}
	return nil
}

// Bucket parses one timestamp line and returns its enclosing bucket.
func (s *Service) Bucket(line string, req Request) (render.BucketResult, error) {
	utc, err := parse.Timestamp(line, req.Format)
	if err != nil {
		return render.BucketResult{}, Classify(err)
	}
	bkt, err := s.builder.Build(utc, req.TZ, req.Interval, req.WeekStart)
	if err != nil {
		return render.BucketResult{}, Classify(err)
	}
	return render.NewBucketResult(line, utc, req.TZ, req.Interval, bkt), nil
}

// Range generates every bucket intersecting [start, end). Both bounds
// must be RFC3339 timestamps.
func (s *Service) Range(startRaw, endRaw string, req Request) ([]render.BucketJSON, error) {
	start, err := parse.Timestamp(startRaw, parse.FormatRFC3339)
	if err != nil {
		return nil, InputError(fmt.Sprintf("invalid start timestamp: %v", err))
	}
	end, err := parse.Timestamp(endRaw, parse.FormatRFC3339)
	if err != nil {
		return nil, InputError(fmt.Sprintf("invalid end timestamp: %v", err))
	}
	buckets, err := bucket.Generate(s.oracle, start, end, req.TZ, req.Interval, req.WeekStart)
	if err != nil {
		return nil, Classify(err)
	}
	return render.Buckets(buckets), nil
}

// Explain classifies a naive local time and, when a non-error policy
// applies, reports the instant it resolves to.
func (s *Service) Explain(localRaw, tz string, pol model.Policy) (render.ExplainResult, error) {
	local, err := parse.LocalDateTime(localRaw, tz)
	if err != nil {
		return render.ExplainResult{}, Classify(err)
	}
	status, err := dst.Classify(s.oracle, local)
	if err != nil {
		return render.ExplainResult{}, Classify(err)
	}

	res := render.ExplainResult{
		LocalTime: local.String(),
		TZ:        tz,
		Status:    status.Kind.String(),
	}
	if status.Kind == dst.KindNormal {
		return res, nil
	}

	inst, err := dst.Resolve(status, local, pol)
	if err != nil {
		return render.ExplainResult{}, Classify(err)
	}
	policy := pol.Nonexistent.String()
	if status.Kind == dst.KindAmbiguous {
		policy = pol.Ambiguous.String()
	}
	res.Resolution = &render.Resolution{Policy: policy, Result: inst.LocalString()}
	return res, nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
