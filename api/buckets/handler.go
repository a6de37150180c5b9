// Package buckets exposes the bucket operations over HTTP. Responses
// mirror the CLI JSON output; errors carry the same envelope the CLI
// prints on stderr, with exit code 2 mapped to 400 and 3 to 500.
package buckets

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tzbucket/tzbucket/app"
	"github.com/tzbucket/tzbucket/core/logger"
	"github.com/tzbucket/tzbucket/core/metrics"
	"github.com/tzbucket/tzbucket/core/model"
	"github.com/tzbucket/tzbucket/pkg/render"
)

// Engine is the operation surface the handlers need.
type Engine interface {
	RequestFrom(tz, interval, weekStart, format string) (app.Request, error)
	Bucket(line string, req app.Request) (render.BucketResult, error)
	Range(startRaw, endRaw string, req app.Request) ([]render.BucketJSON, error)
	Explain(localRaw, tz string, pol model.Policy) (render.ExplainResult, error)
}

// NewMux mounts the API endpoints on a fresh ServeMux.
func NewMux(engine Engine, sink metrics.Sink, log logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/bucket", handler("bucket", engine, sink, log, bucketOp))
	mux.Handle("/api/range", handler("range", engine, sink, log, rangeOp))
	mux.Handle("/api/explain", handler("explain", engine, sink, log, explainOp))
	return mux
}

type opFunc func(engine Engine, r *http.Request) (any, error)

func handler(op string, engine Engine, sink metrics.Sink, log logger.Logger, fn opFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		start := time.Now()
		reqID := uuid.NewString()
		log.Debugw("api request", map[string]any{
			"request_id": reqID,
			"op":         op,
			"query":      r.URL.RawQuery,
		})

		result, err := fn(engine, r)
		if recErr := sink.RecordRequest(op, time.Since(start)); recErr != nil {
			log.Warnf("record request: %v", recErr)
		}
		if err != nil {
			writeError(w, op, err, sink, log)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Errorf("encode response: %v", err)
		}
	})
}

func bucketOp(engine Engine, r *http.Request) (any, error) {
	q := r.URL.Query()
	req, err := engine.RequestFrom(q.Get("tz"), q.Get("interval"), q.Get("week_start"), q.Get("format"))
	if err != nil {
		return nil, err
	}
	ts := q.Get("ts")
	if ts == "" {
		return nil, app.InputError("missing ts parameter")
	}
	return engine.Bucket(ts, req)
}

func rangeOp(engine Engine, r *http.Request) (any, error) {
	q := r.URL.Query()
	req, err := engine.RequestFrom(q.Get("tz"), q.Get("interval"), q.Get("week_start"), "")
	if err != nil {
		return nil, err
	}
	start, end := q.Get("start"), q.Get("end")
	if start == "" || end == "" {
		return nil, app.InputError("missing start or end parameter")
	}
	return engine.Range(start, end, req)
}

func explainOp(engine Engine, r *http.Request) (any, error) {
	q := r.URL.Query()
	req, err := engine.RequestFrom(q.Get("tz"), "", "", "")
	if err != nil {
		return nil, err
	}
	local := q.Get("local")
	if local == "" {
		return nil, app.InputError("missing local parameter")
	}
	pol, err := app.PolicyFrom(q.Get("policy_nonexistent"), q.Get("policy_ambiguous"))
	if err != nil {
		return nil, err
	}
	return engine.Explain(local, req.TZ, pol)
}

func writeError(w http.ResponseWriter, op string, err error, sink metrics.Sink, log logger.Logger) {
	appErr := app.Classify(err)
	kind := "runtime"
	httpStatus := http.StatusInternalServerError
	if appErr.Code == app.ExitInput {
		kind = "input"
		httpStatus = http.StatusBadRequest
	}
	if appErr.Status != "" {
		kind = "policy"
	}
	if recErr := sink.RecordError(op, kind); recErr != nil {
		log.Warnf("record error: %v", recErr)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	envelope := render.ErrorEnvelope{
		Error:    appErr.Message,
		ExitCode: appErr.Code,
		Status:   appErr.Status,
	}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.Errorf("encode error response: %v", err)
	}
}
