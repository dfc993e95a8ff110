package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/cache"
	"github.com/vnalla55/farebrand/pkg/errors"
	"github.com/vnalla55/farebrand/pkg/observability"
)

const keyTypeReport = "report"

// Runner encapsulates batch execution with caching.
// Both the CLI and embedding services use this to avoid duplicating the
// caching and mode-dispatch logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Run brands every job. Jobs are processed concurrently, at most
// opts.Concurrency at a time; the reports keep job order.
//
// A failing itinerary is recorded in Result.Failures and does not stop the
// others. Run itself fails only on invalid options, a canceled context, or
// when no itinerary has a usable brand and opts.AllowEmptyResult is false.
func (r *Runner) Run(ctx context.Context, jobs []Job, pairs []brand.ProgramBrand, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	txn := uuid.NewString()
	logger := opts.Logger.With("txn", txn)
	opts.Logger = logger

	type outcome struct {
		rep *Report
		hit bool
		err error
	}
	outcomes := make([]outcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			observability.Pipeline().OnItineraryStart(gctx, job.ID)
			began := time.Now()
			rep, hit, err := r.process(gctx, job, pairs, opts)
			observability.Pipeline().OnItineraryComplete(gctx, job.ID, spaceCount(rep), time.Since(began), err)
			outcomes[i] = outcome{rep: rep, hit: hit, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{TransactionID: txn}
	for i, o := range outcomes {
		id := jobs[i].ID
		switch {
		case o.err != nil:
			logger.Warn("itinerary failed", "itin", id, "err", o.err)
			result.Failures = append(result.Failures, Failure{Itinerary: id, Err: o.err})
			continue
		case o.hit:
			result.CacheInfo.Hits++
		default:
			result.CacheInfo.Misses++
		}
		result.Stats.Spaces += len(o.rep.Spaces)
		if len(o.rep.Parity) == 0 {
			logger.Info("no brand with parity", "itin", id, "mode", o.rep.Mode)
			result.Dropped = append(result.Dropped, id)
			continue
		}
		result.Reports = append(result.Reports, o.rep)
	}
	result.Stats.Itineraries = len(jobs)
	result.Stats.Duration = time.Since(start)

	logger.Info("branded itineraries",
		"itineraries", len(jobs),
		"kept", len(result.Reports),
		"dropped", len(result.Dropped),
		"failed", len(result.Failures),
		"duration", result.Stats.Duration)

	if len(result.Reports) == 0 && !opts.AllowEmptyResult {
		return result, errors.New(errors.ErrCodeNoValidBrand, "no itinerary has a valid brand")
	}
	return result, nil
}

// process computes or loads one report and reports whether it came from
// the cache.
func (r *Runner) process(ctx context.Context, job Job, pairs []brand.ProgramBrand, opts Options) (*Report, bool, error) {
	if job.Geometry == nil {
		return nil, false, errors.Precondition("itinerary %s has no geometry", job.ID)
	}
	hash, err := Fingerprint(job.Geometry, pairs)
	if err != nil {
		return nil, false, fmt.Errorf("fingerprint %s: %w", job.ID, err)
	}
	key := r.Keyer.ReportKey(hash, opts.ReportKeyOpts(opts.ModeFor(job.Geometry)))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var rep Report
			if err := json.Unmarshal(data, &rep); err == nil {
				rep.Itinerary = job.ID
				observability.Cache().OnCacheHit(ctx, keyTypeReport)
				return &rep, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeReport)
	}

	rep, _, err := Process(job, pairs, opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(rep); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLReport); err != nil {
			opts.Logger.Debug("cache write failed", "itin", job.ID, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeReport, len(data))
		}
	}
	return rep, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
