// Package batch scores many wallets concurrently and reports one result per
// input address, in input order.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/okian/beastscore/internal/domain/dedupe"
	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/pkg/logger"
	"github.com/okian/beastscore/pkg/metrics"
)

// Batch result labels.
const (
	ResultScored    = "scored"
	ResultFailed    = "failed"
	ResultDuplicate = "duplicate"
)

const defaultWorkerMultiplier = 2

// Scorer computes one wallet profile.
type Scorer interface {
	ComputeWalletProfile(ctx context.Context, address string) (*model.Profile, error)
}

// Result is one output line of a batch run.
type Result struct {
	Address   string         `json:"address"`
	Status    string         `json:"status"`
	Profile   map[string]any `json:"profile,omitempty"`
	Error     string         `json:"error,omitempty"`
	ElapsedMS int64          `json:"elapsed_ms,omitempty"`
}

// Runner fans addresses out to a fixed pool of workers.
type Runner struct {
	scorer  Scorer
	workers int
	newSet  func() dedupe.Deduper
	log     logger.Logger
}

type job struct {
	index int
	addr  string
}

// New creates a Runner backed by scorer.
func New(scorer Scorer, opts ...Option) *Runner {
	r := &Runner{
		scorer:  scorer,
		workers: runtime.NumCPU() * defaultWorkerMultiplier,
		newSet:  func() dedupe.Deduper { return dedupe.NewAddressSet(dedupe.WithMaxSize(0)) },
		log:     logger.Get().Named("batch"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run scores addresses and returns one Result per entry of addresses. Blank
// entries are dropped. Repeats of an address already in the batch are
// reported as duplicates without being scored again. A per-address failure
// never aborts the run; a cancelled ctx marks unscored addresses as failed.
func (r *Runner) Run(ctx context.Context, addresses []string) []Result {
	results := make([]Result, 0, len(addresses))
	seen := r.newSet()
	var jobs []job

	for _, raw := range addresses {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		addr := string(model.Canonical(raw))
		res := Result{Address: addr}
		if seen.SeenAndRecord(ctx, model.Address(addr)) {
			res.Status = ResultDuplicate
			metrics.RecordBatchDuplicate()
			metrics.RecordBatchAddress(ResultDuplicate)
		} else {
			jobs = append(jobs, job{index: len(results), addr: raw})
		}
		results = append(results, res)
	}

	workers := min(r.workers, len(jobs))
	if workers == 0 {
		return results
	}
	metrics.UpdateWorkerCount(workers)
	defer metrics.UpdateWorkerCount(0)

	r.log.Info(ctx, "batch started",
		logger.Int("addresses", len(results)),
		logger.Int("unique", int(seen.Size())),
		logger.Int("workers", workers))

	queue := make(chan job)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			log := r.log.Named(name)
			for j := range queue {
				// Each job owns its slot, so writes never race.
				results[j.index] = r.process(ctx, log, j)
			}
		}("worker-" + strconv.Itoa(i))
	}

	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	wg.Wait()

	r.log.Info(ctx, "batch finished", logger.Int("addresses", len(results)))
	return results
}

func (r *Runner) process(ctx context.Context, log logger.Logger, j job) Result {
	res := Result{Address: string(model.Canonical(j.addr))}
	if err := ctx.Err(); err != nil {
		res.Status = ResultFailed
		res.Error = err.Error()
		metrics.RecordBatchAddress(ResultFailed)
		return res
	}

	start := time.Now()
	p, err := r.scorer.ComputeWalletProfile(ctx, j.addr)
	res.ElapsedMS = time.Since(start).Milliseconds()
	if err != nil {
		log.Warn(ctx, "address failed", logger.String("address", res.Address), logger.Error(err))
		res.Status = ResultFailed
		res.Error = err.Error()
		metrics.RecordBatchAddress(ResultFailed)
		return res
	}

	res.Status = ResultScored
	res.Profile = p.Document
	metrics.RecordBatchAddress(ResultScored)
	return res
}

// WriteJSONLines encodes each result as one JSON object per line.
func WriteJSONLines(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for i := range results {
		if err := enc.Encode(results[i]); err != nil {
			return fmt.Errorf("encode result for %s: %w", results[i].Address, err)
		}
	}
	return nil
}

// ReadAddresses parses one address per line from r. Blank lines and lines
// starting with '#' are skipped; commas also separate addresses.
func ReadAddresses(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read addresses: %w", err)
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out, nil
}
