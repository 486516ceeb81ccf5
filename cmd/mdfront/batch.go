package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/fatih/color"

	mdfront "github.com/alnah/go-mdfront"
)

// Sentinel errors for batch processing.
var (
	ErrReadInput   = errors.New("failed to read markdown file")
	ErrWriteOutput = errors.New("failed to write output file")
	ErrBatchFailed = errors.New("some files failed")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxAutoWorkers caps the worker count chosen from GOMAXPROCS.
const maxAutoWorkers = 16

// FileResult holds the outcome of processing a single file.
type FileResult struct {
	InputPath  string
	OutputPath string
	Meta       *mdfront.Metadata
	Header     string
	Body       string
	Output     string // rendered document kept for stdout
	Err        error
	Duration   time.Duration
}

// fileFunc processes one job. It must fill InputPath and Err itself.
type fileFunc func(ctx context.Context, job FileJob) FileResult

// processBatch runs fn over jobs with at most workers goroutines.
// Results keep the order of jobs; jobs not started before ctx is
// canceled carry ctx.Err().
func processBatch(ctx context.Context, jobs []FileJob, workers int, fn fileFunc) []FileResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(jobs))

	results := make([]FileResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = FileResult{InputPath: jobs[idx].InputPath, Err: ctx.Err()}
					continue
				}
				start := time.Now()
				results[idx] = fn(ctx, jobs[idx])
				results[idx].Duration = time.Since(start)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS, which automaxprocs fits to the container.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return min(max(runtime.GOMAXPROCS(0), 1), maxAutoWorkers)
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []FileResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// reportedError marks an error whose details were already printed per file.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// printFailures writes one line per failed file to env.Stderr, with a hint.
func printFailures(results []FileResult, window int, env *Environment) {
	failed := color.New(color.FgRed, color.Bold).SprintFunc()
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "%s %s: %v%s\n", failed("FAILED"), r.InputPath, r.Err, hintFor(r.Err, window))
		}
	}
}

// printSummary writes the succeeded/failed tally for multi-file runs.
func printSummary(results []FileResult, common commonFlags, env *Environment) {
	if common.quiet || len(results) < 2 {
		return
	}
	s := countResults(results)
	ok := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(env.Stderr, "\n%s succeeded, %d failed\n", ok(s.Succeeded), s.Failed)
}

// batchError returns nil when every file succeeded. A single failed file
// keeps its own error so exitCodeFor can classify it.
func batchError(results []FileResult) error {
	summary := countResults(results)
	switch {
	case summary.Failed == 0:
		return nil
	case len(results) == 1:
		return &reportedError{err: results[0].Err}
	default:
		return &reportedError{err: fmt.Errorf("%w: %d of %d", ErrBatchFailed, summary.Failed, len(results))}
	}
}
