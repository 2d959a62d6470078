package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"

	"sphere-colormap/internal/sphere"
	"sphere-colormap/internal/vecio"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Map sphere.Map
	// Workers is the goroutine budget shared by file workers and the
	// chunk workers inside each file.
	Workers   int
	ChunkSize int
	// Progress, when non-zero, prints a progress line at this interval.
	Progress time.Duration
}

// Job is one input file and the color file it produces.
type Job struct {
	Input  string
	Output string
}

// Result holds the outcome of processing one job.
type Result struct {
	Input   string
	Output  string
	Vectors int
	Success bool
	Error   string
}

// Jobs lists every vector file directly inside inputDir, mapping each to
// outputDir/<stem>.<format>.
func Jobs(inputDir, outputDir, format string) ([]Job, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "batch: read %s", inputDir)
	}

	var jobs []Job
	for _, e := range entries {
		if e.IsDir() || !vecio.IsVectorFile(e.Name()) {
			continue
		}
		jobs = append(jobs, NewJob(filepath.Join(inputDir, e.Name()), outputDir, format))
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].Input < jobs[k].Input })
	return jobs, nil
}

// NewJob maps input to outputDir/<stem>.<format>.
func NewJob(input, outputDir, format string) Job {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return Job{Input: input, Output: filepath.Join(outputDir, stem+"."+format)}
}

// Run processes all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers, perFile := split(cfg.Workers, total)

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx], perFile)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

// split divides a goroutine budget between file workers and the chunk
// workers each file gets, so their product stays within budget.
func split(budget, files int) (fileWorkers, perFile int) {
	budget = max(budget, 1)
	fileWorkers = max(min(budget, files), 1)
	return fileWorkers, max(budget/fileWorkers, 1)
}

func processJob(cfg Config, job Job, workers int) Result {
	res := Result{Input: job.Input, Output: job.Output}

	vectors, err := vecio.Read(job.Input)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Vectors = len(vectors)

	colors, err := sphere.ColorParallel(context.Background(), cfg.Map, vectors, workers, cfg.ChunkSize)
	if err != nil {
		res.Error = fmt.Sprintf("%s: %v", cfg.Map.Name(), err)
		return res
	}

	if err := vecio.Write(job.Output, colors); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
