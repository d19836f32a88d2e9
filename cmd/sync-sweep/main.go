package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"dumbo-octopus/internal/sims/octopus"
)

type sweepResult struct {
	seed         int64
	firstSync    int
	steps        int
	totalFlashes int
	err          error
}

func main() {
	seeds := flag.Int("seeds", 200, "number of consecutive seeds to evaluate")
	start := flag.Int64("start", 1, "first seed")
	size := flag.Int("size", 10, "grid columns (rows are capped at 20)")
	maxSteps := flag.Int("max-steps", 5000, "give up on a seed after this many steps")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of fastest and slowest seeds to list")
	flag.Parse()

	fmt.Printf("Sweeping %d seeds from %d on a %d-column grid (%d workers, max %d steps)\n",
		*seeds, *start, *size, *workers, *maxSteps)

	begin := time.Now()
	results := sweep(*start, *seeds, *size, *maxSteps, *workers)
	summarize(os.Stdout, results, *top, time.Since(begin))
}

func sweep(start int64, count, size, maxSteps, workers int) []sweepResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(seed, size, maxSteps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < count; i++ {
			jobs <- start + int64(i)
		}
		close(jobs)
	}()

	all := make([]sweepResult, 0, count)
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all
}

func runSeed(seed int64, size, maxSteps int) sweepResult {
	cfg := octopus.DefaultConfig()
	cfg.Size = size
	if cfg.Size > cfg.MaxSize {
		cfg.MaxSize = cfg.Size
	}
	swarm := octopus.NewWithConfig(cfg)
	swarm.Reset(seed)

	res, err := octopus.Simulate(swarm.Levels(), maxSteps, true)
	return sweepResult{
		seed:         seed,
		firstSync:    res.FirstSync,
		steps:        res.Steps,
		totalFlashes: res.TotalFlashes,
		err:          err,
	}
}

func summarize(out io.Writer, results []sweepResult, top int, elapsed time.Duration) {
	var synced []sweepResult
	failed := 0
	for _, res := range results {
		switch {
		case res.err != nil:
			failed++
			fmt.Fprintf(out, "seed %d: %v\n", res.seed, res.err)
		case res.firstSync > 0:
			synced = append(synced, res)
		}
	}
	fmt.Fprintf(out, "\n%d/%d seeds synchronized (elapsed %s)\n", len(synced), len(results), elapsed.Round(time.Millisecond))
	if unsynced := len(results) - len(synced) - failed; unsynced > 0 {
		fmt.Fprintf(out, "%d seeds did not synchronize within the step limit\n", unsynced)
	}
	if len(synced) == 0 {
		return
	}

	sort.SliceStable(synced, func(i, j int) bool { return synced[i].firstSync < synced[j].firstSync })
	total := 0
	for _, res := range synced {
		total += res.firstSync
	}
	fmt.Fprintf(out, "mean first sync: %.1f steps\n", float64(total)/float64(len(synced)))

	n := min(top, len(synced))
	if n <= 0 {
		return
	}
	fmt.Fprintln(out, "\nFastest:")
	for _, res := range synced[:n] {
		fmt.Fprintf(out, "  seed %d: sync at step %d (%d flashes)\n", res.seed, res.firstSync, res.totalFlashes)
	}
	fmt.Fprintln(out, "Slowest:")
	for i := len(synced) - 1; i >= len(synced)-n; i-- {
		res := synced[i]
		fmt.Fprintf(out, "  seed %d: sync at step %d (%d flashes)\n", res.seed, res.firstSync, res.totalFlashes)
	}
}
