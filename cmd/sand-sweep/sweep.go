package main

import (
	"fmt"
	"log/slog"
	"sync"

	"particle-sim/internal/sims/sandbox"
	"particle-sim/internal/telemetry"
	"particle-sim/pkg/sims/sand"
)

type job struct {
	seed int64
	heat sand.HeatModel
}

func (j job) name() string {
	return fmt.Sprintf("%s-%d", j.heat, j.seed)
}

type result struct {
	job     job
	records []telemetry.TickRecord
	err     error
}

// plan lists every seed for every heat model.
func plan(firstSeed int64, seeds int, models []sand.HeatModel) []job {
	jobs := make([]job, 0, seeds*len(models))
	for _, m := range models {
		for i := 0; i < seeds; i++ {
			jobs = append(jobs, job{seed: firstSeed + int64(i), heat: m})
		}
	}
	return jobs
}

// runScenario simulates one job, sampling the census at tick 0 and then
// every `every` ticks.
func runScenario(base sandbox.Config, j job, steps, every int) result {
	if every <= 0 {
		every = 1
	}
	cfg := base
	cfg.Seed = j.seed
	cfg.Heat = j.heat.String()
	world, err := sandbox.NewWithConfig(cfg)
	if err != nil {
		return result{job: j, err: err}
	}
	grid := world.Grid()
	records := make([]telemetry.TickRecord, 0, steps/every+1)
	records = append(records, telemetry.FromCensus(j.name(), j.seed, j.heat, grid.Census()))
	for i := 1; i <= steps; i++ {
		world.Step()
		if i%every == 0 {
			records = append(records, telemetry.FromCensus(j.name(), j.seed, j.heat, grid.Census()))
		}
	}
	return result{job: j, records: records}
}

// runAll fans jobs out over a worker pool and collects every result.
func runAll(base sandbox.Config, jobs []job, steps, every, workers int) []result {
	if workers <= 0 {
		workers = 1
	}
	queue := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				results <- runScenario(base, j, steps, every)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobs {
			queue <- j
		}
		close(queue)
	}()

	all := make([]result, 0, len(jobs))
	for res := range results {
		all = append(all, res)
	}
	return all
}

// export writes the records of every successful run and logs its summary.
// It stops at the first write error and reports how many runs had failed.
func export(w *telemetry.Writer, results []result, logger *slog.Logger) (int, error) {
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			logger.Error("run failed", "run", res.job.name(), "err", res.err)
			continue
		}
		if err := w.Write(res.records...); err != nil {
			return failed, fmt.Errorf("%s: %w", res.job.name(), err)
		}
		logger.Info("run", "run", res.job.name(), "summary", telemetry.Summarize(res.records))
	}
	return failed, nil
}
