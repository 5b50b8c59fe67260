// Command sand-sweep runs the sandbox headless over a set of seeds and heat
// models, writing per-tick census rows to CSV and logging a summary per run.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"particle-sim/internal/sims/sandbox"
	"particle-sim/internal/telemetry"
	"particle-sim/pkg/sims/sand"
)

func main() {
	configPath := flag.String("config", "", "YAML world/material file")
	out := flag.String("out", "sweep/telemetry.csv", "CSV output path")
	seeds := flag.Int("seeds", 4, "number of seeds per heat model")
	firstSeed := flag.Int64("first-seed", 1, "first seed of the sweep")
	steps := flag.Int("steps", 600, "ticks to simulate per run")
	every := flag.Int("every", 10, "record a census every N ticks")
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 96, "grid height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	base, err := sandbox.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	base.Width = *width
	base.Height = *height

	writer, err := telemetry.Create(*out)
	if err != nil {
		log.Fatalf("opening output: %v", err)
	}

	models := []sand.HeatModel{sand.HeatFull, sand.HeatSimplified, sand.HeatOff}
	jobs := plan(*firstSeed, *seeds, models)
	logger.Info("sweeping", "runs", len(jobs), "workers", *workers, "steps", *steps, "out", *out)

	start := time.Now()
	results := runAll(base, jobs, *steps, *every, *workers)
	sort.Slice(results, func(i, j int) bool { return results[i].job.name() < results[j].job.name() })

	failed, err := export(writer, results, logger)
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("writing telemetry: %v", err)
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
