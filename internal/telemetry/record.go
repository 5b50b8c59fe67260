// Package telemetry records per-tick grid censuses as CSV rows and
// summarizes runs.
package telemetry

import (
	"log/slog"

	"particle-sim/pkg/sims/sand"
)

// TickRecord is one census sample of a run.
type TickRecord struct {
	Run  string `csv:"run"`
	Seed int64  `csv:"seed"`
	Heat string `csv:"heat"`
	Tick uint64 `csv:"tick"`

	Cells  int    `csv:"cells"`
	Energy uint64 `csv:"energy"`

	Solid  int `csv:"solid"`
	Powder int `csv:"powder"`
	Liquid int `csv:"liquid"`
	Gas    int `csv:"gas"`

	TempMin  uint32  `csv:"temp_min"`
	TempMax  uint32  `csv:"temp_max"`
	TempMean float64 `csv:"temp_mean"`
}

// FromCensus builds a record for the named run.
func FromCensus(run string, seed int64, heat sand.HeatModel, c sand.Census) TickRecord {
	return TickRecord{
		Run:      run,
		Seed:     seed,
		Heat:     heat.String(),
		Tick:     c.Tick,
		Cells:    c.Cells,
		Energy:   c.Energy,
		Solid:    c.Phases[sand.PhaseSolid],
		Powder:   c.Phases[sand.PhasePowder],
		Liquid:   c.Phases[sand.PhaseLiquid],
		Gas:      c.Phases[sand.PhaseGas],
		TempMin:  c.MinTemperature,
		TempMax:  c.MaxTemperature,
		TempMean: c.MeanTemperature,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (r TickRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run", r.Run),
		slog.Int64("seed", r.Seed),
		slog.String("heat", r.Heat),
		slog.Uint64("tick", r.Tick),
		slog.Int("cells", r.Cells),
		slog.Uint64("energy", r.Energy),
		slog.Int("solid", r.Solid),
		slog.Int("powder", r.Powder),
		slog.Int("liquid", r.Liquid),
		slog.Int("gas", r.Gas),
		slog.Uint64("temp_min", uint64(r.TempMin)),
		slog.Uint64("temp_max", uint64(r.TempMax)),
		slog.Float64("temp_mean", r.TempMean),
	)
}
