package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a run's records.
type Summary struct {
	Records int

	EnergyMean   float64
	EnergyStdDev float64
	// EnergyDrift is last minus first total energy. Zero means conservation held.
	EnergyDrift float64

	TempMeanAvg float64
	TempPeak    float64
	TempFloor   float64

	LiquidMean float64
	GasMean    float64
}

// Summarize computes run statistics. An empty slice yields a zero Summary.
func Summarize(records []TickRecord) Summary {
	n := len(records)
	if n == 0 {
		return Summary{}
	}
	energy := make([]float64, n)
	tempMean := make([]float64, n)
	tempMax := make([]float64, n)
	tempMin := make([]float64, n)
	liquid := make([]float64, n)
	gas := make([]float64, n)
	for i, r := range records {
		energy[i] = float64(r.Energy)
		tempMean[i] = r.TempMean
		tempMax[i] = float64(r.TempMax)
		tempMin[i] = float64(r.TempMin)
		liquid[i] = float64(r.Liquid)
		gas[i] = float64(r.Gas)
	}
	s := Summary{
		Records:     n,
		EnergyMean:  stat.Mean(energy, nil),
		EnergyDrift: energy[n-1] - energy[0],
		TempMeanAvg: stat.Mean(tempMean, nil),
		TempPeak:    floats.Max(tempMax),
		TempFloor:   floats.Min(tempMin),
		LiquidMean:  stat.Mean(liquid, nil),
		GasMean:     stat.Mean(gas, nil),
	}
	if n > 1 {
		s.EnergyStdDev = stat.StdDev(energy, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("records", s.Records),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStdDev),
		slog.Float64("energy_drift", s.EnergyDrift),
		slog.Float64("temp_mean", s.TempMeanAvg),
		slog.Float64("temp_peak", s.TempPeak),
		slog.Float64("temp_floor", s.TempFloor),
		slog.Float64("liquid_mean", s.LiquidMean),
		slog.Float64("gas_mean", s.GasMean),
	)
}
