package sand

import "math"

// Phase is the state of matter derived from a particle's temperature.
type Phase uint8

// Phases are ordered; movement rules compare them numerically.
const (
	PhaseSolid Phase = iota
	PhasePowder
	PhaseLiquid
	PhaseGas
)

// NumPhases is the number of distinct phases.
const NumPhases = 4

// NeutralNoise is the color noise value that leaves a particle's color unchanged.
const NeutralNoise = 128

// densityThermalScale controls how strongly density grows with temperature.
const densityThermalScale = 500000000.0

// Fluid reports whether the phase can be displaced (liquid or gas).
func (p Phase) Fluid() bool { return p >= PhaseLiquid }

func (p Phase) String() string {
	switch p {
	case PhaseSolid:
		return "solid"
	case PhasePowder:
		return "powder"
	case PhaseLiquid:
		return "liquid"
	case PhaseGas:
		return "gas"
	default:
		return "unknown"
	}
}

// Particle is the state of one grid cell. Energy is the only thermal state;
// temperature, phase and density are derived from it on demand.
//
// The zero Particle has no material and is inert: its temperature is always zero.
// Use NewParticle to build simulated particles.
type Particle struct {
	material Material
	energy   uint32
	noise    uint8
}

// NewParticle returns a particle of material m with zero energy and neutral noise.
func NewParticle(m Material) (Particle, error) {
	if err := m.Validate(); err != nil {
		return Particle{}, err
	}
	return Particle{material: m, noise: NeutralNoise}, nil
}

// MustParticle is like NewParticle but panics on an invalid material.
func MustParticle(m Material) Particle {
	p, err := NewParticle(m)
	if err != nil {
		panic(err)
	}
	return p
}

// Material returns the particle's material descriptor.
func (p Particle) Material() Material { return p.material }

// Energy returns the internal energy in joules.
func (p Particle) Energy() uint32 { return p.energy }

// Noise returns the static color noise byte.
func (p Particle) Noise() uint8 { return p.noise }

// WithEnergy returns a copy of p holding the given energy.
func (p Particle) WithEnergy(energy uint32) Particle {
	p.energy = energy
	return p
}

// WithTemperature returns a copy of p whose energy corresponds to the given
// temperature. The energy saturates rather than overflowing.
func (p Particle) WithTemperature(kelvin uint32) Particle {
	e := uint64(p.material.HeatCapacity) * uint64(kelvin)
	if e > math.MaxUint32 {
		e = math.MaxUint32
	}
	p.energy = uint32(e)
	return p
}

// WithNoise returns a copy of p holding the given color noise.
func (p Particle) WithNoise(noise uint8) Particle {
	p.noise = noise
	return p
}

// Temperature returns energy divided by heat capacity, truncated.
func (p Particle) Temperature() uint32 {
	if p.material.HeatCapacity == 0 {
		return 0
	}
	return p.energy / p.material.HeatCapacity
}

// Phase derives the state of matter from temperature. Thresholds are half-open:
// the melting point is already liquid and the boiling point is already gas.
func (p Particle) Phase() Phase {
	t := p.Temperature()
	switch {
	case t < uint32(p.material.MeltingPoint):
		if p.material.Rigid {
			return PhaseSolid
		}
		return PhasePowder
	case t < uint32(p.material.BoilingPoint):
		return PhaseLiquid
	default:
		return PhaseGas
	}
}

// Density returns the displacement weight: the gas density unless the particle
// is liquid, scaled up slightly with temperature.
func (p Particle) Density() float32 {
	density := p.material.GasDensity
	if p.Phase() == PhaseLiquid {
		density = p.material.LiquidDensity
	}
	return density * (1 + float32(p.Temperature())/densityThermalScale)
}
