package sand

// RGB is an opaque display color.
type RGB [3]uint8

const (
	glowThreshold = 600  // Kelvin above which particles emit light
	glowScale     = 3000 // emissive contribution is lut * T / glowScale
	lutBase       = 800
	lutStep       = 200
)

// blackbodyLUT holds blackbody radiation colors from 800K in 200K steps.
var blackbodyLUT = [37]RGB{
	{255, 0, 0},
	{255, 25, 0},
	{255, 56, 0},
	{255, 83, 0},
	{255, 101, 0},
	{255, 115, 0},
	{255, 126, 0},
	{255, 137, 18},
	{255, 147, 44},
	{255, 157, 63},
	{255, 165, 79},
	{255, 173, 94},
	{255, 180, 107},
	{255, 187, 120},
	{255, 193, 132},
	{255, 199, 143},
	{255, 204, 153},
	{255, 209, 163},
	{255, 213, 173},
	{255, 217, 182},
	{255, 221, 190},
	{255, 225, 198},
	{255, 228, 206},
	{255, 232, 213},
	{255, 235, 220},
	{255, 238, 227},
	{255, 240, 233},
	{255, 243, 239},
	{255, 245, 245},
	{255, 248, 251},
	{254, 249, 255},
	{249, 246, 255},
	{245, 243, 255},
	{240, 241, 255},
	{237, 239, 255},
	{233, 237, 255},
	{230, 235, 255},
}

// blackbodyIndex maps a temperature to a LUT row. Anything past row 34 jumps
// straight to the last row.
func blackbodyIndex(t uint32) int {
	idx := (int64(t) - lutBase) / lutStep
	if idx < 0 {
		return 0
	}
	if idx > 34 {
		return len(blackbodyLUT) - 1
	}
	return int(idx)
}

// Color maps the particle's phase, temperature and noise to a display color.
// The emissive term is not normalized and is expected to saturate hot particles.
func (p Particle) Color() RGB {
	phase := p.Phase()
	base := p.material.SolidColor
	if phase >= PhaseLiquid {
		base = p.material.LiquidColor
	}
	if phase == PhaseGas {
		base = p.material.VaporColor
	}

	a := uint32(base.A)
	premul := RGB{
		uint8(uint32(base.R) * a / 255),
		uint8(uint32(base.G) * a / 255),
		uint8(uint32(base.B) * a / 255),
	}

	t := p.Temperature()
	glow := blackbodyLUT[blackbodyIndex(t)]
	noise := float32(p.noise) - NeutralNoise

	var out RGB
	for i := range out {
		v := float32(premul[i])
		if t > glowThreshold {
			v += float32(glow[i]) * (float32(t) / glowScale)
		}
		v += noise
		switch {
		case v > 255:
			v = 255
		case v < 0:
			v = 0
		}
		out[i] = uint8(v)
	}
	return out
}
