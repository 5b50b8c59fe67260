// Package texture produces the static color-noise byte stored on each
// particle. 128 is neutral; larger strength divisors give subtler noise.
package texture

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Neutral is the noise value that leaves a color unchanged.
const Neutral = 128

// ByteSource supplies uniformly random bytes.
type ByteSource interface {
	Byte() uint8
}

// Random returns src.Byte()/strength + 128, saturating at 255. A zero
// strength disables noise.
func Random(strength uint8, src ByteSource) uint8 {
	if strength == 0 {
		return Neutral
	}
	return offset(int(src.Byte()) / int(strength))
}

// Metal returns a diagonal triangle-wave band with the given period, the
// pattern used for brushed metal.
func Metal(strength uint8, size, x, y uint32) uint8 {
	if strength == 0 || size == 0 {
		return Neutral
	}
	val := (x + y) % size
	if val > size/2 {
		val = size - val
	}
	return offset(int(uint8(val*255/size)) / int(strength))
}

// Grain samples smooth Perlin noise, for materials that should look clumped
// rather than speckled.
type Grain struct {
	noise *perlin.Perlin
	scale float64
}

// NewGrain returns a Grain seeded with seed. scale is the feature size in
// cells; values below 1 are treated as 1.
func NewGrain(seed int64, scale float64) *Grain {
	if scale < 1 {
		scale = 1
	}
	return &Grain{noise: perlin.NewPerlin(2, 2, 3, seed), scale: scale}
}

// At returns the noise byte for cell (x, y).
func (g *Grain) At(strength uint8, x, y int) uint8 {
	if strength == 0 {
		return Neutral
	}
	n := g.noise.Noise2D(float64(x)/g.scale, float64(y)/g.scale)
	// Perlin output is roughly [-1, 1]; map it onto a byte like Random does.
	v := math.Round((n + 1) * 127.5)
	v = math.Max(0, math.Min(255, v))
	return offset(int(v) / int(strength))
}

func offset(v int) uint8 {
	v += Neutral
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v)
}
