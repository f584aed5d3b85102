package pmgen

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

var gradients = [12]mgl64.Vec3{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// noise is layered gradient noise. Each octave doubles the frequency and
// multiplies the amplitude by persistence.
type noise struct {
	perm        [512]int
	octaves     int
	persistence float64
	expansion   float64
}

func newNoise(r *rand.Rand, octaves int, persistence, expansion float64) *noise {
	n := &noise{octaves: octaves, persistence: persistence, expansion: expansion}
	p := r.Perm(256)
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// noise2D returns octave noise in [-1, 1] at x and z.
func (n *noise) noise2D(x, z float64) float64 {
	return n.noise3D(x, 0.5, z)
}

// noise3D returns octave noise in [-1, 1] at x, y and z.
func (n *noise) noise3D(x, y, z float64) float64 {
	x, y, z = x*n.expansion, y*n.expansion, z*n.expansion
	var result, maxAmp float64
	amp, freq := 1.0, 1.0
	for i := 0; i < n.octaves; i++ {
		result += n.raw3D(x*freq, y*freq, z*freq) * amp
		maxAmp += amp
		freq *= 2
		amp *= n.persistence
	}
	return result / maxAmp
}

func (n *noise) raw3D(x, y, z float64) float64 {
	xi, yi, zi := floor(x), floor(y), floor(z)
	xf, yf, zf := x-float64(xi), y-float64(yi), z-float64(zi)
	X, Y, Z := xi&255, yi&255, zi&255
	u, v, w := fade(xf), fade(yf), fade(zf)

	p := &n.perm
	a, b := p[X]+Y, p[X+1]+Y
	aa, ab, ba, bb := p[a]+Z, p[a+1]+Z, p[b]+Z, p[b+1]+Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], xf, yf, zf), grad(p[ba], xf-1, yf, zf)),
			lerp(u, grad(p[ab], xf, yf-1, zf), grad(p[bb], xf-1, yf-1, zf))),
		lerp(v,
			lerp(u, grad(p[aa+1], xf, yf, zf-1), grad(p[ba+1], xf-1, yf, zf-1)),
			lerp(u, grad(p[ab+1], xf, yf-1, zf-1), grad(p[bb+1], xf-1, yf-1, zf-1))))
}

// density holds noise values sampled over a box of blocks.
type density struct {
	xs, ys, zs int
	v          []float64
}

func (d *density) at(x, y, z int) float64 {
	return d.v[(x*d.zs+z)*d.ys+y]
}

func (d *density) set(x, y, z int, v float64) {
	d.v[(x*d.zs+z)*d.ys+y] = v
}

// fastNoise3D samples noise3D every xRate, yRate and zRate blocks of a box
// starting at ox, oy and oz and fills the remaining values by trilinear
// interpolation. The sizes must be multiples of their rates.
func (n *noise) fastNoise3D(xSize, ySize, zSize, xRate, yRate, zRate int, ox, oy, oz float64) *density {
	d := &density{xs: xSize + 1, ys: ySize + 1, zs: zSize + 1}
	d.v = make([]float64, d.xs*d.ys*d.zs)
	for x := 0; x <= xSize; x += xRate {
		for z := 0; z <= zSize; z += zRate {
			for y := 0; y <= ySize; y += yRate {
				d.set(x, y, z, n.noise3D(ox+float64(x), oy+float64(y), oz+float64(z)))
			}
		}
	}
	for x := 0; x < xSize; x++ {
		nx := x / xRate * xRate
		dx := float64(x-nx) / float64(xRate)
		for z := 0; z < zSize; z++ {
			nz := z / zRate * zRate
			dz := float64(z-nz) / float64(zRate)
			for y := 0; y < ySize; y++ {
				if x == nx && z == nz && y%yRate == 0 {
					continue
				}
				ny := y / yRate * yRate
				dy := float64(y-ny) / float64(yRate)

				c00 := lerp(dx, d.at(nx, ny, nz), d.at(nx+xRate, ny, nz))
				c01 := lerp(dx, d.at(nx, ny, nz+zRate), d.at(nx+xRate, ny, nz+zRate))
				c10 := lerp(dx, d.at(nx, ny+yRate, nz), d.at(nx+xRate, ny+yRate, nz))
				c11 := lerp(dx, d.at(nx, ny+yRate, nz+zRate), d.at(nx+xRate, ny+yRate, nz+zRate))
				d.set(x, y, z, lerp(dy, lerp(dz, c00, c01), lerp(dz, c10, c11)))
			}
		}
	}
	return d
}

func grad(hash int, x, y, z float64) float64 {
	return gradients[hash%12].Dot(mgl64.Vec3{x, y, z})
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func floor[F constraints.Float](v F) int {
	return int(math.Floor(float64(v)))
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
