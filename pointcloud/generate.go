package pointcloud

import (
	"math"
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Kind selects the shape of a generated point cloud.
type Kind string

const (
	// points on the surface of the unit sphere
	Sphere Kind = "sphere"

	// points uniformly distributed in the cube [-1, 1]³
	Cube Kind = "cube"

	// points on a sphere whose radius is displaced by 3d noise
	Blob Kind = "blob"

	// normal distributed points around the origin
	Gaussian Kind = "gaussian"
)

// Kinds returns all known generator kinds.
func Kinds() []Kind {
	return []Kind{Sphere, Cube, Blob, Gaussian}
}

// Generate creates n points of the given kind. The same seed always
// produces the same points.
func Generate(kind Kind, n int, seed uint64) ([]r3.Vector, error) {
	if n < 0 {
		return nil, errors.Errorf("pointcloud: negative point count %d", n)
	}

	rng := randWithSeed(seed)

	var next func() r3.Vector

	switch kind {
	case Sphere:
		next = func() r3.Vector {
			return randomDirection(rng)
		}

	case Cube:
		next = func() r3.Vector {
			return r3.Vector{
				X: randf(rng, -1, 1),
				Y: randf(rng, -1, 1),
				Z: randf(rng, -1, 1),
			}
		}

	case Gaussian:
		next = func() r3.Vector {
			return r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		}

	case Blob:
		noise := fastnoiselite.NewNoise()
		noise.Seed = rng.Int32()
		noise.Frequency = 0.8

		type F = fastnoiselite.FNLfloat

		next = func() r3.Vector {
			dir := randomDirection(rng)

			// noise is in [-1, 1], keep the radius positive
			displacement := float64(noise.GetNoise3D(F(dir.X), F(dir.Y), F(dir.Z)))
			return dir.Mul(1 + 0.4*displacement)
		}

	default:
		return nil, errors.Errorf("pointcloud: unknown kind %q", kind)
	}

	points := make([]r3.Vector, 0, n)
	for range n {
		points = append(points, next())
	}

	return points, nil
}

func randWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// randomDirection returns a uniformly distributed unit vector.
func randomDirection(rng *rand.Rand) r3.Vector {
	for {
		v := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if length := v.Norm(); length > 1e-9 && !math.IsInf(length, 0) {
			return v.Mul(1 / length)
		}
	}
}
