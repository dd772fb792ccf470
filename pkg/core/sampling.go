package core

// Random is the uniform random number source used by the renderer.
// *math/rand.Rand satisfies it; tests can swap in a deterministic source.
type Random interface {
	Float64() float64 // uniform in [0, 1)
}

// RandomRange returns a uniform float64 in [minVal, maxVal)
func RandomRange(random Random, minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*random.Float64()
}

// RandomVec3 returns a vector with each component uniform in [minVal, maxVal)
func RandomVec3(random Random, minVal, maxVal float64) Vec3 {
	return NewVec3(
		RandomRange(random, minVal, maxVal),
		RandomRange(random, minVal, maxVal),
		RandomRange(random, minVal, maxVal),
	)
}

// RandomInUnitSphere generates a random point strictly inside a unit sphere
func RandomInUnitSphere(random Random) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3(random, -1, 1)
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a random direction on the unit sphere
func RandomUnitVector(random Random) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random Random) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(RandomRange(random, -1, 1), RandomRange(random, -1, 1), 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
