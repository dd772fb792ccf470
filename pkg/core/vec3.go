package core

import "math"

// nearZeroEpsilon is the per-component threshold used by IsNearZero
const nearZeroEpsilon = 1e-8

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a Vec3 used as a position in space
type Point3 = Vec3

// Color is a Vec3 used as a linear RGB color
type Color = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewColor creates a new RGB color
func NewColor(r, g, b float64) Color {
	return Vec3{X: r, Y: g, Z: b}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1.0 / scalar)
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// AddAssign adds other to v in place
func (v *Vec3) AddAssign(other Vec3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// MultiplyAssign scales v in place
func (v *Vec3) MultiplyAssign(scalar float64) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

// DivideAssign divides v by a scalar in place
func (v *Vec3) DivideAssign(scalar float64) {
	v.MultiplyAssign(1.0 / scalar)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// A zero vector has no direction and yields NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// IsNearZero reports whether every component is close to zero
func (v Vec3) IsNearZero() bool {
	return math.Abs(v.X) < nearZeroEpsilon &&
		math.Abs(v.Y) < nearZeroEpsilon &&
		math.Abs(v.Z) < nearZeroEpsilon
}

// Equals returns true if two vectors are exactly equal
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: Clamp(v.X, minVal, maxVal),
		Y: Clamp(v.Y, minVal, maxVal),
		Z: Clamp(v.Z, minVal, maxVal),
	}
}

// Sqrt returns the component-wise square root, i.e. gamma 2 correction
func (v Vec3) Sqrt() Vec3 {
	return Vec3{
		X: math.Sqrt(v.X),
		Y: math.Sqrt(v.Y),
		Z: math.Sqrt(v.Z),
	}
}

// Lerp linearly interpolates between a (t=0) and b (t=1)
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Multiply(1.0 - t).Add(b.Multiply(t))
}

// Reflect reflects v off a surface with normal n: v - 2*dot(v,n)*n
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with unit normal n
// using Snell's law, where etaRatio is eta_incident / eta_transmitted.
func Refract(uv, n Vec3, etaRatio float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Clamp restricts x to [minVal, maxVal]
func Clamp(x, minVal, maxVal float64) float64 {
	return max(minVal, min(maxVal, x))
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
