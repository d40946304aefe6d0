// pkg/geometry/angle.go
package geometry

import "math"

// NormalizeAngle maps angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	// Mod of a value just below zero can round up to exactly 2π.
	if angle >= 2*math.Pi {
		angle = 0
	}
	return angle
}

// Angle returns the polar angle of p around center, in [0, 2π).
func Angle(center, p Point) float64 {
	d := p.Minus(center)
	return NormalizeAngle(math.Atan2(d.Y, d.X))
}
