package coord

import "math"

// Parameters of the published GCJ02 obfuscation algorithm, reproduced verbatim.
const (
	// Krasovsky 1940 semi-major axis, in meters.
	semiMajorAxis = 6378245.0
	// Krasovsky 1940 eccentricity squared.
	eccentricitySq = 0.00669342162296594323
	// pi as written in the reference algorithm, used by the WGS84<->GCJ02 formulas.
	pi = 3.1415926535897932384626
)

// xPi scales BD09 polar offsets. It is evaluated in float64 arithmetic, one
// rounding per operation; the exact constant expression is 1 ulp larger.
var xPi = func() float64 {
	p := math.Pi
	return p * 3000.0 / 180.0
}()
