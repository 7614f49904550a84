// Package physics owns kinetic integration for the per-frame lifecycle.
package physics

import (
	"math"

	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/vmath"
)

// Integrate advances a kinetic by dt seconds using semi-implicit Euler:
// acceleration feeds velocity before velocity feeds position
func Integrate(k *core.Kinetic, dt float64) {
	k.VelX += k.AccelX * dt
	k.VelY += k.AccelY * dt
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
}

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(k *core.Kinetic, maxSpeed float64) bool {
	if maxSpeed <= 0 {
		return false
	}
	magSq := vmath.MagnitudeSq(k.VelX, k.VelY)
	if magSq <= maxSpeed*maxSpeed {
		return false
	}
	mag := math.Sqrt(magSq)
	scale := maxSpeed / mag
	k.VelX *= scale
	k.VelY *= scale
	return true
}
