// Package lighting provides light direction utilities for surface shading.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/oceangrid/pkg/math"
)

// SunDirection converts azimuth/elevation angles in degrees to a normalized
// direction vector pointing toward the sun. Azimuth rotates around the Y
// axis; elevation rises from the horizon (0) to overhead (90).
func SunDirection(azimuth, elevation float32) math.Vec3 {
	azRad := azimuth * math32.Pi / 180
	elRad := elevation * math32.Pi / 180

	return math.Vec3{
		X: math32.Cos(elRad) * math32.Sin(azRad),
		Y: math32.Sin(elRad),
		Z: math32.Cos(elRad) * math32.Cos(azRad),
	}
}
