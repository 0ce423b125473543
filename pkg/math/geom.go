// pkg/math/geom.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

///////////////////////////////////////////////////////////////////////////
// Geometry

// RayRayIntersect finds where the lines p0+t*d0 and p1+s*d1 cross and
// returns the parameters t and s of the crossing point along each. Either
// parameter may be negative, meaning the crossing is behind that ray's
// origin; callers that need forward intersections must check. ok is false
// when the directions are parallel to within eps (measured as the
// determinant of the 2x2 system, i.e. the sine of the angle between unit
// directions).
func RayRayIntersect(p0, d0, p1, d1 [2]float32, eps float32) (t, s float32, ok bool) {
	// It's important to do this in float64, given differences of
	// similar-ish values...
	d0x, d0y := float64(d0[0]), float64(d0[1])
	d1x, d1y := float64(d1[0]), float64(d1[1])
	bx, by := float64(p1[0])-float64(p0[0]), float64(p1[1])-float64(p0[1])

	// Solve t*d0 - s*d1 = p1 - p0 with Cramer's rule.
	det := d1x*d0y - d0x*d1y
	if gomath.Abs(det) < float64(eps) {
		return 0, 0, false
	}

	t = float32((d1x*by - bx*d1y) / det)
	s = float32((d0x*by - d0y*bx) / det)
	return t, s, true
}
