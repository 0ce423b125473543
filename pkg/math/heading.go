// pkg/math/heading.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// headings and directions

// HeadingDifference returns the minimum difference between two
// headings. (i.e., the result is always in the range [0,180].)
func HeadingDifference(a float32, b float32) float32 {
	var d float32
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	d = NormalizeHeading(d)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HeadingAsHour converts a heading expressed in degrees into the closest
// "o'clock" value, with an integer result in the range [1,12].
func HeadingAsHour(heading float32) int {
	heading = NormalizeHeading(heading - 15)
	// now [0,30] is 1 o'clock, etc
	return 1 + int(heading/30)
}

// HourAsHeading is the inverse of HeadingAsHour: it returns the heading
// at the center of the given clock sector.
func HourAsHeading(hour int) float32 {
	return NormalizeHeading(float32(hour) * 30)
}

// NormalizeHeading reduces h to [0,360).
func NormalizeHeading(h float32) float32 {
	h = Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		// -tiny + 360 may round up to 360 in float32.
		h = 0
	}
	return h
}

func OppositeHeading(h float32) float32 {
	return NormalizeHeading(h + 180)
}

// HeadingVector returns the unit vector for the given heading, where +y
// is north and +x is east.
func HeadingVector(heading float32) [2]float32 {
	rad := Radians(heading)
	return [2]float32{Sin(rad), Cos(rad)}
}

// VectorHeading returns the heading in [0,360) of the given vector, where
// +y is north and +x is east.
func VectorHeading(v [2]float32) float32 {
	// atan2() measures w.r.t. the +x axis with counter-clockwise positive
	// angles; passing (x,y) instead measures w.r.t. +y, clockwise.
	return NormalizeHeading(Degrees(Atan2(v[0], v[1])))
}
