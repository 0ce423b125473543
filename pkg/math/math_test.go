// pkg/math/math_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestRoundTo(t *testing.T) {
	for _, c := range []struct {
		v      float32
		m      int
		expect int
	}{
		{4499, 1000, 4000}, {4500, 1000, 5000}, {-4500, 1000, -5000},
		{23449, 100, 23400}, {23450, 100, 23500}, {0, 500, 0},
	} {
		if r := RoundTo(c.v, c.m); r != c.expect {
			t.Errorf("RoundTo(%f, %d) = %d, expected %d", c.v, c.m, r, c.expect)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 1, 3) != 3 || Clamp(-5, 1, 3) != 1 || Clamp(2, 1, 3) != 2 {
		t.Errorf("Clamp returned unexpected values")
	}
	if Clamp(float32(2.5), 3, 4) != 3 {
		t.Errorf("Clamp float returned unexpected value")
	}
}

func TestRayRayIntersect(t *testing.T) {
	type testCase struct {
		name   string
		p0, d0 [2]float32
		p1, d1 [2]float32
		t, s   float32
		ok     bool
	}

	for _, tc := range []testCase{
		{
			name: "Perpendicular",
			p0:   [2]float32{0, 0}, d0: [2]float32{0, 1},
			p1: [2]float32{-3, 4}, d1: [2]float32{1, 0},
			t: 4, s: 3, ok: true,
		},
		{
			name: "Behind",
			p0:   [2]float32{0, 0}, d0: [2]float32{0, 1},
			p1: [2]float32{-3, -2}, d1: [2]float32{1, 0},
			t: -2, s: 3, ok: true,
		},
		{
			name: "HeadOn",
			p0:   [2]float32{0, 0}, d0: [2]float32{0, 1},
			p1: [2]float32{0, 6}, d1: [2]float32{0, -1},
			ok: false,
		},
		{
			name: "Diagonal",
			p0:   [2]float32{0, 0}, d0: [2]float32{0.70710677, 0.70710677},
			p1: [2]float32{4, 0}, d1: [2]float32{-0.70710677, 0.70710677},
			t: Sqrt(8), s: Sqrt(8), ok: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tt, s, ok := RayRayIntersect(tc.p0, tc.d0, tc.p1, tc.d1, 1e-3)
			if ok != tc.ok {
				t.Fatalf("got ok %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if Abs(tt-tc.t) > 1e-4 || Abs(s-tc.s) > 1e-4 {
				t.Errorf("got t %f s %f, expected %f %f", tt, s, tc.t, tc.s)
			}
			// Both parameterizations must land on the same point.
			a := Add2f(tc.p0, Scale2f(tc.d0, tt))
			b := Add2f(tc.p1, Scale2f(tc.d1, s))
			if Distance2f(a, b) > 1e-4 {
				t.Errorf("rays meet at different points %v and %v", a, b)
			}
		})
	}
}

func TestVectors(t *testing.T) {
	a, b := [2]float32{3, 4}, [2]float32{1, 1}
	if Length2f(a) != 5 {
		t.Errorf("Length2f(%v) = %f", a, Length2f(a))
	}
	if Sub2f(a, b) != [2]float32{2, 3} || Add2f(a, b) != [2]float32{4, 5} {
		t.Errorf("Add2f/Sub2f gave unexpected results")
	}
	if s := Scale2f(a, 0.5); s != [2]float32{1.5, 2} {
		t.Errorf("Scale2f(%v, 0.5) = %v", a, s)
	}
	if Distance2f(a, b) != Length2f(Sub2f(a, b)) {
		t.Errorf("Distance2f inconsistent with Length2f")
	}
}
