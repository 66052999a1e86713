package geom

import (
	"testing"
)

func TestMod(t *testing.T) {
	cases := []struct {
		x, m, want float64
	}{
		{370, 360, 10},
		{-30, 360, 330},
		{-360, 360, 0},
		{-1, 3, 2},
		{5, 3, 2},
		{270, 180, 90},
	}
	for _, c := range cases {
		if got := Mod(c.x, c.m); got != c.want {
			t.Errorf("Mod(%v, %v) = %v, want %v", c.x, c.m, got, c.want)
		}
	}
}

func TestAngleConversion(t *testing.T) {
	if got := Radians(180); !EqualWithinTolerance(got, 3.141592653589793, 1e-15) {
		t.Errorf("Radians(180) = %v", got)
	}
	if got := Degrees(Radians(73.5)); !EqualWithinTolerance(got, 73.5, 1e-12) {
		t.Errorf("Degrees(Radians(73.5)) = %v", got)
	}
	if got := Atan2Degrees(1, 1); !EqualWithinTolerance(got, 45, 1e-12) {
		t.Errorf("Atan2Degrees(1, 1) = %v", got)
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp = %v", got)
	}
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp above = %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp below = %v", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   string
	}{
		{1.23456, 2, "1.23"},
		{100, 2, "100"},
		{1.5, 0, "2"},
		{-0.0004, 2, "0"},
		{-1.25, 1, "-1.3"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.x, c.digits); got != c.want {
			t.Errorf("FormatNumber(%v, %d) = %q, want %q", c.x, c.digits, got, c.want)
		}
	}
}

func TestEqualWithinEpsilon(t *testing.T) {
	if !EqualWithinEpsilon(1e12, 1e12+1, 1e-9) {
		t.Error("large values within relative epsilon reported unequal")
	}
	if EqualWithinEpsilon(1, 1.01, 1e-9) {
		t.Error("distinct values reported equal")
	}
}
