package utils

import (
	"math"
	"testing"
)

func Test_DBToLinear(t *testing.T) {
	if DBToLinear(0) != 1.0 {
		t.Errorf("0dB should be unity")
	}
	if got := DBToLinear(-20); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("-20dB should be 0.1, got %f", got)
	}
	if got := DBToLinear(6); math.Abs(got-1.9952623149688795) > 1e-12 {
		t.Errorf("+6dB conversion off: %f", got)
	}

	// The mute threshold works on magnitude, both directions
	if DBToLinear(-128) != 0 || DBToLinear(128) != 0 || DBToLinear(-300) != 0 {
		t.Errorf("|dB| >= 128 must mute")
	}
	if DBToLinear(-127.9) == 0 {
		t.Errorf("-127.9dB must not mute")
	}
}

func Test_ClampFloat(t *testing.T) {
	cases := [][2]float64{{0.5, 0.5}, {1.5, 1.0}, {-2.0, -1.0}, {1.0, 1.0}, {-1.0, -1.0}}
	for _, c := range cases {
		if got := ClampFloat(c[0]); got != c[1] {
			t.Errorf("ClampFloat(%f) = %f, want %f", c[0], got, c[1])
		}
	}
}

func Test_Assert(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("failed assert should panic")
		}
	}()
	Assert(true, "fine")
	Assert(false, "boom: %d", 42)
}
