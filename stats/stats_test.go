package stats

import (
	"math"
	"testing"
)

func TestSummary(t *testing.T) {
	var s Summary
	if s.String() != "-" || s.StdDev() != 0 {
		t.Errorf("empty summary: %s", s.String())
	}
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(x)
	}
	if s.Count != 8 || s.Mean != 5 || s.Min != 2 || s.Max != 9 {
		t.Errorf("got %+v", s)
	}
	if sd := s.StdDev(); math.Abs(sd-math.Sqrt(32.0/7)) > 1e-12 {
		t.Errorf("stddev: got %g", sd)
	}
	if s.String() != "5.00±2.14 [2-9]" {
		t.Errorf("string: got %q", s.String())
	}
	if s.HTML() != "5.00&PlusMinus;2.14" {
		t.Errorf("html: got %q", s.HTML())
	}
}

func TestSummaryConstant(t *testing.T) {
	var s Summary
	for i := 0; i < 3; i++ {
		s.Add(42)
	}
	if s.StdDev() != 0 || s.HTML() != "42.0" {
		t.Errorf("got %g %q", s.StdDev(), s.HTML())
	}
}

func TestEMA(t *testing.T) {
	var e EMA
	v := e.Add(1, 3)
	if v != 1 {
		t.Errorf("first value: got %g", v)
	}
	v = EMA(v).Add(3, 3)
	if v != 2 {
		t.Errorf("second value: got %g", v)
	}
}
