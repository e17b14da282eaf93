// Package stats has running summary statistics used to report training results.
package stats

import (
	"fmt"
	"html/template"
	"math"
)

// Calc exponentional moving average over approx n values
type EMA float64

func (e EMA) Add(val, n float64) float64 {
	if e == 0 {
		return val
	}
	k := 2.0 / (n + 1.0)
	return val*k + float64(e)*(1-k)
}

// Summary has running mean, variance, min and max using Welford's algorithm
// as per http://www.johndcook.com/blog/standard_deviation/
type Summary struct {
	Count     int
	Mean      float64
	Min, Max  float64
	sumSquare float64
}

func (s *Summary) Add(x float64) {
	s.Count++
	if s.Count == 1 {
		s.Mean, s.Min, s.Max = x, x, x
		s.sumSquare = 0
		return
	}
	prev := s.Mean
	s.Mean += (x - prev) / float64(s.Count)
	s.sumSquare += (x - prev) * (x - s.Mean)
	s.Min = math.Min(s.Min, x)
	s.Max = math.Max(s.Max, x)
}

// Sample standard deviation, zero if less than two values
func (s *Summary) StdDev() float64 {
	if s.Count < 2 {
		return 0
	}
	return math.Sqrt(s.sumSquare / float64(s.Count-1))
}

func (s *Summary) String() string {
	if s.Count == 0 {
		return "-"
	}
	return fmt.Sprintf("%s [%g-%g]", s.format("±"), s.Min, s.Max)
}

func (s *Summary) HTML() template.HTML {
	if s.Count == 0 {
		return "&ndash;"
	}
	return template.HTML(s.format("&PlusMinus;"))
}

func (s *Summary) format(pm string) string {
	prec := 2
	if s.Mean > 10 {
		prec = 1
	}
	if sd := s.StdDev(); sd >= math.Pow10(-prec) {
		return fmt.Sprintf("%.*f%s%.*f", prec, s.Mean, pm, prec, sd)
	}
	return fmt.Sprintf("%.*f", prec, s.Mean)
}
