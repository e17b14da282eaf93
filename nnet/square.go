package nnet

import "fmt"

// Point in the 2D input plane, normally with both coordinates in [-1, 1].
type Point struct {
	X, Y float64
}

// Point with it's ground truth classification: +1 inside the square, -1 outside.
type LabeledPoint struct {
	Point
	Class int
}

// Square type is the target region given by it's center and size.
type Square struct {
	CenterX, CenterY float64
	Width, Height    float64
}

// Edge coordinates of a square.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// Calculate the edge coordinates.
func (s Square) Bounds() Bounds {
	return Bounds{
		Left:   s.CenterX - s.Width/2,
		Right:  s.CenterX + s.Width/2,
		Top:    s.CenterY + s.Height/2,
		Bottom: s.CenterY - s.Height/2,
	}
}

// Check width and height are positive so that Left < Right and Bottom < Top.
func (s Square) Validate() error {
	if !(s.Width > 0) || !(s.Height > 0) {
		return fmt.Errorf("invalid square %gx%g: width and height must be positive", s.Width, s.Height)
	}
	return nil
}

func (s Square) String() string {
	return fmt.Sprintf("center=(%.2f,%.2f) size=%.2fx%.2f", s.CenterX, s.CenterY, s.Width, s.Height)
}

// Closed outline of the bounds starting from the bottom left corner.
func (b Bounds) Outline() []Point {
	return []Point{
		{b.Left, b.Bottom}, {b.Right, b.Bottom}, {b.Right, b.Top}, {b.Left, b.Top}, {b.Left, b.Bottom},
	}
}

// Classify returns +1 if the point lies strictly inside the bounds, else -1.
// Points on an edge are outside.
func Classify(p Point, b Bounds) int {
	if p.X > b.Left && p.X < b.Right && p.Y > b.Bottom && p.Y < b.Top {
		return 1
	}
	return -1
}
