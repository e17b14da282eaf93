package nnet

import (
	"testing"
)

func TestBounds(t *testing.T) {
	sq := Square{CenterX: 0.1, CenterY: -0.2, Width: 0.6, Height: 0.4}
	b := sq.Bounds()
	if !near(b.Left, -0.2) || !near(b.Right, 0.4) || !near(b.Top, 0) || !near(b.Bottom, -0.4) {
		t.Errorf("got %+v", b)
	}
	if err := sq.Validate(); err != nil {
		t.Error(err)
	}
	for _, bad := range []Square{{Width: 0, Height: 1}, {Width: 1, Height: -0.5}} {
		if bad.Validate() == nil {
			t.Errorf("expected error for %v", bad)
		}
	}
	outline := b.Outline()
	if len(outline) != 5 || outline[0] != outline[4] {
		t.Errorf("outline not closed: %v", outline)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		p     Point
		class int
	}{
		{Point{0, 0}, 1},
		{Point{-0.4, 0}, -1},
		{Point{0.4, 0}, -1},
		{Point{0, 0.4}, -1},
		{Point{0, -0.4}, -1},
		{Point{0.39, -0.39}, 1},
		{Point{0.5, 0.5}, -1},
		{Point{0, 0.9}, -1},
	}
	for _, test := range tests {
		if class := Classify(test.p, testBounds); class != test.class {
			t.Errorf("classify %v: got %d expect %d", test.p, class, test.class)
		}
	}
}

func TestGenerate(t *testing.T) {
	sq := Square{Width: 0.8, Height: 0.8}
	d := Generate(500, sq, SetSeed(42))
	if d.Len() != 500 {
		t.Fatalf("got %d points", d.Len())
	}
	b := sq.Bounds()
	for i, p := range d.Points {
		if p.X < -1 || p.X >= 1 || p.Y < -1 || p.Y >= 1 {
			t.Errorf("point %d out of range: %v", i, p.Point)
		}
		if p.Class != Classify(p.Point, b) {
			t.Errorf("point %d mislabeled: %v", i, p)
		}
	}
	if n := d.Inside(); n == 0 || n == d.Len() {
		t.Errorf("expected a mix of labels: inside=%d", n)
	}
	d2 := Generate(500, sq, SetSeed(42))
	for i := range d.Points {
		if d.Points[i] != d2.Points[i] {
			t.Fatal("same seed should give same data")
		}
	}
	t.Log(d)
}

func TestRelabel(t *testing.T) {
	d := &Dataset{Points: []LabeledPoint{{Point: Point{0.7, 0.7}}, {Point: Point{0, 0}}}}
	d.Relabel(Square{CenterX: 0.5, CenterY: 0.5, Width: 0.6, Height: 0.6})
	if d.Points[0].Class != 1 || d.Points[1].Class != -1 {
		t.Errorf("got %v", d.Points)
	}
	if d.CenterX != 0.5 {
		t.Errorf("square not updated: %v", d.Square)
	}
}

func TestDataFile(t *testing.T) {
	DataDir = t.TempDir()
	d := Generate(20, Square{Width: 1, Height: 0.5}, SetSeed(1))
	if err := SaveDataFile(d, "test_train"); err != nil {
		t.Fatal(err)
	}
	if !FileExists("test_train.dat") {
		t.Fatal("data file not found")
	}
	d2, err := LoadDataFile("test_train")
	if err != nil {
		t.Fatal(err)
	}
	if d2.Square != d.Square || len(d2.Points) != len(d.Points) {
		t.Fatalf("got %s expect %s", d2, d)
	}
	for i := range d.Points {
		if d2.Points[i] != d.Points[i] {
			t.Errorf("point %d: got %v expect %v", i, d2.Points[i], d.Points[i])
		}
	}
	if _, err := LoadDataFile("missing"); err == nil {
		t.Error("expected error loading missing file")
	}
}
