package nnet

import "testing"

func TestActivate(t *testing.T) {
	tests := []struct {
		node Node
		x, y float64
		out  int
	}{
		{Node{}, 0.3, -0.7, 1},
		{Node{WeightX: 1}, -0.1, 0, -1},
		{Node{WeightX: 1, Bias: -0.5}, 0.5, 0.9, 1},
		{Node{WeightY: -2, Bias: 0.8}, 0, 0.41, -1},
		{Node{WeightX: 1, WeightY: 1}, 5, -5, 1},
	}
	for i, test := range tests {
		if out := test.node.Activate(test.x, test.y); out != test.out {
			t.Errorf("%d: activate(%g,%g) got %d expect %d", i, test.x, test.y, out, test.out)
		}
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		role   Role
		p      Point
		target int
	}{
		{Top, Point{0, 0.39}, 1},
		{Top, Point{0, 0.4}, -1},
		{Bottom, Point{0, -0.39}, 1},
		{Bottom, Point{0, -0.4}, -1},
		{Left, Point{-0.39, 0}, 1},
		{Left, Point{-0.4, 0}, -1},
		{Right, Point{0.39, 5}, 1},
		{Right, Point{0.4, 0}, -1},
	}
	for _, test := range tests {
		node := Node{Role: test.role}
		if target := node.Target(test.p, testBounds); target != test.target {
			t.Errorf("%s target for %v: got %d expect %d", test.role, test.p, target, test.target)
		}
	}
}

func TestLearn(t *testing.T) {
	node := Node{Role: Right}
	p := Point{0.6, -0.2}
	if diff := node.Learn(p, 1, 0.25); diff != 0 {
		t.Errorf("expected no change: diff=%d", diff)
	}
	if node != (Node{Role: Right}) {
		t.Errorf("node modified: %v", node)
	}
	if diff := node.Learn(p, -1, 0.25); diff != -2 {
		t.Errorf("diff: got %d expect -2", diff)
	}
	if !near(node.WeightX, -0.3) || !near(node.WeightY, 0.1) || !near(node.Bias, -0.5) {
		t.Errorf("update: got %v", node)
	}
	if node.Activate(p.X, p.Y) != -1 {
		t.Error("expected output -1 after update")
	}
	node.Reset()
	if node != (Node{Role: Right}) {
		t.Errorf("reset: got %v", node)
	}
}

func TestRoleString(t *testing.T) {
	for r, name := range map[Role]string{Top: "top", Bottom: "bottom", Left: "left", Right: "right", Role(7): "role(7)"} {
		if r.String() != name {
			t.Errorf("got %q expect %q", r.String(), name)
		}
	}
}
