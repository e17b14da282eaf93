package nnet

import "fmt"

// Role identifies which edge of the square a node is trained to detect.
type Role int

const (
	Top Role = iota
	Bottom
	Left
	Right
)

// Roles in the fixed order used for the network nodes.
var Roles = [4]Role{Top, Bottom, Left, Right}

var roleNames = [4]string{"top", "bottom", "left", "right"}

func (r Role) String() string {
	if r < Top || r > Right {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Node is a single linear threshold unit with two input weights and a bias.
type Node struct {
	Role
	WeightX    float64
	WeightY    float64
	Bias       float64
	Activation int
}

// Step activation of the weighted input sum: +1 if sum >= 0, else -1.
func (n Node) Activate(x, y float64) int {
	sum := n.WeightX*x + n.WeightY*y + n.Bias
	if sum >= 0 {
		return 1
	}
	return -1
}

// Target output for this node's edge, +1 if the point is on the inside half plane.
func (n Node) Target(p Point, b Bounds) int {
	var inside bool
	switch n.Role {
	case Top:
		inside = p.Y < b.Top
	case Bottom:
		inside = p.Y > b.Bottom
	case Left:
		inside = p.X > b.Left
	case Right:
		inside = p.X < b.Right
	}
	if inside {
		return 1
	}
	return -1
}

// Apply the perceptron learning rule for one point. Returns target - output,
// weights are left unchanged if this is zero.
func (n *Node) Learn(p Point, target int, eta float64) int {
	diff := target - n.Activate(p.X, p.Y)
	if diff != 0 {
		delta := eta * float64(diff)
		n.WeightX += delta * p.X
		n.WeightY += delta * p.Y
		n.Bias += delta
	}
	return diff
}

// Zero the weights, bias and cached activation.
func (n *Node) Reset() {
	n.WeightX, n.WeightY, n.Bias = 0, 0, 0
	n.Activation = 0
}

func (n Node) String() string {
	return fmt.Sprintf("%-6s wx=%7.3f wy=%7.3f bias=%7.3f", n.Role, n.WeightX, n.WeightY, n.Bias)
}
