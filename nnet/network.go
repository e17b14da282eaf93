// Package nnet contains routines for constructing, training and testing a network of
// four perceptrons which learn the edges of a square.
package nnet

import (
	"fmt"
	"os"
	"strings"
)

// Network type has one node per edge role, combined with a fixed AND gate at the output.
// It is not safe for concurrent use, callers must ensure there is a single writer.
type Network struct {
	Nodes [4]Node
	Round int
}

// New function creates a new network with zero weights.
func New() *Network {
	n := &Network{}
	for i, r := range Roles {
		n.Nodes[i].Role = r
	}
	return n
}

// Accessor for the node with the given edge role.
func (n *Network) Node(r Role) *Node {
	return &n.Nodes[r]
}

// Predict returns +1 if all nodes output +1 (inside the square), else -1.
// Each node's output is saved in it's Activation field.
func (n *Network) Predict(x, y float64) int {
	out := 1
	for i := range n.Nodes {
		n.Nodes[i].Activation = n.Nodes[i].Activate(x, y)
		if n.Nodes[i].Activation != 1 {
			out = -1
		}
	}
	return out
}

// Perform one training round over the data, updating the weights after each point.
// Each node learns from it's own edge target, the network level error is only counted.
// Returns the number of points misclassified by the network.
func (n *Network) TrainRound(data []LabeledPoint, b Bounds, eta float64) int {
	errors := 0
	for _, p := range data {
		if n.Predict(p.X, p.Y) != p.Class {
			errors++
		}
		for i := range n.Nodes {
			node := &n.Nodes[i]
			node.Learn(p.Point, node.Target(p.Point, b), eta)
		}
	}
	n.Round++
	return errors
}

// Reset all weights to zero and the round counter to 0.
func (n *Network) Reset() {
	for i := range n.Nodes {
		n.Nodes[i].Reset()
	}
	n.Round = 0
}

// Accuracy returns number of correctly predicted points and fraction of the total.
func (n *Network) Accuracy(data []LabeledPoint) (correct int, acc float64) {
	for _, p := range data {
		if n.Predict(p.X, p.Y) == p.Class {
			correct++
		}
	}
	if len(data) > 0 {
		acc = float64(correct) / float64(len(data))
	}
	return correct, acc
}

// Print network description
func (n *Network) String() string {
	s := make([]string, len(n.Nodes))
	for i, node := range n.Nodes {
		s[i] = fmt.Sprintf("%d: %s", i, node)
	}
	return fmt.Sprintf("== Network round %d ==\n%s", n.Round, strings.Join(s, "\n"))
}

// Print network weights
func (n *Network) PrintWeights() {
	fmt.Println(n)
}

// Exit in case of error
func CheckErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
