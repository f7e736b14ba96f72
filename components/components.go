// Package components defines ECS components for the simulation.
package components

import "gonum.org/v1/gonum/spatial/r3"

// Position represents a node's world position.
// Positions are fixed once the node is created.
type Position struct {
	r3.Vec
}

// Node holds the identity and lineage of a growth node.
type Node struct {
	ID        string
	ParentID  string // Empty for the root
	HasParent bool
	Age       float64 // Simulated seconds; only advanced when node aging is enabled
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return !n.HasParent
}
