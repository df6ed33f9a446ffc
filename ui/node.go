package ui

import "github.com/phanxgames/coffee/graphics"

// MeasureFunc reports the content size of a leaf given the largest content
// box it may occupy. Either bound may be +Inf.
type MeasureFunc func(maxWidth, maxHeight float64) graphics.Size

// Node is a layout description: constraints plus ordered children. Widgets
// produce a fresh Node tree for every layout pass.
type Node struct {
	Style    Style
	Children []*Node

	measure MeasureFunc
}

// NewNode creates a container node.
func NewNode(style Style, children ...*Node) *Node {
	return &Node{Style: style, Children: children}
}

// NewLeaf creates a childless node whose auto dimensions come from measure.
func NewLeaf(style Style, measure MeasureFunc) *Node {
	return &Node{Style: style, measure: measure}
}
