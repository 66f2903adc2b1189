// Package diagram projects a workflow graph onto a canvas. The projection is
// a pure function: node coordinates are percentages of the canvas, so the
// same workflow can be laid out at any size, repeatedly, with no state.
package diagram

import (
	"FlowAcademy/internal/models"
)

type Point struct {
	X float64
	Y float64
}

type PlacedNode struct {
	Node     models.NodeData
	Position Point
}

type PlacedEdge struct {
	ID   string
	From Point
	To   Point
}

type Layout struct {
	Width  int
	Height int
	Nodes  []PlacedNode
	Edges  []PlacedEdge
}

// Project positions every node on a width x height canvas and resolves edge
// endpoints. Edges referencing a missing node are dropped silently.
func Project(w models.Workflow, width, height int) Layout {
	layout := Layout{
		Width:  width,
		Height: height,
		Nodes:  make([]PlacedNode, 0, len(w.Nodes)),
		Edges:  make([]PlacedEdge, 0, len(w.Edges)),
	}

	positions := make(map[string]Point, len(w.Nodes))
	for _, n := range w.Nodes {
		p := Point{
			X: float64(n.X) / 100 * float64(width),
			Y: float64(n.Y) / 100 * float64(height),
		}
		positions[n.ID] = p
		layout.Nodes = append(layout.Nodes, PlacedNode{Node: n, Position: p})
	}

	for _, e := range w.Edges {
		from, okFrom := positions[e.Source]
		to, okTo := positions[e.Target]
		if !okFrom || !okTo {
			continue
		}
		layout.Edges = append(layout.Edges, PlacedEdge{ID: e.ID, From: from, To: to})
	}

	return layout
}
