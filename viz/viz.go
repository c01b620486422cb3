// Package viz renders a core.Graph — nodes, edges with weight labels, and an
// optionally highlighted path — either as a PNG image or as a Mermaid
// diagram.
//
// The renderer consumes only the graph's public views (Nodes, Edges) plus an
// ordered path, so it works with whatever any search strategy returns; an
// empty path simply renders the bare graph.
package viz

import (
	"errors"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for rendering.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("viz: graph is nil")

	// ErrEmptyGraph is returned when there is nothing to render.
	ErrEmptyGraph = errors.New("viz: graph has no nodes")
)

// Option configures the renderer.
type Option func(*Renderer)

// WithCanvas overrides the canvas size in pixels. Non-positive values are
// ignored.
func WithCanvas(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

// WithTitle sets the image title drawn along the top edge.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// Renderer draws one graph, with optional start/goal marks and a highlighted
// path. Build it with NewRenderer, mark what you need, then SavePNG or
// MarshalMermaid.
type Renderer struct {
	graph  *core.Graph
	width  int
	height int
	title  string

	start     string
	goal      string
	path      []string
	pathEdges map[[2]string]bool
}

// NewRenderer returns a Renderer over g with an 800×800 canvas.
func NewRenderer(g *core.Graph, opts ...Option) (*Renderer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := &Renderer{
		graph:     g,
		width:     800,
		height:    800,
		pathEdges: make(map[[2]string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// MarkStart highlights the start node.
func (r *Renderer) MarkStart(id string) { r.start = core.CanonicalID(id) }

// MarkGoal highlights the goal node.
func (r *Renderer) MarkGoal(id string) { r.goal = core.CanonicalID(id) }

// MarkPath highlights the consecutive edges of the given ordered node
// sequence. An empty or single-node path marks nothing.
func (r *Renderer) MarkPath(path []string) {
	r.path = append([]string(nil), path...)
	for i := 0; i+1 < len(path); i++ {
		u, v := core.CanonicalID(path[i]), core.CanonicalID(path[i+1])
		r.pathEdges[[2]string{u, v}] = true
		r.pathEdges[[2]string{v, u}] = true
	}
}

// SavePNG renders the graph to a PNG file at path: edges in blue with green
// weight labels, nodes as black dots with blue labels, the marked path in
// red, the start node in green, and the goal node in red.
func (r *Renderer) SavePNG(path string) error {
	nodes := r.graph.Nodes()
	if len(nodes) == 0 {
		return ErrEmptyGraph
	}

	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	project := r.projector(nodes)

	// Edges first, so nodes and labels draw on top.
	for _, e := range r.graph.Edges() {
		ux, uy := r.nodeXY(project, e.U)
		vx, vy := r.nodeXY(project, e.V)

		dc.SetRGB(0.2, 0.4, 0.8)
		dc.SetLineWidth(1)
		dc.DrawLine(ux, uy, vx, vy)
		dc.Stroke()

		dc.SetRGB(0, 0.5, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%d", e.Weight), (ux+vx)/2, (uy+vy)/2, 0.5, 0.5)
	}

	// Highlighted path over the base edges.
	dc.SetRGB(0.9, 0.1, 0.1)
	dc.SetLineWidth(3)
	for i := 0; i+1 < len(r.path); i++ {
		ux, uy := r.nodeXY(project, r.path[i])
		vx, vy := r.nodeXY(project, r.path[i+1])
		dc.DrawLine(ux, uy, vx, vy)
		dc.Stroke()
	}

	for _, n := range nodes {
		x, y := project(n)
		switch n.ID {
		case r.start:
			dc.SetRGB(0.1, 0.7, 0.1)
		case r.goal:
			dc.SetRGB(0.9, 0.1, 0.1)
		default:
			dc.SetRGB(0, 0, 0)
		}
		dc.DrawCircle(x, y, 5)
		dc.Fill()

		dc.SetRGB(0.2, 0.2, 0.9)
		dc.DrawStringAnchored(n.ID, x+8, y-8, 0, 0.5)
	}

	if r.title != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(r.title, float64(r.width)/2, 16, 0.5, 0.5)
	}

	return dc.SavePNG(path)
}

// projector maps graph coordinates onto the canvas with a margin, flipping
// the y axis so larger y renders higher (plot convention, not image).
func (r *Renderer) projector(nodes []core.Node) func(core.Node) (float64, float64) {
	minX, minY := nodes[0].X, nodes[0].Y
	maxX, maxY := minX, minY
	for _, n := range nodes {
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	spanX, spanY := float64(maxX-minX), float64(maxY-minY)
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	const margin = 60.0
	w := float64(r.width) - 2*margin
	h := float64(r.height) - 2*margin

	return func(n core.Node) (float64, float64) {
		x := margin + (float64(n.X-minX)/spanX)*w
		y := margin + (1-float64(n.Y-minY)/spanY)*h

		return x, y
	}
}

// nodeXY projects a node by identifier; unknown identifiers land at the
// origin, which cannot happen for identifiers sourced from the same graph.
func (r *Renderer) nodeXY(project func(core.Node) (float64, float64), id string) (float64, float64) {
	n, ok := r.graph.Node(id)
	if !ok {
		return 0, 0
	}

	return project(n)
}
