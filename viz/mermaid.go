package viz

import (
	"bytes"
	"fmt"
)

// MarshalMermaid renders the graph as a Mermaid flowchart. Edges carry their
// weight as a link label, path edges are stroked red, and the start and goal
// nodes get green and red fills. The output embeds directly into Markdown.
func (r *Renderer) MarshalMermaid() ([]byte, error) {
	nodes := r.graph.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	var buf bytes.Buffer
	buf.WriteString("graph TD\n")
	for _, n := range nodes {
		fmt.Fprintf(&buf, "    %s[\"%s\"]\n", n.ID, n.ID)
	}

	var pathLinks []int
	for i, e := range r.graph.Edges() {
		fmt.Fprintf(&buf, "    %s ---|%d| %s\n", e.U, e.Weight, e.V)
		if r.pathEdges[[2]string{e.U, e.V}] {
			pathLinks = append(pathLinks, i)
		}
	}

	for _, i := range pathLinks {
		fmt.Fprintf(&buf, "    linkStyle %d stroke:#d22,stroke-width:3px\n", i)
	}
	if r.start != "" && r.graph.HasNode(r.start) {
		fmt.Fprintf(&buf, "    style %s fill:#9f9\n", r.start)
	}
	if r.goal != "" && r.graph.HasNode(r.goal) {
		fmt.Fprintf(&buf, "    style %s fill:#f99\n", r.goal)
	}

	return buf.Bytes(), nil
}
