package river

// Tessellate strokes the river's path into out.
//
// Every path vertex is tagged with the node's colour and a width, which is the
// node's own Width if set and otherwise the width field's value scaled by
// cfg.WidthScale and offset by cfg.WidthBase. out is reset before anything is
// emitted, so geometry from a previous pass never survives.
//
// An empty closed river, or an open river whose anchors coincide and that has
// no segments, produces an empty mesh. On failure out is left empty and the
// error is a *TessellationError; rv is not affected either way.
func Tessellate(rv River, width Field, cfg Config, out GeometryBuilder) error {
	return StrokePath(PathVertices(rv, width, cfg), rv.Closed, cfg.Stroke, out)
}

// PathVertices returns the attributed path that [Tessellate] strokes.
func PathVertices(rv River, width Field, cfg Config) []PathVertex {
	nodes := rv.Nodes()
	path := make([]PathVertex, len(nodes))
	for i, n := range nodes {
		w := n.Width
		if w == 0 {
			w = width.At(n.Position)*cfg.WidthScale + cfg.WidthBase
		}
		path[i] = PathVertex{
			Position:   n.Position,
			Attributes: Attributes{Width: w, Color: n.Color},
		}
	}
	return path
}
