// Package river simulates a meandering river and turns it into geometry that
// can be drawn. A river is a polyline of nodes that drifts across a scalar
// height field, and is repeatedly resampled and tessellated into a ribbon of
// varying width.
//
// # Rivers
//
// [River] holds the interior nodes of the curve in Segments. Open rivers also
// have two fixed anchors, Start and End, which are never moved by any pass but
// act as neighbors of the first and last segment. Closed rivers wrap around
// and ignore their anchors. [River.Neighbor] implements this rule and is the
// only way the passes look at adjacent nodes.
//
// Every [Node] carries a local frame made of a tangent and a bitangent. The
// tangent points along the curve, from the previous neighbor to the next. The
// bitangent is perpendicular to it and points to the side the curve bends
// towards; on straight stretches it is zero.
//
// # Passes
//
// A simulation tick runs four passes in order. All of them are pure functions
// from one River to the next.
//
//   - [River.Recompute] derives every node's frame from its neighbors.
//   - [River.Step] moves every node along its frame and down the gradient of
//     the height field. The frame terms are what makes the river meander: the
//     bitangent term pushes bends outwards while the tangent term makes the
//     curve slide along itself.
//   - [River.Distribute] resamples the curve at even arc-length spacing. When
//     the river has bent far enough that it touches itself, the loop in
//     between is cut off, producing an oxbow.
//   - [Tessellate] strokes the curve into a triangle mesh and collects the
//     points of both banks, ordered by the arc length at which they were
//     generated.
//
// [Simulation] bundles the passes, keeps the last good [Frame] when a
// tessellation fails, and records a history of centerlines for drawing
// trails.
//
// # Fields
//
// The height field steers the river and the width field decides how wide it
// is drawn. Both are [Field]s; [NoiseField] provides seeded, multi-octave
// Perlin or OpenSimplex noise limited to a rectangle, outside of which it
// reports [DryLand] so that rivers stay on the canvas.
//
// # Coordinates
//
// The simulation runs in a y-up world whose origin is at the center of the
// canvas. [ViewTransform] maps it onto a y-down raster.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive per-tick
// statistics at debug level and recovered failures at warn level.
package river
