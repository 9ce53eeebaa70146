package river

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite is reported when a path handed to the tessellator contains a
	// NaN or infinite position or width.
	ErrNonFinite = errors.New("non-finite path vertex")
	// ErrTooManyVertices is reported when a mesh would need more vertices than
	// a VertexID can address.
	ErrTooManyVertices = errors.New("too many vertices")
)

// ConfigError describes one rejected configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TessellationError reports a failed tessellation pass. The builder that was
// being filled has been aborted and holds no geometry. The failure only
// affects the pass that produced it.
type TessellationError struct {
	// Vertex is the index of the offending path vertex, or -1 if the failure
	// is not attributable to a single vertex.
	Vertex int
	Err    error
}

func (e *TessellationError) Error() string {
	if e.Vertex < 0 {
		return fmt.Sprintf("tessellation failed: %s", e.Err)
	}
	return fmt.Sprintf("tessellation failed at path vertex %d: %s", e.Vertex, e.Err)
}

func (e *TessellationError) Unwrap() error { return e.Err }
