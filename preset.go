package river

import (
	"fmt"
	"math"
	"strings"
)

// A Preset builds an initial river.
type Preset interface {
	Build() (River, error)
}

// ClosedLoop is a closed river of evenly spaced points on a circle.
type ClosedLoop struct {
	Center Point
	Radius float64
	Points int
	Color  RGBA
}

// DefaultClosedLoop returns a loop centered on the origin whose radius is 0.3
// times the canvas' smaller side, with points PointSpacing apart.
func DefaultClosedLoop(canvas Size, cfg Config) ClosedLoop {
	r := 0.3 * canvas.MinSide()
	return ClosedLoop{
		Radius: r,
		Points: int(math.Ceil(2 * math.Pi * r / cfg.PointSpacing)),
		Color:  Coral,
	}
}

func (p ClosedLoop) Build() (River, error) {
	if !finite(p.Radius) || p.Radius <= 0 {
		return River{}, &ConfigError{Field: "ClosedLoop.Radius", Reason: "must be positive and finite"}
	}
	if p.Points < 3 {
		return River{}, &ConfigError{Field: "ClosedLoop.Points", Reason: "must be at least 3"}
	}
	rv := River{
		Segments: make([]Node, p.Points),
		Closed:   true,
	}
	for i := range rv.Segments {
		th := float64(i) / float64(p.Points) * 2 * math.Pi
		rv.Segments[i] = Node{
			Position: p.Center.Translate(VecFromAngle(th).Mul(p.Radius)),
			Color:    p.Color,
		}
	}
	// Closed rivers do not use their anchors; park them on the first node.
	rv.Start, rv.End = rv.Segments[0], rv.Segments[0]
	return rv, nil
}

// OpenWave is an open river along a horizontal sine wave. Its first and last
// points become the anchors.
type OpenWave struct {
	Center Point
	// HalfLength is half the horizontal extent.
	HalfLength float64
	Amplitude  float64
	// Frequency is in radians per half length.
	Frequency float64
	Points    int
	Color     RGBA
}

// DefaultOpenWave returns a wave of 500 points crossing the whole canvas, with
// an amplitude of a tenth of the canvas' half height.
func DefaultOpenWave(canvas Size) OpenWave {
	return OpenWave{
		HalfLength: 0.5 * canvas.Width,
		Amplitude:  0.05 * canvas.Height,
		Frequency:  20,
		Points:     500,
		Color:      White,
	}
}

func (p OpenWave) Build() (River, error) {
	for _, v := range []struct {
		name string
		v    float64
	}{{"OpenWave.HalfLength", p.HalfLength}, {"OpenWave.Amplitude", p.Amplitude}, {"OpenWave.Frequency", p.Frequency}} {
		if !finite(v.v) {
			return River{}, &ConfigError{Field: v.name, Reason: "must be finite"}
		}
	}
	if p.HalfLength <= 0 {
		return River{}, &ConfigError{Field: "OpenWave.HalfLength", Reason: "must be positive"}
	}
	if p.Points < 2 {
		return River{}, &ConfigError{Field: "OpenWave.Points", Reason: "must be at least 2"}
	}
	nodes := make([]Node, p.Points)
	for i := range nodes {
		t := float64(i)/float64(p.Points-1)*2 - 1
		nodes[i] = Node{
			Position: p.Center.Translate(Vec(t*p.HalfLength, p.Amplitude*math.Sin(p.Frequency*t))),
			Color:    p.Color,
		}
	}
	return River{
		Start:    nodes[0],
		End:      nodes[len(nodes)-1],
		Segments: nodes[1 : len(nodes)-1],
	}, nil
}

// ParsePreset returns the default preset called name for the canvas: "loop"
// (or "circle") or "wave" (or "across").
func ParsePreset(name string, canvas Size, cfg Config) (Preset, error) {
	switch strings.ToLower(name) {
	case "loop", "circle":
		return DefaultClosedLoop(canvas, cfg), nil
	case "wave", "across":
		return DefaultOpenWave(canvas), nil
	default:
		return nil, &ConfigError{Field: "Preset", Reason: fmt.Sprintf("unknown preset %q", name)}
	}
}
