package river

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Simulation evolves a river tick by tick. It owns the river and the mesh
// builder; the fields are only read.
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	cfg    Config
	river  River
	height Field
	width  Field

	mesh  MeshBuilder
	frame Frame

	ticks        uint64
	elapsed      time.Duration
	sinceHistory time.Duration
	history      [][]Point
}

// NewSimulation returns a simulation of rv driven by the height field and
// drawn with widths from the width field. It rejects invalid configurations.
func NewSimulation(rv River, height, width Field, cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("river: %w", err)
	}
	if height == nil || width == nil {
		return nil, &ConfigError{Field: "Field", Reason: "height and width fields are required"}
	}
	return &Simulation{
		cfg:    cfg,
		river:  rv.Clone(),
		height: height,
		width:  width,
	}, nil
}

// Tick advances the simulation by dt, which is clamped to the configured
// maximum step, and tessellates the result.
//
// If tessellation fails, the river still advances, Frame keeps returning the
// last good frame and the *TessellationError is returned. The next tick
// proceeds normally.
func (s *Simulation) Tick(dt time.Duration) error {
	dt = max(0, min(dt, s.cfg.MaxStep))
	s.ticks++
	s.elapsed += dt

	rv := s.river.Recompute()
	rv = rv.Step(dt, s.height, s.cfg)
	rv, stats := rv.DistributeStats(s.cfg)
	s.river = rv
	s.record(dt)

	log := Logger()
	log.Debug("river tick",
		slog.Uint64("tick", s.ticks),
		slog.Duration("dt", dt),
		slog.Int("nodes_in", stats.In),
		slog.Int("nodes_out", stats.Out),
		slog.Int("collisions", stats.Collisions),
		slog.Int("skipped", stats.Skipped))

	if err := Tessellate(s.river, s.width, s.cfg, &s.mesh); err != nil {
		log.Warn("tessellation failed, keeping previous frame",
			slog.Uint64("tick", s.ticks),
			slog.Uint64("frame", s.frame.Tick),
			slog.Any("err", err))
		return err
	}
	s.frame = s.mesh.Frame(s.river)
	s.frame.Tick = s.ticks
	log.Debug("river mesh",
		slog.Uint64("tick", s.ticks),
		slog.Int("vertices", len(s.frame.Mesh.Vertices)),
		slog.Int("triangles", s.frame.Mesh.Triangles()))
	return nil
}

func (s *Simulation) record(dt time.Duration) {
	if s.cfg.HistoryInterval <= 0 || s.cfg.HistoryLength == 0 {
		return
	}
	s.sinceHistory += dt
	if s.sinceHistory < s.cfg.HistoryInterval {
		return
	}
	s.sinceHistory = 0
	if len(s.history) == s.cfg.HistoryLength {
		s.history = slices.Delete(s.history, 0, 1)
	}
	s.history = append(s.history, s.river.Centerline())
}

// River returns a copy of the current river.
func (s *Simulation) River() River { return s.river.Clone() }

// Frame returns the most recent successfully tessellated frame.
func (s *Simulation) Frame() Frame { return s.frame }

// Mesh gives read access to the builder of the most recent pass. After a
// failed pass it is empty.
func (s *Simulation) Mesh() *MeshBuilder { return &s.mesh }

// History returns the recorded centerline snapshots, oldest first.
func (s *Simulation) History() [][]Point { return slices.Clone(s.history) }

// Config returns the simulation's configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Ticks returns the number of ticks run so far.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Elapsed returns the total simulated time, after clamping.
func (s *Simulation) Elapsed() time.Duration { return s.elapsed }
