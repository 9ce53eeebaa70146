package river_test

import (
	"fmt"
	"time"

	"honnef.co/go/river"
)

func ExampleRiver_Distribute() {
	rv := river.River{
		Start: river.Node{Position: river.Pt(0, 0)},
		End:   river.Node{Position: river.Pt(20, 0)},
		Segments: []river.Node{
			{Position: river.Pt(3, 0)},
			{Position: river.Pt(11, 0)},
		},
	}
	for _, n := range rv.Distribute(river.DefaultConfig()).Segments {
		fmt.Println(n.Position)
	}
	// Output:
	// (5, 0)
	// (10, 0)
	// (15, 0)
	// (20, 0)
}

func ExampleTessellate() {
	rv := river.River{
		Start: river.Node{Position: river.Pt(0, 0), Width: 2},
		End:   river.Node{Position: river.Pt(10, 0), Width: 2},
	}
	var mb river.MeshBuilder
	if err := river.Tessellate(rv, river.ConstField(0), river.DefaultConfig(), &mb); err != nil {
		panic(err)
	}
	m := mb.Mesh()
	fmt.Printf("%d vertices, %d triangles\n", len(m.Vertices), m.Triangles())
	fmt.Println("left:", mb.Bank(river.Left))
	fmt.Println("right:", mb.Bank(river.Right))
	// Output:
	// 4 vertices, 2 triangles
	// left: [(0, 1) (10, 1)]
	// right: [(0, -1) (10, -1)]
}

func ExampleSimulation() {
	canvas := river.Sz(720, 720)
	bounds := river.NewRectFromCenter(river.Point{}, canvas)
	height, err := river.NewNoiseField(river.DefaultFieldConfig(1, river.HeightScale, bounds))
	if err != nil {
		panic(err)
	}
	width, err := river.NewNoiseField(river.DefaultFieldConfig(2, river.WidthScale, bounds))
	if err != nil {
		panic(err)
	}

	cfg := river.DefaultConfig()
	rv, err := river.DefaultClosedLoop(canvas, cfg).Build()
	if err != nil {
		panic(err)
	}
	sim, err := river.NewSimulation(rv, height, width, cfg)
	if err != nil {
		panic(err)
	}
	for range 60 {
		if err := sim.Tick(time.Second / 60); err != nil {
			fmt.Println("skipped frame:", err)
		}
	}
	f := sim.Frame()
	fmt.Println(f.Tick, f.Closed, f.Mesh.Triangles() > 0)
	// Output:
	// 60 true true
}
