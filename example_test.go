package shape_test

import (
	"fmt"
	"math"

	"honnef.co/go/shape"
)

func ExampleNewRectGeometry() {
	g := shape.NewRectGeometry(shape.Rect{X0: 0, Y0: 0, X1: 100, Y1: 50})
	fmt.Println(g.TransformedPath().SVG())
	// Output: M0,0 L100,0 L100,50 L0,50 Z
}

func ExampleEditor() {
	g := shape.NewRectGeometry(shape.Rect{X0: 0, Y0: 0, X1: 100, Y1: 50})
	ed := shape.NewEditor(g, shape.DefaultOptions())

	// Drag the top right corner up and to the right. The bottom left corner
	// stays where it is.
	if err := ed.BeginDrag(shape.PartTopRight, shape.Pt(100, 0)); err != nil {
		panic(err)
	}
	if err := ed.UpdateDrag(shape.Pt(150, -25), false); err != nil {
		panic(err)
	}
	if err := ed.EndDrag(); err != nil {
		panic(err)
	}
	fmt.Println(g.Bounds())
	// Output: Rect{(0, -25), (150, 50)}
}

func ExampleEditor_CancelDrag() {
	g := shape.NewRectGeometry(shape.Rect{X0: 0, Y0: 0, X1: 100, Y1: 50})
	ed := shape.NewEditor(g, shape.DefaultOptions())
	if err := ed.BeginDrag(shape.PartRotation, g.RotationKnobPoint()); err != nil {
		panic(err)
	}
	if err := ed.UpdateDrag(shape.Pt(50, 100), false); err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", g.Angle())
	if err := ed.CancelDrag(); err != nil {
		panic(err)
	}
	fmt.Println(g.Angle())
	// Output:
	// 1.5708
	// 0
}

func ExampleGeometry_SetOperationMode() {
	g := shape.NewRectGeometry(shape.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100})
	if err := g.SetOperationMode(shape.ModePerspective); err != nil {
		panic(err)
	}
	d, _ := g.Distortion()
	d.Corners[shape.CornerTopLeft] = shape.Vec(0.25, 0)
	d.Corners[shape.CornerTopRight] = shape.Vec(-0.25, 0)
	if err := g.SetDistortion(d); err != nil {
		panic(err)
	}
	// The top edge is half as wide, the bottom edge is unchanged.
	tl, _ := g.KnobPoint(shape.PartDistortTopLeft)
	tr, _ := g.KnobPoint(shape.PartDistortTopRight)
	fmt.Println(math.Round(tr.Sub(tl).Hypot()))
	fmt.Println(math.Round(g.Bounds().Width()))
	// Output:
	// 50
	// 100
}
