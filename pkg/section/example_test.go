package section_test

import (
	"fmt"

	"github.com/matzehuels/framewright/pkg/frame"
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/section"
)

func ExampleBuildElevation() {
	f := frame.Frame{Direction: geom.Vec(1, 0, 0), Width: 4, Height: 3, Valid: true}

	spec, err := section.BuildElevation(f, 1, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println("view:", spec.View, "right:", spec.Right)
	fmt.Println("half extents:", spec.HalfWidth, spec.HalfHeight, spec.HalfDepth)
	b := spec.Box()
	fmt.Println("box:", b.Min, b.Max)
	// Output:
	// view: (1, 0, 0) right: (0, 1, 0)
	// half extents: 3 2.5 1
	// box: (-3, -1, -2.5) (3, 1, 2.5)
}
