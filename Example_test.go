package gospaces_test

import (
	"fmt"

	"github.com/samuelfneumann/gospaces"
	"gonum.org/v1/gonum/mat"
)

func ExampleFlatten() {
	position, _ := gospaces.NewDiscrete(5, 0)
	velocity, _ := gospaces.NewBox(
		mat.NewVecDense(2, []float64{0, 0}),
		mat.NewVecDense(2, []float64{1, 5}),
		[]int{2},
		gospaces.Float64,
	)
	space, _ := gospaces.NewDictSpace(
		[]string{"position", "velocity"},
		[]gospaces.Space{position, velocity},
	)

	dim, _ := gospaces.FlatDim(space)
	fmt.Println(dim)

	flat, _ := gospaces.Flatten(space, map[string]interface{}{
		"position": 3,
		"velocity": mat.NewVecDense(2, []float64{0.5, 3.5}),
	})
	fmt.Println(flat.RawVector().Data)

	flatSpace, _ := gospaces.FlattenSpace(space)
	fmt.Println(flatSpace.Dtype())
	// Output:
	// 7
	// [0 0 0 1 0 0.5 3.5]
	// float64
}

func ExampleUnflatten() {
	space, _ := gospaces.NewMultiDiscrete([]int{2, 2, 10})

	flat := mat.NewVecDense(14, []float64{
		1, 0,
		0, 1,
		0, 0, 0, 0, 0, 0, 0, 1, 0, 0,
	})
	sample, _ := gospaces.Unflatten(space, flat)
	fmt.Println(sample.(*mat.VecDense).RawVector().Data)
	// Output:
	// [0 1 7]
}
