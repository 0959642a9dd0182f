package filter_test

import (
	"fmt"

	"github.com/katalvlaran/lvmapper/filter"
)

func ExampleProjection() {
	points := [][]float64{{0.5, 10}, {1.5, 20}}
	values, err := filter.Projection(1).Apply(points)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(values)
	// Output: [[10] [20]]
}

func ExampleByName() {
	f, err := filter.ByName("l2norm", filter.Params{})
	if err != nil {
		fmt.Println(err)
		return
	}
	values, _ := f.Apply([][]float64{{3, 4}})
	fmt.Println(f, values)
	// Output: l2norm [[5]]
}
