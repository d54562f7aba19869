// SPDX-License-Identifier: MIT

package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/straaljager/geometry"
	"github.com/katalvlaran/straaljager/vector"
)

func ExampleRaySphereClosest() {
	ray := geometry.NewRay(vector.New3[float32](0, 0, 0), vector.New3[float32](0, 0, 1))
	sphere := geometry.Sphere{Center: vector.New3[float32](0, 0, 5), Radius: 1}

	if t, ok := geometry.RaySphereClosest(ray, sphere); ok {
		fmt.Printf("hit at t=%g\n", t)
	}
	_, ok := geometry.RaySphereClosest(geometry.NewRay(vector.New3[float32](0, 3, 0), vector.New3[float32](0, 0, 1)), sphere)
	fmt.Println("offset ray hits:", ok)
	// Output:
	// hit at t=4
	// offset ray hits: false
}
