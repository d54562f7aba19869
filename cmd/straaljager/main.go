// SPDX-License-Identifier: MIT

// Command straaljager is a small demonstration of the library.
//
// Scenario:
//
//	Two points a and b are read from flags. The program prints their
//	difference, its length, the dot and cross products, and then fires a
//	ray from a towards b at a unit sphere centred on b.
//
// Usage:
//
//	straaljager -a 0,1,1 -b 1,1,1
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/katalvlaran/straaljager/geometry"
	"github.com/katalvlaran/straaljager/vector"
)

func main() {
	aFlag := flag.String("a", "0,1,1", "first point as x,y,z")
	bFlag := flag.String("b", "1,1,1", "second point as x,y,z")
	radius := flag.Float64("r", 1, "radius of the sphere placed at b")
	flag.Parse()

	a, err := parseVec3(*aFlag)
	if err != nil {
		log.Fatalf("-a: %v", err)
	}
	b, err := parseVec3(*bFlag)
	if err != nil {
		log.Fatalf("-b: %v", err)
	}

	d := a.Sub(b)
	fmt.Printf("a - b   = %v\n", d)
	fmt.Printf("|a - b| = %g\n", vector.Length(d))
	fmt.Printf("a · b   = %g\n", a.Dot(b))
	fmt.Printf("a × b   = %v\n", vector.Cross(a, b))

	if d.LengthSquared() == 0 {
		fmt.Println("a and b coincide: no ray to cast")

		return
	}
	ray := geometry.NewRay(a, b.Sub(a))
	sphere := geometry.Sphere{Center: b, Radius: float32(*radius)}
	t, ok := geometry.RaySphereClosest(ray, sphere)
	if !ok {
		fmt.Println("ray misses the sphere")

		return
	}
	fmt.Printf("ray hits sphere at t=%g, point %v\n", t, ray.At(t))
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (vector.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vector.Vec3{}, fmt.Errorf("want 3 comma-separated components, got %d in %q", len(parts), s)
	}
	var e [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return vector.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		e[i] = float32(f)
	}

	return vector.New3(e[0], e[1], e[2]), nil
}
