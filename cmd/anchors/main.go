package main

import (
	"fmt"
	"os"

	"sphere-colormap/internal/mathutil"
	"sphere-colormap/internal/sphere"
)

func main() {
	fmt.Println("Ico anchors:")
	for i, a := range sphere.IcoAnchors() {
		fmt.Printf("  %2d  dir=(% .4f, % .4f, % .4f)  rgb=(%.0f, %.0f, %.0f)\n",
			i, a.Dir[0], a.Dir[1], a.Dir[2], a.Color[0], a.Color[1], a.Color[2])
	}

	dirs := []mathutil.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
		{1, 1, 1},
	}

	fmt.Println("\nCanonical directions:")
	for _, name := range sphere.Names() {
		m, err := sphere.Build(sphere.Params{Scheme: name})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		colors, err := m.Color(dirs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %s\n", m.Name())
		for i, p := range dirs {
			c := colors[i]
			fmt.Printf("    (% .0f, % .0f, % .0f)  rgb=(%.3f, %.3f, %.3f)\n", p[0], p[1], p[2], c[0], c[1], c[2])
		}
	}
}
