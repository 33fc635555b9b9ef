package asset

import (
	"github.com/hschendel/stl"
)

func readSTL(path string) (Info, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return Info{}, err
	}

	bb := newBoundsBuilder()
	for _, triangle := range solid.Triangles {
		for _, vertex := range triangle.Vertices {
			bb.add(vertex)
		}
	}
	b, ok := bb.bounds()
	if !ok {
		return Info{}, ErrEmptyModel
	}
	return Info{
		Name:      solid.Name,
		Meshes:    1,
		Triangles: len(solid.Triangles),
		Vertices:  3 * len(solid.Triangles),
		Bounds:    b,
	}, nil
}
