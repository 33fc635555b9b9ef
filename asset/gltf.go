package asset

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// readGLTF handles both .gltf and .glb. Node transforms are not applied; the
// bounds are the union of every primitive's POSITION accessor.
func readGLTF(path string) (Info, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Info{}, err
	}

	info := Info{Meshes: len(doc.Meshes)}
	bb := newBoundsBuilder()
	for _, m := range doc.Meshes {
		if info.Name == "" {
			info.Name = m.Name
		}
		for _, prim := range m.Primitives {
			idx, ok := prim.Attributes[gltf.POSITION]
			if !ok || int(idx) >= len(doc.Accessors) {
				continue
			}
			acc := doc.Accessors[idx]
			info.Vertices += int(acc.Count)

			if len(acc.Min) == 3 && len(acc.Max) == 3 {
				bb.add([3]float32{float32(acc.Min[0]), float32(acc.Min[1]), float32(acc.Min[2])})
				bb.add([3]float32{float32(acc.Max[0]), float32(acc.Max[1]), float32(acc.Max[2])})
			} else {
				positions, err := modeler.ReadPosition(doc, acc, nil)
				if err != nil {
					return Info{}, err
				}
				for _, p := range positions {
					bb.add(p)
				}
			}

			switch {
			case prim.Indices != nil && int(*prim.Indices) < len(doc.Accessors):
				info.Triangles += int(doc.Accessors[*prim.Indices].Count) / 3
			default:
				info.Triangles += int(acc.Count) / 3
			}
		}
	}

	b, ok := bb.bounds()
	if !ok {
		return Info{}, ErrEmptyModel
	}
	info.Bounds = b
	return info, nil
}
