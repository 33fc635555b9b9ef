package asset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readOBJ scans vertex and face records only. Materials, normals and texture
// coordinates are skipped.
func readOBJ(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	var info Info
	bb := newBoundsBuilder()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "o":
			if info.Name == "" && len(fields) > 1 {
				info.Name = fields[1]
			}
			info.Meshes++
		case "v":
			if len(fields) < 4 {
				return Info{}, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var v [3]float32
			for i := 0; i < 3; i++ {
				x, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return Info{}, fmt.Errorf("line %d: %w", line, err)
				}
				v[i] = float32(x)
			}
			bb.add(v)
			info.Vertices++
		case "f":
			// Polygons are fanned into triangles.
			if n := len(fields) - 1; n >= 3 {
				info.Triangles += n - 2
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Info{}, err
	}

	b, ok := bb.bounds()
	if !ok {
		return Info{}, ErrEmptyModel
	}
	info.Bounds = b
	if info.Meshes == 0 {
		info.Meshes = 1
	}
	return info, nil
}
