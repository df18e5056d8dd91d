package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/facet/pkg/math3d"
)

// LoadOBJ loads a vertex/face text mesh from disk.
//
// Only "v x y z" and "f i j k ..." records are used; normals, texture
// coordinates and other directives are skipped. On any error the returned
// mesh is nil so callers never render a partial load.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f, filepath.Base(path))
}

// ParseOBJ parses a vertex/face text mesh from a reader.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	// OBJ indices are 1-based into this list
	var positions []math3d.Vec3H

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: invalid vertex (need x y z)", lineNum)
			}
			var xyz [3]float64
			for i := range 3 {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNum, fields[i+1], err)
				}
				xyz[i] = v
			}
			positions = append(positions, math3d.Point(xyz[0], xyz[1], xyz[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}

			face := make([]math3d.Vec3H, 0, len(fields)-1)
			for _, field := range fields[1:] {
				idx, err := parseFaceIndex(field, len(positions))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				face = append(face, positions[idx])
			}

			// Fan triangulation keeps the file's winding
			for i := 1; i < len(face)-1; i++ {
				mesh.Triangles = append(mesh.Triangles, Tri(face[0], face[i], face[i+1]))
			}

		case "o", "g":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// parseFaceIndex resolves a face vertex reference ("7", "7/2", "7//3", "-1")
// to a 0-based index into count declared vertices.
func parseFaceIndex(s string, count int) (int, error) {
	ref, _, _ := strings.Cut(s, "/")
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex index: %s", ref)
	}

	switch {
	case idx > 0:
		idx-- // 1-based
	case idx < 0:
		idx += count // relative to the end
	default:
		return 0, fmt.Errorf("vertex index 0 is not valid")
	}

	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("vertex index %s out of range (%d vertices)", ref, count)
	}
	return idx, nil
}
