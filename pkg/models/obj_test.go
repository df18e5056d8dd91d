package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/facet/pkg/math3d"
)

func TestParseSimpleOBJ(t *testing.T) {
	objData := `
# Simple triangle
v 0 0 0
v 1 0 0
v 0.5 1 0
f 1 2 3
`
	mesh, err := ParseOBJ(strings.NewReader(objData), "triangle")
	require.NoError(t, err)
	require.Equal(t, 1, mesh.TriangleCount())

	tri := mesh.Triangles[0]
	assert.Equal(t, math3d.Point(0, 0, 0), tri.P[0])
	assert.Equal(t, math3d.Point(1, 0, 0), tri.P[1])
	assert.Equal(t, math3d.Point(0.5, 1, 0), tri.P[2])
	assert.Equal(t, 1.0, tri.P[2].W, "positions are points")
}

func TestParseOBJQuadsAndIndexForms(t *testing.T) {
	objData := `
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3//1 4
f -4 -3 -2
`
	mesh, err := ParseOBJ(strings.NewReader(objData), "ignored")
	require.NoError(t, err)

	assert.Equal(t, "quad", mesh.Name)
	// Quad fans into two triangles, plus the negative-index triangle
	require.Equal(t, 3, mesh.TriangleCount())

	assert.Equal(t, math3d.Point(0, 0, 0), mesh.Triangles[1].P[0])
	assert.Equal(t, math3d.Point(1, 1, 0), mesh.Triangles[1].P[1])
	assert.Equal(t, math3d.Point(0, 1, 0), mesh.Triangles[1].P[2])

	assert.Equal(t, mesh.Triangles[0].P, mesh.Triangles[2].P)

	assert.Equal(t, math3d.Point(0, 0, 0), mesh.BoundsMin)
	assert.Equal(t, math3d.Point(1, 1, 0), mesh.BoundsMax)
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 two 3\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"forward reference", "v 0 0 0\nf 1 2 3\nv 1 0 0\nv 0 1 0\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"non numeric index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a b c\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mesh, err := ParseOBJ(strings.NewReader(tc.data), tc.name)
			assert.Error(t, err)
			assert.Nil(t, mesh, "no partial mesh on failure")
		})
	}
}

func TestLoadOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	mesh, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, "tri.obj", mesh.Name)
	assert.Equal(t, 1, mesh.TriangleCount())

	mesh, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.TriangleCount())
}

func TestLoadMissingFile(t *testing.T) {
	mesh, err := LoadOBJ("/nonexistent/path.obj")
	assert.Error(t, err)
	assert.Nil(t, mesh)

	mesh, err = Load("model.stl")
	assert.Error(t, err)
	assert.Nil(t, mesh)
}

func TestLoadEmptyPathIsCube(t *testing.T) {
	mesh, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, mesh.TriangleCount())
}
