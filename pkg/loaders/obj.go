package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/lumenray/raygo/pkg/core"
	"github.com/lumenray/raygo/pkg/geometry"
)

// objMesh is the untransformed, unmaterialed result of parsing an OBJ
// file: a vertex pool and a face index list, before the MESH record's
// translate/rotate/scale transform and material are applied.
type objMesh struct {
	Vertices []core.Vec3
	Faces    []geometry.MeshFace
}

// LoadOBJ parses the OBJ subset used by mesh records: "v x y z" adds a
// vertex, "f i j k" adds a 1-indexed triangular face (converted to
// 0-indexed); every other line is ignored.
func LoadOBJ(path string) (*objMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open obj %q: %w", path, err)
	}
	defer f.Close()

	mesh := &objMesh{}

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		switch scanner.Text() {
		case "v":
			x, err := scanFloat(scanner)
			if err != nil {
				return nil, err
			}
			y, err := scanFloat(scanner)
			if err != nil {
				return nil, err
			}
			z, err := scanFloat(scanner)
			if err != nil {
				return nil, err
			}
			mesh.Vertices = append(mesh.Vertices, core.NewVec3(x, y, z))

		case "f":
			a, err := scanInt(scanner)
			if err != nil {
				return nil, err
			}
			b, err := scanInt(scanner)
			if err != nil {
				return nil, err
			}
			c, err := scanInt(scanner)
			if err != nil {
				return nil, err
			}
			mesh.Faces = append(mesh.Faces, geometry.MeshFace{A: a - 1, B: b - 1, C: c - 1})

		default:
			// ignore normals, texture coords, groups, and any other record
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read obj %q: %w", path, err)
	}

	return mesh, nil
}

func scanFloat(scanner *bufio.Scanner) (float64, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("loaders: obj: unexpected end of file")
	}
	return strconv.ParseFloat(scanner.Text(), 64)
}

func scanInt(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("loaders: obj: unexpected end of file")
	}
	return strconv.Atoi(scanner.Text())
}
