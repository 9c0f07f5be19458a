package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lumenray/raygo/pkg/geometry"
)

func writeTempScene(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const matFields = "(1,1,1) 0 0 (1,1,1) 1 1 0"

func TestLoadSceneSphere(t *testing.T) {
	path := writeTempScene(t, "SPHERE (0,0,0) 1 "+matFields+"\n")

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if len(sc.Primitives) != 1 {
		t.Fatalf("got %d primitives, want 1", len(sc.Primitives))
	}
	if _, ok := sc.Primitives[0].(*geometry.Sphere); !ok {
		t.Errorf("primitive type = %T, want *geometry.Sphere", sc.Primitives[0])
	}
}

func TestLoadSceneBox(t *testing.T) {
	path := writeTempScene(t, "BOX (0,0,0) (1,0,0) (0,1,0) (0,0,1) "+matFields+"\n")

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if _, ok := sc.Primitives[0].(*geometry.Box); !ok {
		t.Errorf("primitive type = %T, want *geometry.Box", sc.Primitives[0])
	}
}

func TestLoadScenePolygon(t *testing.T) {
	path := writeTempScene(t, "POLYGON 3 (0,0,0) (1,0,0) (0,1,0) "+matFields+"\n")

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if _, ok := sc.Primitives[0].(*geometry.Polygon); !ok {
		t.Errorf("primitive type = %T, want *geometry.Polygon", sc.Primitives[0])
	}
}

func TestLoadSceneEllipsoid(t *testing.T) {
	path := writeTempScene(t, "ELLIPSOID (0,0,0) (1,0,0) (0,2,0) (0,0,3) "+matFields+"\n")

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if _, ok := sc.Primitives[0].(*geometry.Ellipsoid); !ok {
		t.Errorf("primitive type = %T, want *geometry.Ellipsoid", sc.Primitives[0])
	}
}

func TestLoadSceneMesh(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "tri.obj")
	if err := os.WriteFile(objPath, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	scenePath := filepath.Join(dir, "scene.txt")
	contents := "MESH tri.obj (0,0,0) (0,0,0) 1 " + matFields + "\n"
	if err := os.WriteFile(scenePath, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	sc, err := LoadScene(scenePath)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	mesh, ok := sc.Primitives[0].(*geometry.Mesh)
	if !ok {
		t.Fatalf("primitive type = %T, want *geometry.Mesh", sc.Primitives[0])
	}
	if len(mesh.Vertices) != 3 || len(mesh.Faces) != 1 {
		t.Errorf("mesh = %d vertices, %d faces, want 3 and 1", len(mesh.Vertices), len(mesh.Faces))
	}
}

func TestLoadSceneLightAmbientAir(t *testing.T) {
	path := writeTempScene(t, `
LIGHT (0,5,0) (1,1,1) 0.5
AMBIENT (0.1,0.1,0.1)
AIR 1 1 (1,1,1)
`)

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if len(sc.Lights) != 1 {
		t.Fatalf("got %d lights, want 1", len(sc.Lights))
	}
	if sc.Lights[0].Radius != 0.5 {
		t.Errorf("light radius = %f, want 0.5", sc.Lights[0].Radius)
	}
	if sc.Ambient.Color.X != 0.1 {
		t.Errorf("ambient color = %v, want (0.1,0.1,0.1)", sc.Ambient.Color)
	}
	if sc.Air.ElectricPermittivity != 1 || sc.Air.MagneticPermeability != 1 {
		t.Errorf("air = %+v, want epsilon=1 mu=1", sc.Air)
	}
}

func TestLoadSceneCameraWithoutLens(t *testing.T) {
	path := writeTempScene(t, "CAMERA (0,0,4) (1,0,0) (0,1,0) 1 0.1 10 0 1 2\n")

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if sc.Camera.Aperture != 0.1 || sc.Camera.FocalDistance != 10 {
		t.Errorf("camera = %+v, want aperture=0.1 focalDistance=10", sc.Camera)
	}
	if len(sc.Camera.Lens) != 0 {
		t.Errorf("expected no lens triangles, got %d", len(sc.Camera.Lens))
	}
}

func TestLoadSceneCameraWithLensShape(t *testing.T) {
	path := writeTempScene(t, "CAMERA (0,0,4) (1,0,0) (0,1,0) 1 1 10 0 1 2 LENSE 1 (0,0) (1,0) (0,1)\n")

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if len(sc.Camera.Lens) != 1 {
		t.Fatalf("got %d lens triangles, want 1", len(sc.Camera.Lens))
	}
	if sc.Camera.Lens[0].Weight != 1 {
		t.Errorf("single-triangle lens weight = %f, want 1", sc.Camera.Lens[0].Weight)
	}
}

func TestLoadSceneUnrecognizedTagErrors(t *testing.T) {
	path := writeTempScene(t, "BOGUS 1 2 3\n")
	if _, err := LoadScene(path); err == nil {
		t.Error("expected an error for an unrecognized record tag")
	}
}

func TestLoadSceneCommentsAreIgnored(t *testing.T) {
	path := writeTempScene(t, "# a comment line\nSPHERE (0,0,0) 1 "+matFields+" # trailing comment\n")

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if len(sc.Primitives) != 1 {
		t.Errorf("got %d primitives, want 1", len(sc.Primitives))
	}
}
