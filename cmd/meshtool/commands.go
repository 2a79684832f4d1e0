package main

import (
	"flag"
	"fmt"
	gomath "math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/voxfield/meshattr/internal/config"
	"github.com/voxfield/meshattr/internal/export"
	"github.com/voxfield/meshattr/internal/logger"
	"github.com/voxfield/meshattr/pkg/clip"
	"github.com/voxfield/meshattr/pkg/math"
	"github.com/voxfield/meshattr/pkg/mesh"
)

// meshFlags are the options shared by every subcommand that builds a mesh.
type meshFlags struct {
	attrs     *string
	translate *string
	rotate    *string
	scale     *float64
	out       *string
}

func registerMeshFlags(fs *flag.FlagSet) *meshFlags {
	return &meshFlags{
		attrs:     fs.String("attrs", "all", "Attribute channels to generate"),
		translate: fs.String("translate", "", "Translation as x,y,z"),
		rotate:    fs.String("rotate", "", "Rotation as axisX,axisY,axisZ,degrees"),
		scale:     fs.Float64("scale", 1, "Uniform scale factor"),
		out:       fs.String("out", "", "Output OBJ path (default stdout)"),
	}
}

// buildMesh generates the primitive and runs it through the converter with
// the requested transform.
func (mf *meshFlags) buildMesh(shape string) (*mesh.Mesh, error) {
	attrs, err := parseAttrs(*mf.attrs)
	if err != nil {
		return nil, err
	}
	verts, indices, err := buildPrimitive(shape, attrs)
	if err != nil {
		return nil, err
	}

	transform, err := mf.transform()
	if err != nil {
		return nil, err
	}

	m := &mesh.Mesh{}
	if err := mesh.SetMesh(m, verts, transform); err != nil {
		return nil, fmt.Errorf("building %s: %w", shape, err)
	}
	m.Indices = indices
	return m, nil
}

// transform builds the combined translate * rotate * scale matrix, or nil
// when no transform flags were given.
func (mf *meshFlags) transform() (*math.Mat4, error) {
	m := math.Identity()
	used := false

	if *mf.translate != "" {
		v, err := parseFloats(*mf.translate, 3)
		if err != nil {
			return nil, fmt.Errorf("bad -translate: %w", err)
		}
		m = math.Translate(v[0], v[1], v[2])
		used = true
	}
	if *mf.rotate != "" {
		v, err := parseFloats(*mf.rotate, 4)
		if err != nil {
			return nil, fmt.Errorf("bad -rotate: %w", err)
		}
		axis := math.Vec3{X: v[0], Y: v[1], Z: v[2]}.Normalize()
		angle := v[3] * gomath.Pi / 180
		m = m.Mul(math.QuatFromAxisAngle(axis, angle).ToMat4())
		used = true
	}
	if *mf.scale != 1 {
		s := float32(*mf.scale)
		m = m.Mul(math.Scale(s, s, s))
		used = true
	}

	if !used {
		return nil, nil
	}
	return &m, nil
}

// writeMesh sends the mesh to the -out path or stdout.
func (mf *meshFlags) writeMesh(m *mesh.Mesh, name string) error {
	if *mf.out == "" {
		return export.WriteOBJ(os.Stdout, m, name)
	}
	f, err := os.Create(*mf.out)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteOBJ(f, m, name)
}

func cmdMake(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("make", flag.ExitOnError)
	mf := registerMeshFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "make: missing primitive (cube or quad)")
		os.Exit(1)
	}
	shape := fs.Arg(0)

	m, err := mf.buildMesh(shape)
	if err != nil {
		logger.Fatal("make failed", zap.Error(err))
	}
	logger.Info("generated mesh",
		zap.String("shape", shape),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.String("attrs", m.Attrs().String()))

	if err := mf.writeMesh(m, cfg.Export.ObjectName); err != nil {
		logger.Fatal("write failed", zap.Error(err))
	}
}

func cmdClip(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("clip", flag.ExitOnError)
	mf := registerMeshFlags(fs)
	planeSpec := fs.String("plane", "1,0,0,0", "Clip plane as nx,ny,nz,d")
	keepSpec := fs.String("keep", "front", "Side to keep: front or back")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "clip: missing primitive (cube or quad)")
		os.Exit(1)
	}
	shape := fs.Arg(0)

	m, err := mf.buildMesh(shape)
	if err != nil {
		logger.Fatal("clip failed", zap.Error(err))
	}

	v, err := parseFloats(*planeSpec, 4)
	if err != nil {
		logger.Fatal("bad -plane", zap.Error(err))
	}
	plane := clip.Plane{Normal: math.Vec3{X: v[0], Y: v[1], Z: v[2]}.Normalize(), D: v[3]}

	var keep clip.Side
	switch *keepSpec {
	case "front":
		keep = clip.Front
	case "back":
		keep = clip.Back
	default:
		logger.Fatal("bad -keep", zap.String("value", *keepSpec))
	}

	sliced, err := clip.SlicePlane(m, plane, keep, cfg.Clip.Epsilon)
	if err != nil {
		logger.Fatal("slice failed", zap.Error(err))
	}
	logger.Info("sliced mesh",
		zap.String("shape", shape),
		zap.String("keep", keep.String()),
		zap.Int("triangles_in", m.TriangleCount()),
		zap.Int("triangles_out", sliced.TriangleCount()),
		zap.String("attrs", sliced.Attrs().String()))

	if sliced.IsEmpty() {
		logger.Warn("nothing on the keep side of the plane")
		return
	}
	if err := mf.writeMesh(sliced, cfg.Export.ObjectName); err != nil {
		logger.Fatal("write failed", zap.Error(err))
	}
}

func cmdInfo(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	mf := registerMeshFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "info: missing primitive (cube or quad)")
		os.Exit(1)
	}
	shape := fs.Arg(0)

	m, err := mf.buildMesh(shape)
	if err != nil {
		logger.Fatal("info failed", zap.Error(err))
	}

	min, max := bounds(m)
	fmt.Printf("shape:      %s\n", shape)
	fmt.Printf("vertices:   %d\n", m.VertexCount())
	fmt.Printf("triangles:  %d\n", m.TriangleCount())
	fmt.Printf("attributes: %s (%d channels)\n", m.Attrs(), m.Attrs().Count())
	fmt.Printf("bounds min: (%g, %g, %g)\n", min.X, min.Y, min.Z)
	fmt.Printf("bounds max: (%g, %g, %g)\n", max.X, max.Y, max.Z)
}

// bounds returns the axis-aligned bounding box of the mesh positions.
func bounds(m *mesh.Mesh) (min, max math.Vec3) {
	if m.IsEmpty() {
		return
	}
	min = m.Positions[0]
	max = m.Positions[0]
	for _, p := range m.Positions[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return
}

// parseFloats splits a comma-separated list into exactly n float32 values.
func parseFloats(s string, n int) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float32, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", p, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}
