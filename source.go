package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/oliverbestmann/hullview/hull"
	"github.com/oliverbestmann/hullview/pointcloud"
)

// Source describes where the points of a model come from.
type Source struct {
	// read from a file on disk
	Path string

	// read from a file system, e.g. files dropped onto the window
	FS   fs.FS
	Name string

	// generate points
	Kind  pointcloud.Kind
	Count int
	Seed  uint64
}

func (s Source) String() string {
	switch {
	case s.Path != "":
		return filepath.Base(s.Path)
	case s.FS != nil:
		return s.Name
	default:
		return fmt.Sprintf("%s, %d points, seed %d", s.Kind, s.Count, s.Seed)
	}
}

// Next returns the following generated source. File sources generate
// a sphere instead.
func (s Source) Next() Source {
	if s.Kind == "" {
		return Source{Kind: pointcloud.Sphere, Count: 500, Seed: 1}
	}

	s.Seed++
	return s
}

func (s Source) Points(ctx context.Context) ([]r3.Vector, error) {
	switch {
	case s.Path != "":
		return pointcloud.ReadFile(ctx, s.Path)
	case s.FS != nil:
		return pointcloud.ReadFS(ctx, s.FS, s.Name)
	default:
		return pointcloud.Generate(s.Kind, s.Count, s.Seed)
	}
}

// Model is a computed hull ready for display.
type Model struct {
	Source Source
	Hull   *hull.Hull
	Mesh   hull.Mesh

	// indices of the points that are corners of the hull
	Vertices Set[int]

	// moves the points into the unit sphere
	Fit mgl64.Mat4

	Stats Stats
}

// Loaded is the result of the background task loading a model.
type Loaded struct {
	Model *Model
	Err   error
}

// LoadModel reads the points and computes their hull, reporting progress to yield.
func LoadModel(ctx context.Context, source Source, epsilon float64, yield func(string)) Loaded {
	yield("reading " + source.String())

	startTime := time.Now()

	points, err := source.Points(ctx)
	if err != nil {
		return Loaded{Err: fmt.Errorf("load points from %s: %w", source, err)}
	}

	readTime := time.Since(startTime)

	var lastPercent = -1
	computer := hull.Computer{
		Epsilon: epsilon,
		Progress: func(done, total int) {
			if percent := done * 100 / total; percent != lastPercent {
				lastPercent = percent
				yield(fmt.Sprintf("computing hull: %d%%", percent))
			}
		},
	}

	computeStart := time.Now()

	h, err := computer.Compute(points)
	if err != nil {
		return Loaded{Err: fmt.Errorf("compute hull of %s: %w", source, err)}
	}

	model := &Model{
		Source:   source,
		Hull:     h,
		Mesh:     h.Mesh(),
		Vertices: SetOf(h.VertexIndices()...),
		Fit:      FitTransform(h.Points),
	}

	model.Stats = Stats{
		Points:      len(h.Points),
		Faces:       len(h.Faces),
		Vertices:    model.Vertices.Len(),
		Epsilon:     h.Epsilon,
		ReadTime:    readTime,
		ComputeTime: time.Since(computeStart),
	}

	return Loaded{Model: model}
}

// Export writes the hull mesh of the model to path. The format is
// chosen by the file extension.
func Export(model *Model, path string) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".obj" && ext != ".stl" {
		return fmt.Errorf("export %q: unsupported format %q, use .obj or .stl", path, ext)
	}

	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	defer func() {
		if closeErr := fp.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("export: %w", closeErr)
		}
	}()

	switch ext {
	case ".obj":
		return model.Mesh.WriteOBJ(fp)
	default:
		return model.Mesh.WriteSTL(fp, "convex hull of "+model.Source.String())
	}
}
