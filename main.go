package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/hullview/hull"
	"github.com/oliverbestmann/hullview/pointcloud"
)

type Config struct {
	Points   string
	Generate string
	Count    int
	Seed     uint64
	Epsilon  float64
	Export   string
	Profile  bool

	Width  int
	Height int
}

func parseConfig(args []string) (Config, error) {
	var config Config

	flags := flag.NewFlagSet("hullview", flag.ContinueOnError)
	flags.StringVar(&config.Points, "points", "", "text file with one point per line")
	flags.StringVar(&config.Generate, "generate", string(pointcloud.Sphere), "generate points if no file is given: "+kindNames())
	flags.IntVar(&config.Count, "n", 500, "number of points to generate")
	flags.Uint64Var(&config.Seed, "seed", 1, "seed for generated points")
	flags.Float64Var(&config.Epsilon, "epsilon", hull.Epsilon, "tolerance of the degeneracy and visibility tests")
	flags.StringVar(&config.Export, "export", "", "write the hull to an .obj or .stl file and exit")
	flags.BoolVar(&config.Profile, "profile", false, "write a cpu profile")
	flags.IntVar(&config.Width, "width", 1280, "window width")
	flags.IntVar(&config.Height, "height", 800, "window height")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if config.Epsilon <= 0 {
		return Config{}, fmt.Errorf("epsilon must be positive, got %g", config.Epsilon)
	}

	return config, nil
}

func (c Config) Source() Source {
	if c.Points != "" {
		return Source{Path: c.Points}
	}

	return Source{Kind: pointcloud.Kind(c.Generate), Count: c.Count, Seed: c.Seed}
}

func kindNames() string {
	var names []string
	for _, kind := range pointcloud.Kinds() {
		names = append(names, string(kind))
	}

	return strings.Join(names, ", ")
}

func main() {
	config, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		log.Fatalf("[err] %s", err)
	}

	if err := run(config); err != nil {
		log.Fatalf("[err] %s", err)
	}
}

func run(config Config) error {
	if config.Profile {
		defer ProfileStart()()
	}

	if config.Export != "" {
		return exportHeadless(config)
	}

	game := NewGame(config.Source(), config.Epsilon, config.Width, config.Height)

	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowTitle("Convex Hull")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Call ebiten.RunGame to start your game loop.
	return ebiten.RunGame(game)
}

// exportHeadless computes the hull without opening a window.
func exportHeadless(config Config) error {
	loaded := LoadModel(context.Background(), config.Source(), config.Epsilon, func(status string) {
		// only log every tenth percent
		if !strings.HasPrefix(status, "computing") || strings.HasSuffix(status, "0%") {
			log.Printf("[info] %s", status)
		}
	})

	if loaded.Err != nil {
		return loaded.Err
	}

	model := loaded.Model

	if err := model.Hull.Check(); err != nil {
		log.Printf("[err] hull failed validation: %s", err)
	}

	for _, line := range model.Stats.Lines() {
		log.Printf("[info] %s", line)
	}

	if err := Export(model, config.Export); err != nil {
		return err
	}

	log.Printf("[info] wrote %d triangles to %s", model.Mesh.TriangleCount(), config.Export)
	return nil
}
