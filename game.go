package main

import (
	"context"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/hullview/tween"
	. "github.com/quasilyte/gmath"
)

const cameraTweenDuration = 600 * time.Millisecond

// Game implements ebiten.Game interface.
type Game struct {
	screenWidth  int
	screenHeight int

	epsilon float64

	now time.Time

	camera Camera
	tweens tween.Tweens
	drag   Drag

	renderer Renderer
	circles  CircleBatch

	loader Loader[Loaded]
	source Source
	model  *Model

	// silhouette of the hull in screen coordinates, updated every frame
	outline []Vec

	errorDialog *Dialog

	btnNewCloud  *Button
	btnResetView *Button

	showPoints  bool
	showOutline bool
	showHelp    bool
}

func NewGame(source Source, epsilon float64, screenWidth, screenHeight int) *Game {
	g := &Game{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		epsilon:      epsilon,
		now:          time.Now(),
		camera:       DefaultCamera(),
		btnNewCloud:  NewButton("New cloud", ButtonColors),
		btnResetView: NewButton("Reset view", ButtonColors),
		showHelp:     true,
	}

	g.Load(source)

	return g
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// the window is resizable, follow its size
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// Load reads the source and computes its hull in the background.
// The current model stays visible until the new one is ready.
func (g *Game) Load(source Source) {
	g.source = source

	epsilon := g.epsilon

	g.loader.Start("loading "+source.String(), func(yield func(string)) Loaded {
		return LoadModel(context.Background(), source, epsilon, yield)
	})
}

func (g *Game) Update() error {
	// calculate delta time for animations
	now := time.Now()
	dt := now.Sub(g.now)
	g.now = now

	g.tweens.Update(dt)

	if res := g.loader.Poll(); res != nil {
		g.loaded(*res)
	}

	if g.errorDialog != nil {
		_, clicked := Clicked()
		if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.errorDialog = nil
		}

		return nil
	}

	g.Input()

	g.outline = nil
	if g.model != nil {
		tr := g.transform()
		g.outline = Silhouette(g.model, &tr)
	}

	// show that the hull can be grabbed
	if PointInConvexHull(g.outline, CursorPosition()) {
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	return nil
}

func (g *Game) loaded(res Loaded) {
	if res.Err != nil {
		log.Printf("[err] %s", res.Err)

		g.errorDialog = &Dialog{
			Modal: true,
			Texts: []Text{
				{Text: "Could not compute the hull"},
				{Text: res.Err.Error(), Offset: Vec{Y: 8}},
				{Text: "Press Enter to continue", Offset: Vec{Y: 16}},
			},
		}

		return
	}

	model := res.Model
	log.Printf("[info] hull of %s: %d faces over %d of %d points in %s",
		model.Source, model.Stats.Faces, model.Stats.Vertices, model.Stats.Points, model.Stats.ComputeTime)

	g.model = model

	// zoom back out so the new hull is completely visible
	target := g.camera
	target.Fov = defaultFov
	target.Distance = DefaultCamera().Distance
	g.tweens.Add(g.camera.TweenTo(target, cameraTweenDuration))
}

func (g *Game) Input() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetView()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.showPoints = !g.showPoints
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.showOutline = !g.showOutline
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.loader.Busy() {
		g.Load(g.source.Next())
	}

	if files := ebiten.DroppedFiles(); files != nil {
		g.loadDropped(files)
	}

	cursor := CursorPosition()
	g.btnNewCloud.Hover(cursor)
	g.btnResetView.Hover(cursor)

	g.btnNewCloud.Disabled = g.loader.Busy()

	loc, clicked := Clicked()
	switch {
	case g.btnNewCloud.IsClicked(loc, clicked):
		g.drag.Cancel()
		g.Load(g.source.Next())

	case g.btnResetView.IsClicked(loc, clicked):
		g.drag.Cancel()
		g.resetView()
	}

	if delta, button, ok := g.drag.Update(); ok && !delta.IsZero() {
		// the user takes over, stop any running camera animation
		g.tweens.Clear()
		g.camera.Drag(delta, button)
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.camera.Zoom(wheelY)
	}
}

func (g *Game) resetView() {
	g.tweens.Clear()
	g.tweens.Add(g.camera.TweenTo(DefaultCamera(), cameraTweenDuration))
}

// loadDropped loads the first regular file that was dropped onto the window.
func (g *Game) loadDropped(files fs.FS) {
	var name string

	err := fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			name = path
			return fs.SkipAll
		}

		return nil
	})

	switch {
	case err != nil:
		log.Printf("[err] list dropped files: %s", err)

	case name == "":
		log.Printf("[info] no file in dropped files")

	default:
		g.Load(Source{FS: files, Name: name})
	}
}

func (g *Game) transform() Transform {
	screen := Vec{X: float64(g.screenWidth), Y: float64(g.screenHeight)}
	return NewTransform(&g.camera, g.model.Fit, screen)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	if g.model != nil {
		tr := g.transform()

		g.renderer.DrawMesh(screen, g.model.Mesh, &tr)

		if g.showPoints {
			DrawPoints(screen, g.model, &tr, &g.circles)
		}

		if g.showOutline {
			DrawOutline(screen, g.outline)
		}
	}

	g.drawHUD(screen)

	g.loader.Draw(screen)

	if g.errorDialog != nil {
		g.errorDialog.Draw(screen)
	}
}
