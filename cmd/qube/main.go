// qube - Rubik's cube terminal screensaver
// Renders a continuously rotating cube as colored ASCII art, repainting
// only the cells that changed between frames.
//
// Ctrl+C quits; the terminal is restored on exit. Resizing the terminal
// rescales the cube.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	"golang.org/x/term"

	"github.com/taigrr/qube/pkg/math3d"
	"github.com/taigrr/qube/pkg/render"
	qterm "github.com/taigrr/qube/pkg/term"
)

var (
	targetFPS = flag.Int("fps", 60, "Target frame rate (0 = unthrottled)")
	debug     = flag.Bool("debug", false, "Print render diagnostics on exit")
)

// Per-frame angle deltas for the three rotation axes.
const (
	deltaA = 0.03
	deltaB = 0.02
	deltaC = 0.01
)

// SpinAxis accumulates one rotation angle. Its angular rate eases from
// rest up to the steady per-frame delta with a critically damped spring,
// so the cube spins up smoothly instead of starting with a jerk.
type SpinAxis struct {
	Angle  float64
	rate   float64
	vel    float64 // internal spring velocity
	target float64
	spring harmonica.Spring
}

// NewSpinAxis creates an axis starting at the given angle, converging on
// delta radians per frame.
func NewSpinAxis(start, delta float64, fps int) SpinAxis {
	if fps <= 0 {
		fps = 60
	}
	return SpinAxis{
		Angle:  start,
		target: delta,
		// Frequency 4.0, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the rate toward its target and applies it to the angle.
func (a *SpinAxis) Update() {
	a.rate, a.vel = a.spring.Update(a.rate, a.vel, a.target)
	a.Angle += a.rate
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "qube - Rubik's cube terminal screensaver\n\n")
		fmt.Fprintf(os.Stderr, "Usage: qube [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	width, height, err := qterm.WindowSize()
	if err != nil {
		return fmt.Errorf("window size: %w", err)
	}

	scr := qterm.NewScreen(os.Stdout)
	scr.EnterAltScreen()
	scr.EraseScreen()
	scr.HideCursor()
	if err := scr.Flush(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	cleanup := func() {
		scr.EraseScreen()
		scr.ExitAltScreen()
		scr.ResetStyle()
		scr.ShowCursor()
		scr.Flush()
	}

	lightDir := math3d.V3(0, 1, -1).Normalize()
	comp := render.NewCompositor(scr, width, height, lightDir)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	resize := qterm.WatchResize()
	defer resize.Stop()

	// Initial pose of the reference screensaver.
	axisA := NewSpinAxis(-math.Pi/2, deltaA, *targetFPS)
	axisB := NewSpinAxis(-math.Pi/2, deltaB, *targetFPS)
	axisC := NewSpinAxis(math.Pi/2+math.Pi/4, deltaC, *targetFPS)

	pacer := render.NewPacer(*targetFPS)
	var renderTime time.Duration

	for {
		// Resize and shutdown are applied only here, at the frame
		// boundary, so the buffers are never torn mid-render.
		select {
		case <-ctx.Done():
			cleanup()
			if *debug {
				printDiagnostics(comp, renderTime)
			}
			return nil
		case ev := <-resize.Events():
			width, height = ev.Width, ev.Height
			comp.Resize(width, height)
			scr.EraseScreen()
		default:
		}

		axisA.Update()
		axisB.Update()
		axisC.Update()
		rot := math3d.NewRotation(axisA.Angle, axisB.Angle, axisC.Angle)

		start := time.Now()
		if err := comp.RenderFrame(rot); err != nil {
			cleanup()
			return fmt.Errorf("render: %w", err)
		}
		renderTime += time.Since(start)

		pacer.Wait()
	}
}

// printDiagnostics writes the exit summary to stderr: configured geometry
// constants plus frame statistics.
func printDiagnostics(comp *render.Compositor, renderTime time.Duration) {
	width, height := comp.Viewport()
	fmt.Fprintf(os.Stderr, "Width: %d | Height: %d | Buffer Size: %d\n", width, height, width*height)
	fmt.Fprintf(os.Stderr, "K1: %.3f | K2: %.1f | Spacing: %.4f | Grid Tolerance: %.2f\n",
		comp.Scale(), render.K2, comp.Spacing(), render.GridTolerance)

	frames := comp.Frames()
	if frames == 0 {
		fmt.Fprintf(os.Stderr, "Frames: 0\n")
		return
	}
	avg := renderTime / time.Duration(frames)
	fps := 0.0
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}
	fmt.Fprintf(os.Stderr, "Frames: %d | Frame Average: %s | Average FPS: %.1f\n", frames, avg, fps)
}
