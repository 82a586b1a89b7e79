package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cubespin/internal/raster"
	"cubespin/internal/scene"
	"cubespin/internal/viewmatrix"
)

// Output receives one finished frame per tick. The buffer is only valid for
// the duration of the call.
type Output interface {
	WriteFrame(fb *raster.FrameBuffer) error
}

// Config holds the per-run constants of the frame loop.
type Config struct {
	Width, Height int
	Interval      time.Duration
	Distance      float64
	Glyphs        raster.Glyphs
	MaxFrames     int // 0 runs until ctx is cancelled
}

// Driver owns the frame buffer and runs transform → project → rasterize →
// emit → sleep, one frame at a time on the calling goroutine.
type Driver struct {
	cfg     Config
	clock   Clock
	sleeper Sleeper
	out     Output
	log     *slog.Logger

	cube scene.Cube
	vp   viewmatrix.Viewport
	fb   *raster.FrameBuffer

	frames int
}

// New wires a driver. A nil logger falls back to slog.Default().
func New(cfg Config, clock Clock, sleeper Sleeper, out Output, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		cfg:     cfg,
		clock:   clock,
		sleeper: sleeper,
		out:     out,
		log:     log,
		cube:    scene.UnitCube(),
		vp:      viewmatrix.NewViewport(cfg.Width, cfg.Height),
		fb:      raster.NewFrameBuffer(cfg.Width, cfg.Height),
	}
}

// Frames returns how many frames have been emitted.
func (d *Driver) Frames() int { return d.frames }

// Step renders the next frame into the driver's buffer and returns it with
// the time it was rendered at. It does not emit or sleep.
func (d *Driver) Step() (*raster.FrameBuffer, float64) {
	d.fb.Clear()
	t := d.clock.Tick()
	f := raster.RenderFrame(d.fb, d.cube, scene.FrameMatrix(t, d.cfg.Distance), d.vp, d.cfg.Glyphs)
	if f.Skipped > 0 {
		d.log.Debug("degenerate projection", "time", t, "skipped", f.Skipped)
	}
	return d.fb, t
}

// Run loops until ctx is cancelled, MaxFrames is reached, or the output
// fails. Cancellation is not an error.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info("animation started",
		"width", d.cfg.Width, "height", d.cfg.Height,
		"interval", d.cfg.Interval, "max_frames", d.cfg.MaxFrames)

	for {
		if err := ctx.Err(); err != nil {
			return d.stopped(err)
		}

		fb, _ := d.Step()
		if err := d.out.WriteFrame(fb); err != nil {
			return fmt.Errorf("driver: write frame %d: %w", d.frames, err)
		}
		d.frames++

		if d.cfg.MaxFrames > 0 && d.frames >= d.cfg.MaxFrames {
			return d.stopped(nil)
		}
		if err := d.sleeper.Sleep(ctx, d.cfg.Interval); err != nil {
			return d.stopped(err)
		}
	}
}

func (d *Driver) stopped(err error) error {
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("driver: sleep: %w", err)
	}
	d.log.Info("animation stopped", "frames", d.frames)
	return nil
}
