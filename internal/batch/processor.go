package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cubespin/internal/config"
	"cubespin/internal/driver"
	"cubespin/internal/postprocess"
	"cubespin/internal/raster"
	"cubespin/internal/scene"
	"cubespin/internal/viewmatrix"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/schollz/progressbar/v3"
)

// AnimationFile is the name of the animated WebP written next to the frames.
const AnimationFile = "cube.webp"

// Config holds all settings for a record run.
type Config struct {
	OutputDir string
	Frames    int
	Format    string // config.FormatWebP or config.FormatTGA
	Animated  bool
	Scale     int
	Workers   int

	Width, Height int
	Distance      float64
	TimeStep      float64
	Wrap          bool
	Interval      time.Duration
	Glyphs        raster.Glyphs
	Style         postprocess.Style

	// Progress receives a progress bar when non-nil.
	Progress io.Writer
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Time    float64
	Image   string // path relative to OutputDir
	Skipped int    // vertices dropped by the depth guard
	Success bool
	Error   string
}

// Record renders cfg.Frames frames headlessly with a worker pool. Frame i is
// rendered at the same time value the live loop would use for its i-th frame.
// Per-frame failures are reported in the results; the error covers setup and
// the animation file.
func Record(cfg Config) ([]Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create %s: %w", cfg.OutputDir, err)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	clock := &driver.StepClock{Step: cfg.TimeStep, Wrap: cfg.Wrap}
	times := make([]float64, cfg.Frames)
	for i := range times {
		times[i] = clock.Tick()
	}

	results := make([]Result, cfg.Frames)
	var images []image.Image
	if cfg.Animated {
		images = make([]image.Image, cfg.Frames)
	}

	bar := newProgress(cfg.Progress, cfg.Frames)

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
			vp := viewmatrix.NewViewport(cfg.Width, cfg.Height)
			for idx := range frameChan {
				var img *image.NRGBA
				results[idx], img = processFrame(cfg, fb, vp, idx, times[idx])
				if images != nil {
					images[idx] = img
				}
				if bar != nil {
					bar.Add(1)
				}
			}
		}()
	}

	// Send work
	for i := range times {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	if bar != nil {
		bar.Finish()
	}

	if cfg.Animated {
		if err := writeAnimation(filepath.Join(cfg.OutputDir, AnimationFile), images, cfg.Interval); err != nil {
			return results, err
		}
	}
	return results, nil
}

func newProgress(w io.Writer, n int) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("rendering frames"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// processFrame renders one frame and writes it to disk. The image is returned
// even if the write fails so the animation stays complete.
func processFrame(cfg Config, fb *raster.FrameBuffer, vp viewmatrix.Viewport, idx int, t float64) (Result, *image.NRGBA) {
	fb.Clear()
	f := raster.RenderFrame(fb, scene.UnitCube(), scene.FrameMatrix(t, cfg.Distance), vp, cfg.Glyphs)
	img := postprocess.Upscale(postprocess.RenderGlyphs(fb, cfg.Style), cfg.Scale)

	name := fmt.Sprintf("frame_%04d.%s", idx, cfg.Format)
	res := Result{Index: idx, Time: t, Image: name, Skipped: f.Skipped}

	if err := writeImage(filepath.Join(cfg.OutputDir, name), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res, img
	}
	res.Success = true
	return res, img
}

func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case config.FormatTGA:
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	}
	return f.Close()
}

func writeAnimation(path string, images []image.Image, interval time.Duration) error {
	ms := uint(interval / time.Millisecond)
	if ms == 0 {
		ms = 1
	}
	ani := &nativewebp.Animation{
		Images:    images,
		Durations: make([]uint, len(images)),
		Disposals: make([]uint, len(images)),
	}
	for i := range ani.Durations {
		ani.Durations[i] = ms
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		return fmt.Errorf("batch: encode animation: %w", err)
	}
	return f.Close()
}
