package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cubespin/internal/batch"
	"cubespin/internal/config"
	"cubespin/internal/driver"
	"cubespin/internal/postprocess"
	"cubespin/internal/raster"
	"cubespin/internal/term"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a JSON or YAML config file")
	width := flag.Int("width", 0, "Frame width in columns (default: 60)")
	height := flag.Int("height", 0, "Frame height in rows (default: 30)")
	interval := flag.Int("interval", 0, "Milliseconds between frames, 0 for no pause (default: 30)")
	step := flag.Float64("step", 0, "Rotation per frame in radians (default: 0.01)")
	wrap := flag.Bool("wrap", false, "Wrap the time counter to [0, 2π)")
	frames := flag.Int("frames", 0, "Stop after N frames (live: default forever, record: default 120)")
	record := flag.String("record", "", "Render frames to image files in this directory instead of the terminal")
	format := flag.String("format", "", "Record image format: webp or tga (default: webp)")
	animated := flag.Bool("animated", false, "Also write an animated cube.webp when recording")
	workers := flag.Int("workers", 0, "Record worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	flags := config.Flags{
		Width:     *width,
		Height:    *height,
		TimeStep:  *step,
		Wrap:      *wrap,
		RecordDir: *record,
		Frames:    *frames,
		Format:    *format,
		Animated:  *animated,
		Workers:   *workers,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "interval" {
			flags.IntervalMS = interval
		}
	})
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	glyphs := raster.Glyphs{Marker: cfg.MarkerGlyph[0], Edge: cfg.EdgeGlyph[0]}

	if cfg.Record.OutputDir != "" {
		os.Exit(runRecord(cfg, glyphs, log))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := runLive(ctx, cfg, glyphs, *frames, log)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runLive(ctx context.Context, cfg config.Config, glyphs raster.Glyphs, maxFrames int, log *slog.Logger) error {
	out := term.New(os.Stdout, log)
	if err := out.Start(cfg.Width, cfg.Height); err != nil {
		return err
	}

	d := driver.New(driver.Config{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Interval:  cfg.Interval(),
		Distance:  cfg.CameraDistance,
		Glyphs:    glyphs,
		MaxFrames: maxFrames,
	}, &driver.StepClock{Step: cfg.TimeStep, Wrap: cfg.WrapTime}, driver.TimerSleeper{}, out, log)

	runErr := d.Run(ctx)
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func runRecord(cfg config.Config, glyphs raster.Glyphs, log *slog.Logger) int {
	rc := cfg.Record
	log.Info("recording",
		"frames", rc.Frames, "format", rc.Format, "animated", rc.Animated,
		"workers", rc.Workers, "output", rc.OutputDir)

	start := time.Now()

	results, err := batch.Record(batch.Config{
		OutputDir: rc.OutputDir,
		Frames:    rc.Frames,
		Format:    rc.Format,
		Animated:  rc.Animated,
		Scale:     rc.Scale,
		Workers:   rc.Workers,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Distance:  cfg.CameraDistance,
		TimeStep:  cfg.TimeStep,
		Wrap:      cfg.WrapTime,
		Interval:  cfg.Interval(),
		Glyphs:    glyphs,
		Style:     postprocess.DefaultStyle,
		Progress:  os.Stderr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Count results
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			if failed <= 20 {
				log.Error("frame failed", "index", r.Index, "error", r.Error)
			}
		}
	}
	log.Info("recording done",
		"rendered", len(results)-failed, "total", len(results),
		"elapsed", time.Since(start).Round(time.Millisecond))

	// Write manifest
	manifestPath := filepath.Join(rc.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		log.Warn("manifest write failed", "error", err)
	} else {
		log.Info("manifest written", "path", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
