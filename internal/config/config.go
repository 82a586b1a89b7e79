package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultWidth           = 60
	DefaultHeight          = 30
	DefaultFrameIntervalMS = 30
	DefaultTimeStep        = 0.01
	DefaultCameraDistance  = 2.5
	DefaultMarkerGlyph     = "$"
	DefaultEdgeGlyph       = "#"

	DefaultRecordFrames = 120
	DefaultRecordFormat = FormatWebP
	DefaultRecordScale  = 1
)

// Record output formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Config holds all render and output settings.
//
// MarkerGlyph is overwritten by EdgeGlyph wherever an edge reaches the vertex,
// which on a whole cube is every vertex; it shows only for vertices whose
// neighbours all fail the depth guard.
type Config struct {
	// Frame
	Width          int     `json:"width" yaml:"width"`
	Height         int     `json:"height" yaml:"height"`
	CameraDistance float64 `json:"camera_distance" yaml:"camera_distance"`
	MarkerGlyph    string  `json:"marker_glyph" yaml:"marker_glyph"`
	EdgeGlyph      string  `json:"edge_glyph" yaml:"edge_glyph"`

	// Pacing
	FrameIntervalMS *int    `json:"frame_interval_ms" yaml:"frame_interval_ms"` // nil: default; 0: no pause
	TimeStep        float64 `json:"time_step" yaml:"time_step"`
	WrapTime        bool    `json:"wrap_time" yaml:"wrap_time"`

	Record Record `json:"record" yaml:"record"`
}

// Record holds settings for headless export of frames to image files.
type Record struct {
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Frames    int    `json:"frames" yaml:"frames"`
	Format    string `json:"format" yaml:"format"`
	Animated  bool   `json:"animated" yaml:"animated"`
	Scale     int    `json:"scale" yaml:"scale"`
	Workers   int    `json:"workers" yaml:"workers"`
}

// Load reads a JSON or YAML config file, picked by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.IntervalMS != nil {
		ms := *flags.IntervalMS
		c.FrameIntervalMS = &ms
	}
	if flags.TimeStep != 0 {
		c.TimeStep = flags.TimeStep
	}
	if flags.Wrap {
		c.WrapTime = true
	}
	if flags.RecordDir != "" {
		c.Record.OutputDir = flags.RecordDir
	}
	if flags.Frames > 0 {
		c.Record.Frames = flags.Frames
	}
	if flags.Format != "" {
		c.Record.Format = flags.Format
	}
	if flags.Animated {
		c.Record.Animated = true
	}
	if flags.Workers > 0 {
		c.Record.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.CameraDistance == 0 {
		c.CameraDistance = DefaultCameraDistance
	}
	if c.MarkerGlyph == "" {
		c.MarkerGlyph = DefaultMarkerGlyph
	}
	if c.EdgeGlyph == "" {
		c.EdgeGlyph = DefaultEdgeGlyph
	}
	if c.FrameIntervalMS == nil {
		ms := DefaultFrameIntervalMS
		c.FrameIntervalMS = &ms
	}
	if c.TimeStep == 0 {
		c.TimeStep = DefaultTimeStep
	}

	// Defaults for record settings
	if c.Record.Frames <= 0 {
		c.Record.Frames = DefaultRecordFrames
	}
	c.Record.Format = strings.ToLower(c.Record.Format)
	if c.Record.Format == "" {
		c.Record.Format = DefaultRecordFormat
	}
	if c.Record.Scale <= 0 {
		c.Record.Scale = DefaultRecordScale
	}
	if c.Record.Workers <= 0 {
		c.Record.Workers = runtime.NumCPU()
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.FrameIntervalMS != nil && *c.FrameIntervalMS < 0 {
		return fmt.Errorf("config: negative frame_interval_ms %d", *c.FrameIntervalMS)
	}
	if c.TimeStep == 0 {
		return fmt.Errorf("config: time_step must be non-zero")
	}
	if err := checkGlyph("marker_glyph", c.MarkerGlyph); err != nil {
		return err
	}
	if err := checkGlyph("edge_glyph", c.EdgeGlyph); err != nil {
		return err
	}
	if c.Record.Frames < 0 {
		return fmt.Errorf("config: negative record.frames %d", c.Record.Frames)
	}
	switch c.Record.Format {
	case FormatWebP, FormatTGA:
	default:
		return fmt.Errorf("config: unknown record.format %q", c.Record.Format)
	}
	return nil
}

// checkGlyph keeps every buffer row valid single-width text.
func checkGlyph(name, g string) error {
	if len(g) != 1 || g[0] < 0x21 || g[0] > 0x7e {
		return fmt.Errorf("config: %s must be one printable ASCII character, got %q", name, g)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width      int
	Height     int
	IntervalMS *int // set only when the flag was given, so 0 is expressible
	TimeStep   float64
	Wrap       bool

	RecordDir string
	Frames    int
	Format    string
	Animated  bool
	Workers   int
}

// Interval is the pause between frames. An unset interval reads as the
// default; an explicit 0 means no pause.
func (c *Config) Interval() time.Duration {
	if c.FrameIntervalMS == nil {
		return DefaultFrameIntervalMS * time.Millisecond
	}
	return time.Duration(*c.FrameIntervalMS) * time.Millisecond
}
