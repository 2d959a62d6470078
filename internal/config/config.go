package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
	"sphere-colormap/internal/sphere"
)

// Config holds the coloring scheme, paths and batch settings.
type Config struct {
	// Scheme
	Scheme     string      `json:"scheme"`
	Pole       *[3]float64 `json:"pole,omitempty"`
	Up         *[3]float64 `json:"up,omitempty"`
	Ordering   []int       `json:"ordering,omitempty"`
	Colormap   string      `json:"colormap,omitempty"`
	Asymmetric bool        `json:"asymmetric,omitempty"`

	// RotationDeg rotates about X, then Y, then Z (degrees) and replaces Pole.
	RotationDeg *[3]float64 `json:"rotation_deg,omitempty"`

	// Paths
	InputDir     string `json:"input_dir"`
	OutputDir    string `json:"output_dir"`
	OutputFormat string `json:"output_format"`

	// Lookup texture
	Bake Bake `json:"bake"`

	// Batch settings
	Workers   int `json:"workers"`
	ChunkSize int `json:"chunk_size"`
}

// Bake holds lookup-texture settings.
type Bake struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Pole, Up, Rotation and Ordering are comma-separated lists ("0,0.1,0.9",
// "2,0,1").
type Flags struct {
	Scheme     string
	Pole       string
	Up         string
	Rotation   string
	Ordering   string
	Colormap   string
	Asymmetric bool
	InputDir   string
	OutputDir  string
	Format     string
	Workers    int
}

// Resolve applies CLI overrides and fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.Scheme != "" {
		c.Scheme = flags.Scheme
	}
	if flags.Pole != "" {
		v, err := ParseVec3(flags.Pole)
		if err != nil {
			return errors.Wrap(err, "config: -pole")
		}
		c.Pole = &v
	}
	if flags.Up != "" {
		v, err := ParseVec3(flags.Up)
		if err != nil {
			return errors.Wrap(err, "config: -up")
		}
		c.Up = &v
	}
	if flags.Rotation != "" {
		v, err := ParseVec3(flags.Rotation)
		if err != nil {
			return errors.Wrap(err, "config: -rotate")
		}
		c.RotationDeg = &v
	}
	if flags.Ordering != "" {
		o, err := ParseInts(flags.Ordering)
		if err != nil {
			return errors.Wrap(err, "config: -ordering")
		}
		c.Ordering = o
	}
	if flags.Colormap != "" {
		c.Colormap = flags.Colormap
	}
	if flags.Asymmetric {
		c.Asymmetric = true
	}
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.OutputFormat = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Output next to the input unless told otherwise
	if c.OutputDir == "" && c.InputDir != "" {
		c.OutputDir = filepath.Join(c.InputDir, "colors")
	}

	if c.Scheme == "" {
		c.Scheme = "ico"
	}
	c.OutputFormat = strings.ToLower(strings.TrimPrefix(c.OutputFormat, "."))
	if c.OutputFormat == "" {
		c.OutputFormat = "csv"
	}
	if c.OutputFormat != "csv" && c.OutputFormat != "json" {
		return errors.Newf("config: output format %q (want csv or json)", c.OutputFormat)
	}

	// Defaults for bake settings
	if c.Bake.Width <= 0 {
		c.Bake.Width = 512
	}
	if c.Bake.Height <= 0 {
		c.Bake.Height = c.Bake.Width / 2
	}
	if c.Bake.Supersample <= 0 {
		c.Bake.Supersample = 2
	}
	if c.Bake.Format == "" {
		c.Bake.Format = "webp"
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = sphere.DefaultChunk
	}
	return nil
}

// Params converts the scheme settings into a sphere.Params, resolving the
// colormap name or gradient path through r.
func (c *Config) Params(r colormap.Resolver) (sphere.Params, error) {
	s := sphere.Params{
		Scheme:     c.Scheme,
		Asymmetric: c.Asymmetric,
		Options:    sphere.Options{Ordering: c.Ordering},
	}
	if c.Pole != nil {
		p := mathutil.Vec3(*c.Pole)
		s.Pole = &p
	}
	if c.Up != nil {
		u := mathutil.Vec3(*c.Up)
		s.Up = &u
	}
	if c.RotationDeg != nil {
		d := *c.RotationDeg
		R := mathutil.EulerDeg(d[0], d[1], d[2])
		s.Rotation = &R
	}
	if c.Colormap != "" {
		cm, err := r.Resolve(c.Colormap)
		if err != nil {
			return sphere.Params{}, errors.Wrap(err, "config")
		}
		s.Colormap = cm
	}
	return s, nil
}

// ParseVec3 parses "x,y,z".
func ParseVec3(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, errors.Newf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, errors.Wrapf(err, "component %d", i)
		}
		v[i] = x
	}
	return v, nil
}

// ParseInts parses a comma-separated list of integers.
func ParseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		out[i] = n
	}
	return out, nil
}
