// Package config loads the capture pipeline configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"

	yml "gopkg.in/yaml.v2"
)

// DefaultFileName is looked for in the working directory.
const DefaultFileName = "spherecap.yml"

// Config holds the pose grid and the empirical device timing knobs. The
// timings are defaults measured on the commissioning rig, not protocol
// requirements.
type Config struct {
	Tilts       []int         `koanf:"tilts" yaml:"tilts"`
	Yaws        []int         `koanf:"yaws" yaml:"yaws"`
	CaptureDir  string        `koanf:"capture_dir" yaml:"capture_dir"`
	Output      string        `koanf:"output" yaml:"output"`
	SettleDelay time.Duration `koanf:"settle_delay" yaml:"settle_delay"`
	FrameWait   time.Duration `koanf:"frame_wait" yaml:"frame_wait"`
	ProbeRange  int           `koanf:"probe_range" yaml:"probe_range"`
	ScaleCmPx   float64       `koanf:"scale_cm_px" yaml:"scale_cm_px"`
}

// Defaults mirrors the rig's commissioning setup: three tilt bands swept in
// 30° steps, half a second of settle time between captures.
func Defaults() Config {
	return Config{
		Tilts:       []int{-30, 0, 30},
		Yaws:        []int{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330},
		CaptureDir:  "rov_photosphere",
		Output:      "stitched.jpg",
		SettleDelay: 500 * time.Millisecond,
		FrameWait:   time.Second,
		ProbeRange:  4,
		ScaleCmPx:   0.05,
	}
}

// Load reads the config file over the defaults. A missing file is fine;
// the defaults simply stand.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return Config{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !strings.Contains(err.Error(), "no such") {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML, e.g. to seed a file the operator can
// then edit.
func Save(cfg Config, path string) error {
	data, err := yml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
