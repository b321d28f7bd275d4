package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"voxelmesh/internal/meshing"
)

// Settings drives the meshing CLI and batch orchestration.
type Settings struct {
	// Workers meshing in parallel; 0 means one per core.
	Workers int `yaml:"workers"`
	// Capacity is the per-chunk packed-record budget.
	Capacity  int `yaml:"capacity"`
	QueueSize int `yaml:"queue_size"`

	DBPath      string `yaml:"db_path"`
	SnapshotDir string `yaml:"snapshot_dir"`

	Seed    int64           `yaml:"seed"`
	Terrain TerrainSettings `yaml:"terrain"`
}

// TerrainSettings tunes the Perlin heightmap generator.
type TerrainSettings struct {
	Alpha      float64 `yaml:"alpha"`
	Beta       float64 `yaml:"beta"`
	Octaves    int32   `yaml:"octaves"`
	Scale      float64 `yaml:"scale"`
	Amplitude  float64 `yaml:"amplitude"`
	BaseHeight int     `yaml:"base_height"`
}

func defaults() Settings {
	return Settings{
		Workers:   0,
		Capacity:  meshing.DefaultCapacity,
		QueueSize: 64,
		Seed:      1,
		Terrain: TerrainSettings{
			Alpha:      2,
			Beta:       2,
			Octaves:    3,
			Scale:      48,
			Amplitude:  10,
			BaseHeight: 16,
		},
	}
}

// Load reads settings from a YAML file. An empty path returns defaults.
func Load(path string) (Settings, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the mesher cannot honor.
func (s *Settings) Validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", s.Workers)
	}
	if s.Capacity < 1 {
		return fmt.Errorf("config: capacity must be >= 1, got %d", s.Capacity)
	}
	if s.QueueSize < 1 {
		return fmt.Errorf("config: queue_size must be >= 1, got %d", s.QueueSize)
	}
	if s.Terrain.Octaves < 1 {
		return fmt.Errorf("config: terrain octaves must be >= 1, got %d", s.Terrain.Octaves)
	}
	if s.Terrain.Scale <= 0 {
		return fmt.Errorf("config: terrain scale must be > 0, got %v", s.Terrain.Scale)
	}
	return nil
}
