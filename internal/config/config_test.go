package config

import (
	"os"
	"path/filepath"
	"testing"

	"voxelmesh/internal/meshing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capacity != meshing.DefaultCapacity {
		t.Errorf("capacity = %d, want %d", cfg.Capacity, meshing.DefaultCapacity)
	}
	if cfg.Workers != 0 {
		t.Errorf("workers = %d, want 0", cfg.Workers)
	}
	if cfg.Terrain.Octaves != 3 {
		t.Errorf("octaves = %d, want 3", cfg.Terrain.Octaves)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
workers: 4
capacity: 1000
seed: 99
terrain:
  octaves: 5
  amplitude: 12
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Workers)
	}
	if cfg.Capacity != 1000 {
		t.Errorf("capacity = %d, want 1000", cfg.Capacity)
	}
	if cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Seed)
	}
	if cfg.Terrain.Octaves != 5 {
		t.Errorf("octaves = %d, want 5", cfg.Terrain.Octaves)
	}
	// Fields the file omits keep their defaults.
	if cfg.QueueSize != 64 {
		t.Errorf("queue_size = %d, want 64", cfg.QueueSize)
	}
	if cfg.Terrain.Scale != 48 {
		t.Errorf("terrain scale = %v, want 48", cfg.Terrain.Scale)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"negative workers", func(s *Settings) { s.Workers = -1 }},
		{"zero capacity", func(s *Settings) { s.Capacity = 0 }},
		{"zero queue", func(s *Settings) { s.QueueSize = 0 }},
		{"zero octaves", func(s *Settings) { s.Terrain.Octaves = 0 }},
		{"zero scale", func(s *Settings) { s.Terrain.Scale = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaults()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
	cfg := defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workers: [not an int"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
