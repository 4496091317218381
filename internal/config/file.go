package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	ViewRadius int    `yaml:"view_radius"`
	FPSLimit   int    `yaml:"fps_limit"`
	Atlas      string `yaml:"atlas"`
	Stats      bool   `yaml:"stats"`
	Camera     struct {
		FOV         float32 `yaml:"fov"`
		Near        float32 `yaml:"near"`
		Far         float32 `yaml:"far"`
		MoveSpeed   float32 `yaml:"move_speed"`
		Sensitivity float32 `yaml:"sensitivity"`
	} `yaml:"camera"`
	Terrain struct {
		Seed      int64   `yaml:"seed"`
		MinHeight int     `yaml:"min_height"`
		MaxHeight int     `yaml:"max_height"`
		Scale     float64 `yaml:"scale"`
		Octaves   int     `yaml:"octaves"`
	} `yaml:"terrain"`
}

// Load reads a YAML settings file and applies it over the current values.
// The file is unmarshaled onto a snapshot of the current settings, so keys
// absent from the file keep their values, and present keys pass through the
// same clamping the setters apply.
func Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg := snapshot()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	apply(cfg)
	return nil
}

func snapshot() fileConfig {
	var cfg fileConfig
	cfg.Window.Width, cfg.Window.Height = GetWindowSize()
	cfg.Window.Title = GetWindowTitle()
	cfg.ViewRadius = GetViewRadius()
	cfg.FPSLimit = GetFPSLimit()
	cfg.Atlas = GetAtlasPath()
	cfg.Stats = GetStatsEnabled()
	cfg.Camera.FOV = GetFOV()
	cfg.Camera.Near, cfg.Camera.Far = GetClipPlanes()
	cfg.Camera.MoveSpeed = GetMoveSpeed()
	cfg.Camera.Sensitivity = GetMouseSensitivity()
	cfg.Terrain.Seed = GetSeed()
	cfg.Terrain.MinHeight, cfg.Terrain.MaxHeight = GetHeightRange()
	cfg.Terrain.Scale = GetNoiseScale()
	cfg.Terrain.Octaves = GetOctaves()
	return cfg
}

func apply(cfg fileConfig) {
	SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	SetWindowTitle(cfg.Window.Title)
	SetViewRadius(cfg.ViewRadius)
	SetFPSLimit(cfg.FPSLimit)
	SetAtlasPath(cfg.Atlas)
	SetStatsEnabled(cfg.Stats)
	SetFOV(cfg.Camera.FOV)
	SetClipPlanes(cfg.Camera.Near, cfg.Camera.Far)
	SetMoveSpeed(cfg.Camera.MoveSpeed)
	SetMouseSensitivity(cfg.Camera.Sensitivity)
	SetSeed(cfg.Terrain.Seed)
	SetHeightRange(cfg.Terrain.MinHeight, cfg.Terrain.MaxHeight)
	SetNoiseScale(cfg.Terrain.Scale)
	SetOctaves(cfg.Terrain.Octaves)
}
