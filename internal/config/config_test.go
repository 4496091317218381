package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Runs first: later tests mutate the package-level settings.
func TestDefaults(t *testing.T) {
	if w, h := GetWindowSize(); w != 1280 || h != 720 {
		t.Errorf("Expected window 1280x720, got %dx%d", w, h)
	}
	if got := GetWindowTitle(); got != "voxview" {
		t.Errorf("Expected title voxview, got %q", got)
	}
	if got := GetFPSLimit(); got != 120 {
		t.Errorf("Expected FPS limit 120, got %d", got)
	}
	if got := GetSurfaceRetryBudget(); got != 120 {
		t.Errorf("Expected retry budget 120, got %d", got)
	}
	if GetStatsEnabled() {
		t.Errorf("Expected stats disabled by default")
	}
	if got := GetViewRadius(); got != 3 {
		t.Errorf("Expected view radius 3, got %d", got)
	}
	if got := GetAtlasPath(); got != "assets/atlas.png" {
		t.Errorf("Expected default atlas path, got %q", got)
	}
	if got := GetFOV(); got != 45 {
		t.Errorf("Expected FOV 45, got %f", got)
	}
	if near, far := GetClipPlanes(); near != 0.1 || far != 100 {
		t.Errorf("Expected clip planes 0.1/100, got %f/%f", near, far)
	}
	if got := GetMoveSpeed(); got != 5.0 {
		t.Errorf("Expected move speed 5, got %f", got)
	}
	if got := GetMouseSensitivity(); got != 0.002 {
		t.Errorf("Expected sensitivity 0.002, got %f", got)
	}
	if got := GetSeed(); got != 42 {
		t.Errorf("Expected seed 42, got %d", got)
	}
	if min, max := GetHeightRange(); min != 1 || max != 12 {
		t.Errorf("Expected height range 1..12, got %d..%d", min, max)
	}
	if got := GetNoiseScale(); got != 1.0/24.0 {
		t.Errorf("Expected noise scale 1/24, got %f", got)
	}
	if got := GetOctaves(); got != 3 {
		t.Errorf("Expected 3 octaves, got %d", got)
	}
}

func TestSettersClamp(t *testing.T) {
	SetViewRadius(0)
	if got := GetViewRadius(); got != 1 {
		t.Errorf("Expected radius clamped to 1, got %d", got)
	}
	SetViewRadius(99)
	if got := GetViewRadius(); got != 8 {
		t.Errorf("Expected radius clamped to 8, got %d", got)
	}

	SetFOV(10)
	if got := GetFOV(); got != 30 {
		t.Errorf("Expected FOV clamped to 30, got %f", got)
	}
	SetFOV(200)
	if got := GetFOV(); got != 110 {
		t.Errorf("Expected FOV clamped to 110, got %f", got)
	}

	SetWindowSize(10, 10)
	if w, h := GetWindowSize(); w != 320 || h != 240 {
		t.Errorf("Expected window clamped to 320x240, got %dx%d", w, h)
	}

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("Expected FPS limit clamped to 0, got %d", got)
	}

	SetSurfaceRetryBudget(0)
	if got := GetSurfaceRetryBudget(); got != 1 {
		t.Errorf("Expected retry budget clamped to 1, got %d", got)
	}

	SetClipPlanes(0, 0)
	near, far := GetClipPlanes()
	if near != 0.01 {
		t.Errorf("Expected near clamped to 0.01, got %f", near)
	}
	if far <= near {
		t.Errorf("Expected far beyond near, got %f/%f", near, far)
	}

	SetHeightRange(5, 2)
	if min, max := GetHeightRange(); min != 5 || max != 6 {
		t.Errorf("Expected height range 5..6, got %d..%d", min, max)
	}

	SetOctaves(0)
	if got := GetOctaves(); got != 1 {
		t.Errorf("Expected octaves clamped to 1, got %d", got)
	}

	SetMoveSpeed(3)
	SetMoveSpeed(-1)
	if got := GetMoveSpeed(); got != 3 {
		t.Errorf("Expected negative speed ignored, got %f", got)
	}

	SetMouseSensitivity(0.01)
	SetMouseSensitivity(0)
	if got := GetMouseSensitivity(); got != 0.01 {
		t.Errorf("Expected zero sensitivity ignored, got %f", got)
	}

	SetWindowTitle("kept")
	SetWindowTitle("")
	if got := GetWindowTitle(); got != "kept" {
		t.Errorf("Expected empty title ignored, got %q", got)
	}
}

func TestLoadAppliesFile(t *testing.T) {
	yml := `
window:
  width: 800
  height: 600
  title: custom
view_radius: 5
fps_limit: 60
atlas: textures/blocks.png
stats: true
camera:
  fov: 70
  near: 0.5
  far: 200
  move_speed: 10
  sensitivity: 0.004
terrain:
  seed: 7
  min_height: 2
  max_height: 9
  scale: 0.05
  octaves: 4
`
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if w, h := GetWindowSize(); w != 800 || h != 600 {
		t.Errorf("Expected window 800x600, got %dx%d", w, h)
	}
	if got := GetWindowTitle(); got != "custom" {
		t.Errorf("Expected title custom, got %q", got)
	}
	if got := GetViewRadius(); got != 5 {
		t.Errorf("Expected view radius 5, got %d", got)
	}
	if got := GetFPSLimit(); got != 60 {
		t.Errorf("Expected FPS limit 60, got %d", got)
	}
	if got := GetAtlasPath(); got != "textures/blocks.png" {
		t.Errorf("Expected atlas path from file, got %q", got)
	}
	if !GetStatsEnabled() {
		t.Errorf("Expected stats enabled")
	}
	if got := GetFOV(); got != 70 {
		t.Errorf("Expected FOV 70, got %f", got)
	}
	if near, far := GetClipPlanes(); near != 0.5 || far != 200 {
		t.Errorf("Expected clip planes 0.5/200, got %f/%f", near, far)
	}
	if got := GetMoveSpeed(); got != 10 {
		t.Errorf("Expected move speed 10, got %f", got)
	}
	if got := GetMouseSensitivity(); got != 0.004 {
		t.Errorf("Expected sensitivity 0.004, got %f", got)
	}
	if got := GetSeed(); got != 7 {
		t.Errorf("Expected seed 7, got %d", got)
	}
	if min, max := GetHeightRange(); min != 2 || max != 9 {
		t.Errorf("Expected height range 2..9, got %d..%d", min, max)
	}
	if got := GetNoiseScale(); got != 0.05 {
		t.Errorf("Expected noise scale 0.05, got %f", got)
	}
	if got := GetOctaves(); got != 4 {
		t.Errorf("Expected 4 octaves, got %d", got)
	}
}

func TestLoadKeepsAbsentKeys(t *testing.T) {
	SetFOV(60)
	SetSeed(1234)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("view_radius: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := GetViewRadius(); got != 4 {
		t.Errorf("Expected view radius 4, got %d", got)
	}
	if got := GetFOV(); got != 60 {
		t.Errorf("Expected FOV untouched at 60, got %f", got)
	}
	if got := GetSeed(); got != 1234 {
		t.Errorf("Expected seed untouched at 1234, got %d", got)
	}
}

func TestLoadClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	yml := "view_radius: 50\ncamera:\n  fov: 5\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := GetViewRadius(); got != 8 {
		t.Errorf("Expected view radius clamped to 8, got %d", got)
	}
	if got := GetFOV(); got != 30 {
		t.Errorf("Expected FOV clamped to 30, got %f", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\n :::"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Load(path)
	if err == nil {
		t.Fatalf("Expected an error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "settings.yaml") {
		t.Errorf("Expected error to name the file, got %v", err)
	}
}
