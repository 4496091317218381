package main

import (
	"flag"
	"log"
	"runtime"

	"voxview/internal/config"
	"voxview/internal/game"
	"voxview/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file")
		radius     = flag.Int("radius", config.GetViewRadius(), "chunk view radius")
		seed       = flag.Int64("seed", config.GetSeed(), "terrain seed")
		atlasPath  = flag.String("atlas", config.GetAtlasPath(), "texture atlas image, empty for the generated placeholder")
		fpsLimit   = flag.Int("fps", config.GetFPSLimit(), "FPS cap, 0 for uncapped")
		stats      = flag.Bool("stats", config.GetStatsEnabled(), "log per-frame timing stats")
	)
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	// Flags given on the command line win over the settings file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radius":
			config.SetViewRadius(*radius)
		case "seed":
			config.SetSeed(*seed)
		case "atlas":
			config.SetAtlasPath(*atlasPath)
		case "fps":
			config.SetFPSLimit(*fpsLimit)
		case "stats":
			config.SetStatsEnabled(*stats)
		}
	})

	if err := glfw.Init(); err != nil {
		log.Fatalf("initializing GLFW: %v", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow()
	if err != nil {
		log.Fatalf("creating window: %v", err)
	}

	app, err := game.NewApp(window, input.NewInputManager())
	if err != nil {
		log.Fatalf("starting: %v", err)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		log.Fatalf("frame loop: %v", err)
	}
}
