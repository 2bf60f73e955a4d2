package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Render width in pixels")
	flagHeight     = flag.Int("height", 0, "Render height in pixels")
	flagColorMap   = flag.String("color-map", "", "Path to the terrain color map")
	flagHeightMap  = flag.String("height-map", "", "Path to the terrain height map")
	flagFarClip    = flag.Float64("far-clip", 0, "Maximum ray-march distance")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagColorMap != "" {
		cfg.Terrain.ColorMap = *flagColorMap
	}
	if *flagHeightMap != "" {
		cfg.Terrain.HeightMap = *flagHeightMap
	}
	if *flagFarClip > 0 {
		cfg.Camera.FarClip = float32(*flagFarClip)
	}
}
