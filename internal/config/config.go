// Package config handles windmill configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// Position is a windmill center in clip space.
type Position struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// SceneConfig holds windmill placement and animation settings.
type SceneConfig struct {
	// Centers places one windmill per entry. The first windmill spins at
	// full speed; the rest are distant scenery.
	Centers []Position `yaml:"centers"`

	// DistantRate is the spin-rate multiplier for windmills after the first.
	DistantRate float32 `yaml:"distant_rate"`
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	// Texture is a path to an image mapped onto each vane. Empty means
	// flat-shaded vanes.
	Texture string `yaml:"texture"`

	// Borders toggles the wireframe outline over the front faces.
	Borders bool `yaml:"borders"`

	// ScreenshotDir is where captured frames are written.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1000,
			Height:     1000,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Centers:     []Position{{X: 0, Y: 0, Z: 0}},
			DistantRate: 0.5,
		},
		Render: RenderConfig{
			Texture:       "",
			Borders:       true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
