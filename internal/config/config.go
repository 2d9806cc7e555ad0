// Package config handles scene configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Render     RenderConfig     `yaml:"render"`
	Camera     CameraConfig     `yaml:"camera"`
	Scene      SceneConfig      `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Background [3]float32 `yaml:"background"`
}

// RenderConfig holds projection and mesh settings.
type RenderConfig struct {
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	// SlopeNormals switches terrain meshes from up normals to smoothed
	// slope normals.
	SlopeNormals bool `yaml:"slope_normals"`
	ShowFPS      bool `yaml:"show_fps"`
}

// CameraConfig holds fly camera settings.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"`
}

// SceneConfig holds world generation settings.
type SceneConfig struct {
	Seed     int64  `yaml:"seed"`
	AssetDir string `yaml:"asset_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Riverside Landscape 3D",
			Width:      1200,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			Background: [3]float32{0.53, 0.81, 0.98},
		},
		Render: RenderConfig{
			Near: 0.1,
			Far:  100,
		},
		Camera: CameraConfig{
			Position:    [3]float32{-8, 4, 5},
			Yaw:         -60,
			Pitch:       -15,
			Speed:       5,
			Sensitivity: 0.1,
			Zoom:        45,
		},
		Scene: SceneConfig{
			Seed:     42,
			AssetDir: "assets/textures",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "riverside",
		},
	}
}
