// Package config loads game settings from defaults, an optional gadzooks.yaml and
// GADZOOKS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configName = "gadzooks"
	envPrefix  = "GADZOOKS"
)

type Config struct {
	Window   WindowConfig      `mapstructure:"window"`
	View     ViewConfig        `mapstructure:"view"`
	Minimap  MinimapConfig     `mapstructure:"minimap"`
	Player   PlayerConfig      `mapstructure:"player"`
	Map      MapConfig         `mapstructure:"map"`
	Textures map[string]string `mapstructure:"textures"`
	TPS      int               `mapstructure:"tps"`
	Log      LogConfig         `mapstructure:"log"`
	Term     TermConfig        `mapstructure:"term"`

	// Assets is the directory textures and level images are read from. Empty
	// means the assets built into the binary.
	Assets string `mapstructure:"assets"`
}

type WindowConfig struct {
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	VSync      bool   `mapstructure:"vsync"`
}

type ViewConfig struct {
	X          int     `mapstructure:"x"`
	Y          int     `mapstructure:"y"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Resolution int     `mapstructure:"resolution"`
	FOV        float64 `mapstructure:"fov"` // degrees
	MaxDepth   int     `mapstructure:"max_depth"`
	Shade      float64 `mapstructure:"shade"`
	Ceiling    string  `mapstructure:"ceiling"`
	Floor      string  `mapstructure:"floor"`
	Crosshair  bool    `mapstructure:"crosshair"`
}

type MinimapConfig struct {
	Visible bool `mapstructure:"visible"`
	X       int  `mapstructure:"x"`
	Y       int  `mapstructure:"y"`
	Width   int  `mapstructure:"width"`
	Height  int  `mapstructure:"height"`
}

// PlayerConfig speeds are per second and converted to per tick with the tick rate.
type PlayerConfig struct {
	X            float64 `mapstructure:"x"`
	Y            float64 `mapstructure:"y"`
	Angle        float64 `mapstructure:"angle"` // degrees
	UseSpawn     bool    `mapstructure:"use_spawn"`
	TurnRate     float64 `mapstructure:"turn_rate"` // degrees per second
	Speed        float64 `mapstructure:"speed"`     // world units per second
	CollisionGap float64 `mapstructure:"collision_gap"`
}

// MapConfig authors the grid either from Rows and Legend or, when Image is set,
// from a level image whose Palette maps "#rrggbb" colours to texture names.
type MapConfig struct {
	CellSize float64           `mapstructure:"cell_size"`
	Rows     []string          `mapstructure:"rows"`
	Legend   map[string]string `mapstructure:"legend"`
	Image    string            `mapstructure:"image"`
	Palette  map[string]string `mapstructure:"palette"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type TermConfig struct {
	// Hold keeps a key down after a terminal key event, which has no release.
	Hold time.Duration `mapstructure:"hold"`
}

// DefaultRows is the built-in level: an 8×8 room with a partition wall and a pillar.
var DefaultRows = []string{
	"11111111",
	"1.1....1",
	"1.1....1",
	"1.1....1",
	"1......1",
	"1....2.1",
	"1......1",
	"11111111",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Gadzooks")
	v.SetDefault("window.width", 1440)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.vsync", true)

	v.SetDefault("view.x", 540)
	v.SetDefault("view.y", 44)
	v.SetDefault("view.width", 900)
	v.SetDefault("view.height", 512)
	v.SetDefault("view.resolution", 180)
	v.SetDefault("view.fov", 60.0)
	v.SetDefault("view.max_depth", 8)
	v.SetDefault("view.shade", 0.5)
	v.SetDefault("view.ceiling", "#383838")
	v.SetDefault("view.floor", "#707070")
	v.SetDefault("view.crosshair", true)

	v.SetDefault("minimap.visible", true)
	v.SetDefault("minimap.x", 16)
	v.SetDefault("minimap.y", 44)
	v.SetDefault("minimap.width", 512)
	v.SetDefault("minimap.height", 512)

	v.SetDefault("player.x", 100.0)
	v.SetDefault("player.y", 100.0)
	v.SetDefault("player.angle", 0.0)
	v.SetDefault("player.use_spawn", true)
	v.SetDefault("player.turn_rate", 180.0)
	v.SetDefault("player.speed", 180.0)
	v.SetDefault("player.collision_gap", 20.0)

	v.SetDefault("map.cell_size", 64.0)
	v.SetDefault("map.rows", DefaultRows)
	v.SetDefault("map.legend", map[string]string{"1": "brick", "2": "stone"})
	v.SetDefault("map.image", "")
	v.SetDefault("map.palette", map[string]string{"#808080": "stone"})

	v.SetDefault("textures", map[string]string{
		"brick": "textures/brick.png",
		"stone": "textures/stone.png",
	})
	v.SetDefault("assets", "")

	v.SetDefault("tps", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("term.hold", "150ms")
}

// Load reads the configuration. An explicit path must exist; without one the file
// is looked up as gadzooks.yaml in the working directory and ~/.config/gadzooks,
// and a missing file just means defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gadzooks")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Debug("no config file found, using defaults")
	} else {
		log.WithField("file", v.ConfigFileUsed()).Debug("config loaded")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		// defaults are static; failing to decode them is a programming error
		panic(fmt.Sprintf("config: decode defaults: %v", err))
	}
	return cfg
}

// Clone returns a deep copy, so a host can adjust its copy without touching the
// shared configuration.
func (c *Config) Clone() (*Config, error) {
	out := &Config{}
	if err := copier.CopyWithOption(out, c, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone config: %w", err)
	}
	return out, nil
}

// Tick is the duration of one fixed update.
func (c *Config) Tick() time.Duration {
	return time.Second / time.Duration(c.TPS)
}
