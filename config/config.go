// Package config loads runtime settings from defaults, an optional config
// file and WOLFCAST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/spf13/viper"

	"wolfcast/model"
	"wolfcast/raycast"
)

const EnvPrefix = "WOLFCAST"

// Level sources.
const (
	SourceDemo  = "demo"
	SourceImage = "image"
	SourceW3D   = "w3d"
)

type Config struct {
	Screen   ScreenConfig `mapstructure:"screen"`
	Render   RenderConfig `mapstructure:"render"`
	Movement MotionConfig `mapstructure:"motion"`
	Level    LevelConfig  `mapstructure:"level"`
	Window   WindowConfig `mapstructure:"window"`
}

type ScreenConfig struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	DegPerPixel float64 `mapstructure:"deg_per_pixel"`
}

type RenderConfig struct {
	BlockSize         float64 `mapstructure:"block_size"`
	ReferenceDistance float64 `mapstructure:"reference_distance"`
	MinDistance       float64 `mapstructure:"min_distance"`
	DistanceMode      string  `mapstructure:"distance_mode"`
	WallMode          string  `mapstructure:"wall_mode"`
	TextureSize       int     `mapstructure:"texture_size"`
	Workers           int     `mapstructure:"workers"`
	MaxSteps          int     `mapstructure:"max_steps"`
	Ceiling           string  `mapstructure:"ceiling"`
	Floor             string  `mapstructure:"floor"`
}

type MotionConfig struct {
	MoveStep float64 `mapstructure:"move_step"`
	TurnStep float64 `mapstructure:"turn_step"`
}

// LevelConfig picks the world. Source "demo" builds a Rows x Cols room,
// "image" decodes the map image at Path and "w3d" reads map Index from the
// game data directory Path, whose files carry extension Ext. WallTexture
// optionally replaces the demo brick on plain walls of the first two.
type LevelConfig struct {
	Source      string `mapstructure:"source"`
	Path        string `mapstructure:"path"`
	Ext         string `mapstructure:"ext"`
	Index       int    `mapstructure:"index"`
	Palette     string `mapstructure:"palette"`
	Rows        int    `mapstructure:"rows"`
	Cols        int    `mapstructure:"cols"`
	WallTexture string `mapstructure:"wall_texture"`
}

type WindowConfig struct {
	Title   string   `mapstructure:"title"`
	Scale   float64  `mapstructure:"scale"`
	TPS     int      `mapstructure:"tps"`
	Minimap bool     `mapstructure:"minimap"`
	HUD     []string `mapstructure:"hud"`
}

// HUD items.
const (
	HUDFPS      = "fps"
	HUDPosition = "position"
	HUDHeading  = "heading"
	HUDModes    = "modes"
)

func Default() Config {
	return Config{
		Screen: ScreenConfig{Width: 320, Height: 200, DegPerPixel: 0.1},
		Render: RenderConfig{
			BlockSize:         8,
			ReferenceDistance: raycast.DefaultReferenceDistance,
			MinDistance:       raycast.DefaultMinDistance,
			DistanceMode:      raycast.Perpendicular.String(),
			WallMode:          raycast.Textured.String(),
			TextureSize:       64,
			Ceiling:           "#dddddd",
			Floor:             "#222222",
		},
		Movement: MotionConfig{MoveStep: 1, TurnStep: 1},
		Level:    LevelConfig{Source: SourceDemo, Ext: "WL6", Rows: 64, Cols: 64},
		Window: WindowConfig{
			Title:   "wolfcast",
			Scale:   3,
			TPS:     60,
			Minimap: true,
			HUD:     []string{HUDFPS, HUDPosition, HUDHeading},
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("screen.width", d.Screen.Width)
	v.SetDefault("screen.height", d.Screen.Height)
	v.SetDefault("screen.deg_per_pixel", d.Screen.DegPerPixel)

	v.SetDefault("render.block_size", d.Render.BlockSize)
	v.SetDefault("render.reference_distance", d.Render.ReferenceDistance)
	v.SetDefault("render.min_distance", d.Render.MinDistance)
	v.SetDefault("render.distance_mode", d.Render.DistanceMode)
	v.SetDefault("render.wall_mode", d.Render.WallMode)
	v.SetDefault("render.texture_size", d.Render.TextureSize)
	v.SetDefault("render.workers", d.Render.Workers)
	v.SetDefault("render.max_steps", d.Render.MaxSteps)
	v.SetDefault("render.ceiling", d.Render.Ceiling)
	v.SetDefault("render.floor", d.Render.Floor)

	v.SetDefault("motion.move_step", d.Movement.MoveStep)
	v.SetDefault("motion.turn_step", d.Movement.TurnStep)

	v.SetDefault("level.source", d.Level.Source)
	v.SetDefault("level.path", d.Level.Path)
	v.SetDefault("level.ext", d.Level.Ext)
	v.SetDefault("level.index", d.Level.Index)
	v.SetDefault("level.palette", d.Level.Palette)
	v.SetDefault("level.rows", d.Level.Rows)
	v.SetDefault("level.cols", d.Level.Cols)
	v.SetDefault("level.wall_texture", d.Level.WallTexture)

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.scale", d.Window.Scale)
	v.SetDefault("window.tps", d.Window.TPS)
	v.SetDefault("window.minimap", d.Window.Minimap)
	v.SetDefault("window.hud", d.Window.HUD)
}

// Load reads the config file at path (any format viper understands; empty
// for none) over the defaults, then applies environment overrides such as
// WOLFCAST_SCREEN_WIDTH.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.DegPerPixel > 0, "deg_per_pixel must be positive, got %v", c.Screen.DegPerPixel)
	check(float64(c.Screen.Width)*c.Screen.DegPerPixel < 180, "field of view must be below 180 degrees, got %v", float64(c.Screen.Width)*c.Screen.DegPerPixel)
	check(c.Render.BlockSize > 0, "block_size must be positive, got %v", c.Render.BlockSize)
	check(c.Render.ReferenceDistance > 0, "reference_distance must be positive, got %v", c.Render.ReferenceDistance)
	check(c.Render.MinDistance > 0, "min_distance must be positive, got %v", c.Render.MinDistance)
	check(c.Render.TextureSize > 0, "texture_size must be positive, got %d", c.Render.TextureSize)
	check(c.Render.Workers >= 0, "workers must not be negative, got %d", c.Render.Workers)
	check(c.Render.MaxSteps >= 0, "max_steps must not be negative, got %d", c.Render.MaxSteps)
	if _, err := raycast.ParseDistanceMode(c.Render.DistanceMode); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if _, err := raycast.ParseWallMode(c.Render.WallMode); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if _, err := ParseColor(c.Render.Ceiling); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseColor(c.Render.Floor); err != nil {
		errs = append(errs, err)
	}

	check(c.Movement.MoveStep >= 0 && c.Movement.TurnStep >= 0, "motion steps must not be negative")

	switch c.Level.Source {
	case SourceDemo:
		check(c.Level.Rows >= 3 && c.Level.Cols >= 3, "demo room must be at least 3x3, got %dx%d", c.Level.Rows, c.Level.Cols)
	case SourceImage:
		check(c.Level.Path != "", "level.path is required for source %q", c.Level.Source)
	case SourceW3D:
		check(c.Level.Path != "", "level.path is required for source %q", c.Level.Source)
		check(c.Level.Ext != "", "level.ext is required for source %q", c.Level.Source)
		check(c.Level.Index >= 0, "level.index must not be negative, got %d", c.Level.Index)
	default:
		check(false, "unknown level source %q", c.Level.Source)
	}

	check(c.Window.Scale > 0, "window scale must be positive, got %v", c.Window.Scale)
	check(c.Window.TPS > 0, "tps must be positive, got %d", c.Window.TPS)
	for _, item := range c.Window.HUD {
		switch item {
		case HUDFPS, HUDPosition, HUDHeading, HUDModes:
		default:
			check(false, "unknown hud item %q", item)
		}
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy.
func (c *Config) Clone() (*Config, error) {
	out := &Config{}
	if err := copier.CopyWithOption(out, c, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("config: clone: %w", err)
	}
	return out, nil
}

// With returns a validated copy of c changed by edit. c is left as it was.
func (c *Config) With(edit func(*Config)) (*Config, error) {
	out, err := c.Clone()
	if err != nil {
		return nil, err
	}
	edit(out)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// SwitchDistanceMode returns a copy of c using the other distance mode.
func (c *Config) SwitchDistanceMode() (*Config, error) {
	return c.With(func(n *Config) {
		next := raycast.Fisheye
		if mode, _ := raycast.ParseDistanceMode(n.Render.DistanceMode); mode == raycast.Fisheye {
			next = raycast.Perpendicular
		}
		n.Render.DistanceMode = next.String()
	})
}

// SwitchWallMode returns a copy of c using the other wall mode.
func (c *Config) SwitchWallMode() (*Config, error) {
	return c.With(func(n *Config) {
		next := raycast.Flat
		if mode, _ := raycast.ParseWallMode(n.Render.WallMode); mode == raycast.Flat {
			next = raycast.Textured
		}
		n.Render.WallMode = next.String()
	})
}

// RenderOptions maps the screen and render settings onto raycast.Options.
func (c *Config) RenderOptions() (raycast.Options, error) {
	dist, err := raycast.ParseDistanceMode(c.Render.DistanceMode)
	if err != nil {
		return raycast.Options{}, err
	}
	walls, err := raycast.ParseWallMode(c.Render.WallMode)
	if err != nil {
		return raycast.Options{}, err
	}
	return raycast.Options{
		Screen: raycast.Screen{
			Width:       c.Screen.Width,
			Height:      c.Screen.Height,
			DegPerPixel: c.Screen.DegPerPixel,
		},
		BlockSize:         c.Render.BlockSize,
		ReferenceDistance: c.Render.ReferenceDistance,
		MinDistance:       c.Render.MinDistance,
		Distance:          dist,
		Walls:             walls,
		Workers:           c.Render.Workers,
		MaxSteps:          c.Render.MaxSteps,
	}, nil
}

func (c *Config) Motion() model.Motion {
	return model.Motion{MoveStep: c.Movement.MoveStep, TurnStep: c.Movement.TurnStep}
}

// Background returns the ceiling and floor fill colours.
func (c *Config) Background() (ceiling, floor color.RGBA, err error) {
	if ceiling, err = ParseColor(c.Render.Ceiling); err != nil {
		return
	}
	floor, err = ParseColor(c.Render.Floor)
	return
}

// ParseColor parses #rgb or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xFF}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R, c.G, c.B = c.R*0x11, c.G*0x11, c.B*0x11
	default:
		err = errors.New("bad length")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: invalid colour %q: %v", s, err)
	}
	return c, nil
}
