package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
)

type Config struct {
	TabStop            int    `json:"tab_stop"`
	QuitConfirmations  int    `json:"quit_confirmations"`
	MessageTimeoutSecs int    `json:"message_timeout_seconds"`
	Theme              string `json:"theme"`
}

func Default() *Config {
	return &Config{
		TabStop:            8,
		QuitConfirmations:  3,
		MessageTimeoutSecs: 5,
		Theme:              "default",
	}
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pound", "config.json")
}

// Load reads the user config, falling back to defaults for any field
// the file omits. Callers use Default() when Load fails.
func Load() (*Config, error) {
	cfg := Default()
	path := configPath()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize clamps values a hand-edited config could break.
func (c *Config) normalize() {
	if c.TabStop < 1 {
		c.TabStop = 8
	}
	if c.QuitConfirmations < 0 {
		c.QuitConfirmations = 0
	}
	if c.MessageTimeoutSecs < 1 {
		c.MessageTimeoutSecs = 5
	}
	if c.Theme == "" {
		c.Theme = "default"
	}
}

func (c *Config) MessageTimeout() time.Duration {
	return time.Duration(c.MessageTimeoutSecs) * time.Second
}

func (c *Config) GetTheme() *ColorScheme {
	if theme, ok := Themes[c.Theme]; ok {
		return theme
	}
	return Themes["default"]
}

type ColorScheme struct {
	Name             string
	Background       tcell.Color
	Foreground       tcell.Color
	StatusBarBg      tcell.Color
	StatusBarFg      tcell.Color
	StatusBarReverse bool
}

var Themes = map[string]*ColorScheme{
	"default": {
		Name:             "default",
		Background:       tcell.ColorDefault,
		Foreground:       tcell.ColorDefault,
		StatusBarBg:      tcell.ColorDefault,
		StatusBarFg:      tcell.ColorDefault,
		StatusBarReverse: true,
	},
	"midnight": {
		Name:        "midnight",
		Background:  tcell.NewHexColor(0x1a1b26),
		Foreground:  tcell.NewHexColor(0xc0caf5),
		StatusBarBg: tcell.NewHexColor(0x3b4261),
		StatusBarFg: tcell.NewHexColor(0xc0caf5),
	},
}

// BaseStyle is the style text rows are drawn with.
func (s *ColorScheme) BaseStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Background).Foreground(s.Foreground)
}

// BarStyle is the status bar style; the default scheme renders the bar
// in reverse video rather than explicit colors.
func (s *ColorScheme) BarStyle() tcell.Style {
	st := tcell.StyleDefault.Background(s.StatusBarBg).Foreground(s.StatusBarFg)
	if s.StatusBarReverse {
		st = st.Reverse(true)
	}
	return st
}
