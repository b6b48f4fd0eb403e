package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Config holds application configuration. Every key has a default, so the
// game runs with no config file present.
type Config struct {
	Players PlayersConfig
	UI      UIConfig
	Log     LogConfig
}

// PlayersConfig holds the display symbols for both pieces.
type PlayersConfig struct {
	One string
	Two string
}

// Runes returns the validated single-rune symbols.
func (p PlayersConfig) Runes() (one, two rune) {
	one, _ = utf8.DecodeRuneInString(p.One)
	two, _ = utf8.DecodeRuneInString(p.Two)
	return one, two
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Legend bool
}

// LogConfig holds the debug log destination. Stdout belongs to the TUI, so
// structured logs go to a file.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix
// ISOLA_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("players.one", "B")
	v.SetDefault("players.two", "W")
	v.SetDefault("ui.legend", true)
	v.SetDefault("log.path", defaultLogPath())

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ISOLA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(configHome(), "isola"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ISOLA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	symbols := map[string]string{
		"players.one": c.Players.One,
		"players.two": c.Players.Two,
	}
	for name, sym := range symbols {
		if utf8.RuneCountInString(sym) != 1 {
			return fmt.Errorf("%s: symbol must be a single character, got %q", name, sym)
		}
		if sym == "+" || sym == "A" {
			return fmt.Errorf("%s: symbol %q collides with the board notation", name, sym)
		}
	}
	if c.Players.One == c.Players.Two {
		return fmt.Errorf("players.one and players.two must differ, both are %q", c.Players.One)
	}
	return nil
}

func configHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

func defaultLogPath() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		state = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(state, "isola", "isola.log")
}
