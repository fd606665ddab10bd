// Package config holds the settings of the hsetrepl tool, read from a TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

var ErrUnknownKey = errors.New("config: unknown key")

type Config struct {
	Log  LogConfig  `toml:"log"`
	Set  SetConfig  `toml:"set"`
	Repl ReplConfig `toml:"repl"`
}

type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error...
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type SetConfig struct {
	// Seed keys are put into the set at start, parsed like keys typed at the prompt.
	Seed []string `toml:"seed"`
}

type ReplConfig struct {
	// History file, empty disables it. A leading ~ is the home directory.
	History string `toml:"history"`
	Prompt  string `toml:"prompt"`
}

func Default() Config {
	return Config{
		Log:  LogConfig{Level: "info"},
		Repl: ReplConfig{Prompt: "hset> "},
	}
}

// Load the file at path over the defaults. An empty path gives the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, check(md, c)
}

// Decode TOML text over the defaults.
func Decode(s string) (Config, error) {
	c := Default()
	md, err := toml.Decode(s, &c)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, check(md, c)
}

func check(md toml.MetaData, c Config) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}
