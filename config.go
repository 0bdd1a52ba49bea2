package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

const configSection = "Config"

type Config struct {
	CockpitName     string
	CockpitScreen   int
	BarLength       int
	TopPositions    int
	Debug           bool
	UpdateFrequency UpdateFrequency
}

func DefaultConfig() Config {
	return Config{
		CockpitName:     DefaultCockpitName,
		CockpitScreen:   DefaultCockpitScreen,
		BarLength:       DefaultBarLength,
		TopPositions:    DefaultTopPositions,
		UpdateFrequency: DefaultUpdateFrequency,
	}
}

// loadConfig reads the [Config] section of an INI file. A missing file
// yields the defaults. CARGO_* variables override the file; the process
// environment wins over a .env file in the config file's directory.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			f, err := ini.Load(path)
			if err != nil {
				return cfg, fmt.Errorf("load config: %w", err)
			}
			applyINI(&cfg, f.Section(configSection))
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}

	dotenv, err := readDotenv(path)
	if err != nil {
		return cfg, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readDotenv parses the .env beside configPath without exporting it into
// the process environment.
func readDotenv(configPath string) (map[string]string, error) {
	if configPath == "" {
		return nil, nil
	}
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	vars, err := godotenv.Read(envPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}
	return vars, nil
}

func applyINI(cfg *Config, sec *ini.Section) {
	if name := strings.TrimSpace(sec.Key("CockpitName").String()); name != "" {
		cfg.CockpitName = name
	}
	cfg.CockpitScreen = sec.Key("CockpitScreen").MustInt(cfg.CockpitScreen)
	cfg.BarLength = sec.Key("BarLength").MustInt(cfg.BarLength)
	cfg.TopPositions = sec.Key("TopPositions").MustInt(cfg.TopPositions)
	cfg.Debug = sec.Key("Debug").MustBool(cfg.Debug)
	cfg.UpdateFrequency = UpdateFrequency(sec.Key("UpdateFrequency").MustInt(int(cfg.UpdateFrequency)))
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("CARGO_COCKPIT_NAME"); ok && strings.TrimSpace(v) != "" {
		cfg.CockpitName = strings.TrimSpace(v)
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"CARGO_COCKPIT_SCREEN", &cfg.CockpitScreen},
		{"CARGO_BAR_LENGTH", &cfg.BarLength},
		{"CARGO_TOP_POSITIONS", &cfg.TopPositions},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v, ok := lookup("CARGO_UPDATE_FREQUENCY"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("CARGO_UPDATE_FREQUENCY: %w", err)
		}
		cfg.UpdateFrequency = UpdateFrequency(n)
	}
	if v, ok := lookup("CARGO_DEBUG"); ok {
		cfg.Debug = parseBool(v)
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.CockpitName == "":
		return errors.New("config: CockpitName is empty")
	case c.CockpitScreen < 0:
		return fmt.Errorf("config: CockpitScreen must be >= 0, got %d", c.CockpitScreen)
	case c.BarLength <= 0:
		return fmt.Errorf("config: BarLength must be > 0, got %d", c.BarLength)
	case c.TopPositions < 0:
		return fmt.Errorf("config: TopPositions must be >= 0, got %d", c.TopPositions)
	case !c.UpdateFrequency.Valid():
		return fmt.Errorf("config: UpdateFrequency must be 1, 10 or 100, got %d", c.UpdateFrequency)
	}
	return nil
}

// parseBool accepts the spellings people type into INI and env files.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
