package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Source   Source   `yaml:"source"`
	Server   Server   `yaml:"server"`
	Goals    Goals    `yaml:"goals"`
	Velocity Velocity `yaml:"velocity"`
	Workload Workload `yaml:"workload"`
	Sourcing Sourcing `yaml:"sourcing"`
	Logging  Logging  `yaml:"logging"`
}

type Source struct {
	// SheetURL is the CSV export link of the recruiting funnel sheet.
	SheetURL       string `yaml:"sheet_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type Server struct {
	Port int `yaml:"port"`
}

// Goals are the per-working-day sourcing targets drawn as goal lines on the
// source trend chart.
type Goals struct {
	IndeedPerDay int `yaml:"indeed_per_day"`
	DirectPerDay int `yaml:"direct_per_day"`
}

// Velocity holds the hiring-speed policy: one canonical threshold table,
// configuration rather than code.
type Velocity struct {
	SlowAfterDays int `yaml:"slow_after_days"`
	GoodUpToDays  int `yaml:"good_up_to_days"`
	WarnUpToDays  int `yaml:"warn_up_to_days"`
}

// Workload holds the recruiter load classification cutoffs.
type Workload struct {
	ElevatedAt int `yaml:"elevated_at"`
	HighAbove  int `yaml:"high_above"`
}

// Sourcing holds the alert rule thresholds. Rule order is fixed in code;
// only the cutoffs are configurable.
type Sourcing struct {
	IndeedAfterDays    int `yaml:"indeed_after_days"`
	IndeedFloor        int `yaml:"indeed_floor"`
	MessagingAfterDays int `yaml:"messaging_after_days"`
	MessagingFloor     int `yaml:"messaging_floor"`
	LinkedInAfterDays  int `yaml:"linkedin_after_days"`
	LinkedInFloor      int `yaml:"linkedin_floor"`
	CriticalAfterDays  int `yaml:"critical_after_days"`
	CriticalTarget     int `yaml:"critical_target"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for talentboard.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "talentboard")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/talentboard/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'talentboard init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration: the team's standing sheet URL
// and the canonical threshold tables.
func Default() *Config {
	return &Config{
		Source: Source{
			SheetURL:       "https://docs.google.com/spreadsheets/d/18uRbFCZ3btmnLxsfePyJ0_JURaxARa0hZl1ZbM9EQIY/export?format=csv&gid=1933021086",
			TimeoutSeconds: 10,
		},
		Server: Server{Port: 8000},
		Goals: Goals{
			IndeedPerDay: 10,
			DirectPerDay: 2,
		},
		Velocity: Velocity{
			SlowAfterDays: 12,
			GoodUpToDays:  12,
			WarnUpToDays:  20,
		},
		Workload: Workload{
			ElevatedAt: 3,
			HighAbove:  5,
		},
		Sourcing: Sourcing{
			IndeedAfterDays:    1,
			IndeedFloor:        30,
			MessagingAfterDays: 3,
			MessagingFloor:     50,
			LinkedInAfterDays:  4,
			LinkedInFloor:      60,
			CriticalAfterDays:  5,
			CriticalTarget:     80,
		},
		Logging: Logging{Level: "INFO"},
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
