package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/atomicstack/retromenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envConfigFile  = "RETROMENU_CONFIG"
	envDriver      = "RETROMENU_DRIVER"
	envWraparound  = "RETROMENU_WRAPAROUND"
	envScrollSpeed = "RETROMENU_SCROLL_SPEED"
	envPlaylist    = "RETROMENU_PLAYLIST"
	envVerbose     = "RETROMENU_VERBOSE"
	envTrace       = "RETROMENU_TRACE"
	envLogFile     = "RETROMENU_LOG_FILE"
)

const defaultDriver = "tui"

// fileConfig mirrors the optional TOML config file.
type fileConfig struct {
	Driver      string `toml:"driver"`
	Wraparound  *bool  `toml:"wraparound"`
	ScrollSpeed *int   `toml:"scroll_speed"`
	Playlist    string `toml:"playlist"`
	Logging     struct {
		File  string `toml:"file"`
		Trace *bool  `toml:"trace"`
	} `toml:"logging"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flags over config file over environment over defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("retromenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a TOML config file")
	driverName := fs.String("driver", envOrDefault(env, envDriver, defaultDriver), "menu driver to use (unknown names fall back to the first registered driver)")
	wraparound := fs.Bool("wraparound", envOrBool(env, envWraparound, true), "continue cursor movement from the opposite list end")
	scrollSpeed := fs.Int("scroll-speed", envOrInt(env, envScrollSpeed, 1), "rows the cursor moves per navigation step")
	playlistPath := fs.String("playlist", envOrDefault(env, envPlaylist, ""), "path to a playlist to bind at startup")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configPath != "" {
		file, err := loadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["driver"] && file.Driver != "" {
			*driverName = file.Driver
		}
		if !set["wraparound"] && file.Wraparound != nil {
			*wraparound = *file.Wraparound
		}
		if !set["scroll-speed"] && file.ScrollSpeed != nil {
			*scrollSpeed = *file.ScrollSpeed
		}
		if !set["playlist"] && file.Playlist != "" {
			*playlistPath = file.Playlist
		}
		if !set["log-file"] && file.Logging.File != "" {
			*logFile = file.Logging.File
		}
		if !set["trace"] && file.Logging.Trace != nil {
			*trace = *file.Logging.Trace
		}
	}

	if *scrollSpeed < 1 {
		return Config{}, fmt.Errorf("scroll-speed must be >= 1 (got %d)", *scrollSpeed)
	}

	cfg := Config{
		App: app.Config{
			DriverName:   *driverName,
			Wraparound:   *wraparound,
			ScrollSpeed:  *scrollSpeed,
			PlaylistPath: *playlistPath,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"config":      *configPath,
			"driver":      *driverName,
			"wraparound":  strconv.FormatBool(*wraparound),
			"scrollSpeed": strconv.Itoa(*scrollSpeed),
			"playlist":    *playlistPath,
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	var file fileConfig
	bytes, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(bytes, &file); err != nil {
		return file, fmt.Errorf("parse config file: %w", err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.DriverName == "" {
		return fmt.Errorf("driver name must not be empty")
	}
	return nil
}
