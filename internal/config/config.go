// Package config builds the configuration of the server once at startup, from
// `config.json5` (+ `config.local.json5`) and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"halorun-backend/internal/scrapers/waypoint"
	"halorun-backend/lib/configutil"

	"dario.cat/mergo"
	"github.com/gookit/validate"
	"github.com/joho/godotenv"
)

const (
	ENV_LOGIN    = "HALO_WAYPOINT_LOGIN"
	ENV_PASSWORD = "HALO_WAYPOINT_PASSWORD"
	ENV_PORT     = "PORT"
)

type WaypointConfig struct {
	LoginUrl          string  `json:"login_url"`
	BaseUrl           string  `json:"base_url"`
	UserAgent         string  `json:"user_agent"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	// Timeout is a duration string like "30s".
	Timeout string `json:"timeout"`
}

type CacheConfig struct {
	Capacity int `json:"capacity"`
	// Ttl is a duration string like "10m".
	Ttl string `json:"ttl"`
}

type Config struct {
	Port           int      `json:"port" validate:"required|int|min:1|max:65535"`
	AllowedOrigins []string `json:"allowed_origins"`

	// Login and Password are secrets, they should come from the environment.
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`

	Waypoint     WaypointConfig `json:"waypoint"`
	SessionCache CacheConfig    `json:"session_cache"`
	StatsCache   CacheConfig    `json:"stats_cache"`
}

func defaults() Config {
	opts := waypoint.DefaultCachedClientOptions()
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"*"},
		Waypoint: WaypointConfig{
			RequestsPerSecond: 4,
			Timeout:           "30s",
		},
		SessionCache: CacheConfig{
			Capacity: opts.Session.Capacity,
			Ttl:      opts.Session.Ttl.String(),
		},
		StatsCache: CacheConfig{
			Capacity: opts.Stats.Capacity,
			Ttl:      opts.Stats.Ttl.String(),
		},
	}
}

// Load reads the configuration file at configPath (it may not exist) and then the environment,
// optionally populated by the dotenv file at envPath. Environment variables always take priority.
func Load(configPath, envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envPath, err)
	}

	cfg, err := configutil.ReadConfig[Config](configPath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file, using defaults", "path", configPath)
	} else if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", configPath, err)
	}
	// only fills in the fields the file left empty
	err = mergo.Merge(&cfg, defaults())
	if err != nil {
		return Config{}, err
	}

	if login := os.Getenv(ENV_LOGIN); login != "" {
		cfg.Login = login
	}
	if password := os.Getenv(ENV_PASSWORD); password != "" {
		cfg.Password = password
	}
	if rawPort := os.Getenv(ENV_PORT); rawPort != "" {
		port, err := strconv.Atoi(rawPort)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", ENV_PORT, err)
		}
		cfg.Port = port
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field, missing credentials are reported as an error here.
func (c Config) Validate() error {
	v := validate.Struct(&c)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.Error())
	}

	_, err := c.WaypointOptions()
	if err != nil {
		return err
	}
	_, err = c.CacheOptions()
	return err
}

func (c Config) Credentials() waypoint.Credentials {
	return waypoint.Credentials{Login: c.Login, Password: c.Password}
}

func (c Config) WaypointOptions() (waypoint.Options, error) {
	timeout, err := time.ParseDuration(c.Waypoint.Timeout)
	if err != nil {
		return waypoint.Options{}, fmt.Errorf("waypoint.timeout: %w", err)
	}
	if c.Waypoint.RequestsPerSecond < 0 {
		return waypoint.Options{}, fmt.Errorf("waypoint.requests_per_second must not be negative")
	}
	return waypoint.Options{
		LoginUrl:          c.Waypoint.LoginUrl,
		BaseUrl:           c.Waypoint.BaseUrl,
		UserAgent:         c.Waypoint.UserAgent,
		RequestsPerSecond: c.Waypoint.RequestsPerSecond,
		Timeout:           timeout,
	}, nil
}

func cacheOptions(name string, c CacheConfig) (waypoint.CacheOptions, error) {
	if c.Capacity <= 0 {
		return waypoint.CacheOptions{}, fmt.Errorf("%s.capacity must be positive", name)
	}
	ttl, err := time.ParseDuration(c.Ttl)
	if err != nil {
		return waypoint.CacheOptions{}, fmt.Errorf("%s.ttl: %w", name, err)
	}
	if ttl <= 0 {
		return waypoint.CacheOptions{}, fmt.Errorf("%s.ttl must be positive", name)
	}
	return waypoint.CacheOptions{Capacity: c.Capacity, Ttl: ttl}, nil
}

func (c Config) CacheOptions() (waypoint.CachedClientOptions, error) {
	session, err := cacheOptions("session_cache", c.SessionCache)
	if err != nil {
		return waypoint.CachedClientOptions{}, err
	}
	stats, err := cacheOptions("stats_cache", c.StatsCache)
	if err != nil {
		return waypoint.CachedClientOptions{}, err
	}
	return waypoint.CachedClientOptions{Session: session, Stats: stats}, nil
}
