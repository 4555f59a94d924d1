// Package config loads gallery settings from an optional TOML file and
// ARTGALLERY_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "ARTGALLERY"

type Config struct {
	RootPath string `mapstructure:"root_path"`
	Server   ServerConfig
	Database DatabaseConfig
	Images   ImagesConfig
	TUI      TUIConfig
}

type ServerConfig struct {
	Addr string
	// Mode is the gin mode: debug, release or test.
	Mode string
	// MaxScreens bounds how many activated screens are kept live.
	MaxScreens int `mapstructure:"max_screens"`
}

type DatabaseConfig struct {
	Path string
}

type ImagesConfig struct {
	// Dir overrides bundled images when set.
	Dir string
	S3  S3Config
}

type S3Config struct {
	Bucket   string
	Prefix   string
	Profile  string
	Region   string
	CacheDir string `mapstructure:"cache_dir"`
}

type TUIConfig struct {
	// Log is a file the terminal screen writes its log to.
	Log string
}

// New returns a viper instance carrying defaults, the config file (if any)
// and env overrides.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("root_path", ".")
	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.max_screens", 1024)
	v.SetDefault("database.path", "")
	v.SetDefault("images.dir", "")
	v.SetDefault("images.s3.bucket", "")
	v.SetDefault("images.s3.prefix", "")
	v.SetDefault("images.s3.profile", "")
	v.SetDefault("images.s3.region", "")
	v.SetDefault("images.s3.cache_dir", "")
	v.SetDefault("tui.log", "")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "artgallery"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if present and unmarshals v.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.applyDerived()

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Server.MaxScreens <= 0 {
		return Config{}, fmt.Errorf("server.max_screens must be positive, got %d", c.Server.MaxScreens)
	}
	return c, nil
}

// applyDerived fills paths that default to locations under RootPath.
func (c *Config) applyDerived() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.RootPath, "artgallery.db")
	}
	if c.Images.S3.CacheDir == "" {
		c.Images.S3.CacheDir = filepath.Join(c.RootPath, "cache", "s3")
	}
}
