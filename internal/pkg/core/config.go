package core

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gookit/config/v2"
	"github.com/gookit/config/v2/yaml"
)

const (
	DefaultAddr     = "127.0.0.1:3000"
	DefaultMaxLimit = 1000
	DefaultTopic    = "todos"
)

type Database struct {
	URL      string `config:"url"`
	MaxConns int32  `config:"max_conns"`
	MinConns int32  `config:"min_conns"`
}

type Broker struct {
	URL   string `config:"url"`
	Topic string `config:"topic"`
	Name  string `config:"name"`
}

type Config struct {
	Addr     string   `config:"addr"`
	MaxLimit int64    `config:"max_limit"`
	Database Database `config:"database"`
	Broker   Broker   `config:"broker"`
}

// LocalPath returns the override file that sits next to path,
// e.g. configs/config.yml -> configs/config.local.yml.
func LocalPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

// NewConfig loads path and an optional sibling *.local.yml override.
// A max_limit of 0 disables the list clamp; only a missing key gets the default.
func NewConfig(path string) (*Config, error) {
	var appConfig Config

	c := config.New("todo").WithOptions(func(opt *config.Options) {
		opt.ParseEnv = true
		opt.DecoderConfig.TagName = "config"
	})

	c.AddDriver(yaml.Driver)

	if err := c.LoadFiles(path); err != nil {
		return nil, err
	}

	if err := c.LoadExists(LocalPath(path)); err != nil {
		return nil, err
	}

	if err := c.BindStruct("", &appConfig); err != nil {
		return nil, err
	}

	if appConfig.Database.URL == "" {
		return nil, errors.New("config: database.url cannot be empty")
	}

	if appConfig.Addr == "" {
		appConfig.Addr = DefaultAddr
	}

	if !c.Exists("max_limit") {
		appConfig.MaxLimit = DefaultMaxLimit
	}

	if appConfig.Broker.Topic == "" {
		appConfig.Broker.Topic = DefaultTopic
	}

	return &appConfig, nil
}
