package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/byxorna/storefront/pkg/pagination"
	"github.com/byxorna/storefront/pkg/types/v1"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is prepended to every environment override, e.g.
	// STOREFRONT_ENDPOINT or STOREFRONT_LOG_LEVEL.
	EnvPrefix = "STOREFRONT_"

	DefaultPath = "~/.storefront.yaml"
)

var (
	// Default is the configuration used when no file is present, and the base
	// that a config file is unmarshalled over.
	Default = Config{
		Endpoint:  "https://fakestoreapi.com/products",
		PageSize:  pagination.DefaultPageSize,
		Sort:      v1.DefaultSortKey,
		Locale:    "en",
		UserAgent: "storefront/0.1",
		Categories: []string{
			"electronics",
			"jewelery",
			"men's clothing",
			"women's clothing",
		},
		Log: Log{Level: "info"},
	}
)

type Config struct {
	Endpoint string     `yaml:"endpoint" env:"ENDPOINT" validate:"required,url"`
	PageSize int        `yaml:"pageSize" env:"PAGE_SIZE" validate:"required,gt=0"`
	Sort     v1.SortKey `yaml:"sort" env:"SORT" validate:"required,oneof=price name"`
	// Locale is the BCP 47 tag whose collation orders products by name.
	Locale string `yaml:"locale" env:"LOCALE" validate:"required"`
	// Categories are the entries offered in the filter panel.
	Categories []string `yaml:"categories" env:"CATEGORIES" envSeparator:"," validate:"unique,dive,required"`
	// Filters are the categories selected at startup.
	Filters []string `yaml:"filters,omitempty" env:"FILTERS" envSeparator:"," validate:"dive,required"`
	// Timeout bounds each catalog request; zero waits forever.
	Timeout   time.Duration `yaml:"timeout,omitempty" env:"TIMEOUT" validate:"gte=0"`
	UserAgent string        `yaml:"userAgent" env:"USER_AGENT" validate:""`
	// FenceStaleResponses drops a catalog response when a newer request has
	// been issued since. Off by default: the last response to arrive wins.
	FenceStaleResponses bool `yaml:"fenceStaleResponses" env:"FENCE_STALE_RESPONSES"`
	Log                 Log  `yaml:"log" envPrefix:"LOG_"`
}

type Log struct {
	Level string `yaml:"level" env:"LEVEL" validate:"required,oneof=debug info warn error"`
	// File receives log lines while the terminal UI runs. Empty picks a file
	// in the XDG runtime directory.
	File string `yaml:"file,omitempty" env:"FILE" validate:""`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	err = c.applyEnv()
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the config file at path. A missing file is not an error, the
// defaults (plus environment overrides) are used instead.
func Load(path string) (*Config, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			c := Default
			if err := c.applyEnv(); err != nil {
				return nil, err
			}
			if err := c.Validate(); err != nil {
				return nil, err
			}
			return &c, nil
		}
		return nil, fmt.Errorf("unable to open config %s: %w", expandedPath, err)
	}
	defer f.Close()

	c, err := NewFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load configuration %s: %w", expandedPath, err)
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("unable to parse environment: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}
