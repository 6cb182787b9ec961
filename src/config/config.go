package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BielosX/wombat/pokedex/src/pagination"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseUrl      string        `yaml:"baseUrl"`
	PageSize     int           `yaml:"pageSize"`
	Concurrency  int           `yaml:"concurrency"`
	HttpTimeout  time.Duration `yaml:"httpTimeout"`
	BucketName   string        `yaml:"bucketName"`
	Region       string        `yaml:"region"`
	ExportPrefix string        `yaml:"exportPrefix"`
	LogLevel     string        `yaml:"logLevel"`
}

// Load reads the environment (seeded from .env when present), then the YAML
// file at path if one is given, then fills defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}
	c, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(content, c); err != nil {
			return nil, errors.Wrapf(err, "unmarshal config %s", path)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return c, nil
}

func FromEnv() (*Config, error) {
	c := &Config{
		BaseUrl:      os.Getenv("POKEAPI_BASE_URL"),
		BucketName:   os.Getenv("BUCKET_NAME"),
		Region:       os.Getenv("AWS_REGION"),
		ExportPrefix: os.Getenv("EXPORT_PREFIX"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}
	var err error
	if c.PageSize, err = intEnv("PAGE_SIZE"); err != nil {
		return nil, err
	}
	if c.Concurrency, err = intEnv("FETCH_CONCURRENCY"); err != nil {
		return nil, err
	}
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		if c.HttpTimeout, err = time.ParseDuration(raw); err != nil {
			return nil, errors.Wrapf(err, "parse HTTP_TIMEOUT %q", raw)
		}
	}
	return c, nil
}

func intEnv(key string) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s %q", key, raw)
	}
	return value, nil
}

func (c *Config) Validate() error {
	if c.PageSize < 0 {
		return errors.New("pageSize must be >= 0")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must be >= 0")
	}
	if c.HttpTimeout < 0 {
		return errors.New("httpTimeout must be >= 0")
	}
	if c.BaseUrl == "" {
		c.BaseUrl = pokeapi.DefaultBaseUrl
	}
	if c.PageSize == 0 {
		c.PageSize = pagination.DefaultPageSize
	}
	if c.Concurrency == 0 {
		c.Concurrency = pokedex.DefaultConcurrency
	}
	if c.HttpTimeout == 0 {
		c.HttpTimeout = 30 * time.Second
	}
	if c.ExportPrefix == "" {
		c.ExportPrefix = "pokemons"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}
