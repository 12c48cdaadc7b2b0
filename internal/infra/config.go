package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
)

// Config holds all application settings. Price-valued model fields are
// parsed as decimals so the yaml values arrive exactly as written; the
// engine works on the float64 Params produced by ToParams.
type Config struct {
	App struct {
		Name    string `yaml:"name" default:"glosten-milgrom"`
		Version string `yaml:"version" default:"dev"`
	} `yaml:"app"`

	// Price-valued fields are kept as strings in yaml and parsed through
	// decimal, so values like 0.2 arrive exactly as written instead of as
	// whatever float the yaml decoder picked.
	Model struct {
		VHigh  string `yaml:"v_high" default:"101"`
		VLow   string `yaml:"v_low" default:"99"`
		Mu     string `yaml:"mu" default:"0.2"`
		Delta0 string `yaml:"delta0" default:"0.5"`
		Ticks  int    `yaml:"ticks" default:"1000"`
		Paths  int    `yaml:"paths" default:"1000"`
		Seed   int64  `yaml:"seed" default:"42"`
	} `yaml:"model"`

	Quoting struct {
		Policy string `yaml:"policy" default:"simplified"`
	} `yaml:"quoting"`

	Run struct {
		Workers int `yaml:"workers"` // < 1 means GOMAXPROCS
	} `yaml:"run"`

	Output struct {
		ChartPath string `yaml:"chart_path" default:"output/glosten_milgrom.png"`
		Persist   bool   `yaml:"persist" default:"true"`
		DBPath    string `yaml:"db_path"` // empty resolves to the user config dir
	} `yaml:"output"`

	Stream struct {
		Enabled bool   `yaml:"enabled"`
		Listen  string `yaml:"listen" default:"localhost:8089"`
	} `yaml:"stream"`

	Logging struct {
		Level string `yaml:"level" default:"info"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file. Defaults are applied
// first, so a missing key keeps its default and a present key wins.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a Config with all defaults applied and no file read.
func DefaultConfig() (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, err
	}
	overrideWithEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration validity. Model parameter checks live on
// domain.Params so the engine enforces the same rules.
func (c *Config) Validate() error {
	params, err := c.parseParams()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if p := c.Quoting.Policy; p != "simplified" && p != "exact" {
		return &domain.ConfigError{Field: "quoting.policy", Err: fmt.Errorf("must be simplified or exact, got %q", p)}
	}
	if c.Stream.Enabled && c.Stream.Listen == "" {
		return &domain.ConfigError{Field: "stream.listen", Err: errors.New("required when stream is enabled")}
	}
	return nil
}

// ToParams converts the model section into engine parameters. It assumes
// the config has already passed Validate.
func (c *Config) ToParams() domain.Params {
	params, err := c.parseParams()
	if err != nil {
		panic("infra: ToParams on unvalidated config: " + err.Error())
	}
	return params
}

// parseParams parses the decimal-valued model fields and assembles Params.
func (c *Config) parseParams() (domain.Params, error) {
	fields := []struct {
		name  string
		raw   string
		value *float64
	}{
		{"v_high", c.Model.VHigh, nil},
		{"v_low", c.Model.VLow, nil},
		{"mu", c.Model.Mu, nil},
		{"delta0", c.Model.Delta0, nil},
	}
	params := domain.Params{
		Ticks: c.Model.Ticks,
		Paths: c.Model.Paths,
		Seed:  c.Model.Seed,
	}
	fields[0].value = &params.VHigh
	fields[1].value = &params.VLow
	fields[2].value = &params.Mu
	fields[3].value = &params.Delta0

	for _, f := range fields {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return domain.Params{}, &domain.ConfigError{Field: f.name, Err: err}
		}
		*f.value = d.InexactFloat64()
	}
	return params, nil
}

// overrideWithEnv applies environment variable overrides where present.
func overrideWithEnv(cfg *Config) {
	if seed := os.Getenv("GM_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Model.Seed = v
		}
	}
	if listen := os.Getenv("GM_STREAM_LISTEN"); listen != "" {
		cfg.Stream.Listen = listen
	}
	if db := os.Getenv("GM_DB_PATH"); db != "" {
		cfg.Output.DBPath = db
	}
}
