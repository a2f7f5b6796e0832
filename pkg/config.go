package pkg

import (
	"fmt"
	"time"

	"github.com/qnkhuat/fatbot/pkg/engine"
	"github.com/qnkhuat/fatbot/pkg/strategy"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultDepth    = 4
	DefaultHTTPAddr = ":1998"
	DefaultSSHAddr  = ":2222"
	EnvPrefix       = "FATBOT"

	DefaultRequestTimeout = 30 * time.Second
)

type Config struct {
	Depth          int     `mapstructure:"depth"`
	Strategy       string  `mapstructure:"strategy"`
	Parallel       bool    `mapstructure:"parallel"`
	MaterialWeight float64 `mapstructure:"material_weight"`
	MobilityWeight float64 `mapstructure:"mobility_weight"`
	Seed           int64   `mapstructure:"seed"`
	LogFile        string  `mapstructure:"log_file"`
	LogLevel       string  `mapstructure:"log_level"`
	Theme          string  `mapstructure:"theme"`
	HTTPAddr       string  `mapstructure:"http_addr"`
	// MaxRequestDepth caps the depth an API request may ask for.
	MaxRequestDepth int           `mapstructure:"max_request_depth"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	SSHAddr         string        `mapstructure:"ssh_addr"`
	HostKeyFile     string        `mapstructure:"host_key_file"`
	ClientPath      string        `mapstructure:"client_path"`
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"depth":           "depth",
	"strategy":        "strategy",
	"parallel":        "parallel",
	"material-weight": "material_weight",
	"mobility-weight": "mobility_weight",
	"seed":            "seed",
	"log":             "log_file",
	"log-level":       "log_level",
	"theme":           "theme",
	"http":            "http_addr",
	"max-depth":       "max_request_depth",
	"timeout":         "request_timeout",
	"ssh":             "ssh_addr",
	"host-key":        "host_key_file",
	"client":          "client_path",
}

// NewFlagSet declares the flags every binary understands. Binaries may add
// their own before parsing.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "path to a config file (yaml, toml, json or .env)")
	flags.Int("depth", DefaultDepth, "search depth in plies")
	flags.String("strategy", strategy.NameFatBot, fmt.Sprintf("move picker, one of %v", strategy.Names))
	flags.Bool("parallel", false, "search root moves concurrently")
	flags.Float64("material-weight", engine.DefaultMaterialWeight, "weight of the material term")
	flags.Float64("mobility-weight", engine.DefaultMobilityWeight, "weight of the mobility term")
	flags.Int64("seed", 0, "seed for the random strategy, 0 picks a fresh one")
	flags.String("log", "", "path to log file, stderr when empty")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("theme", ThemeBasic.Name, "board colors for the terminal client")
	flags.String("http", DefaultHTTPAddr, "http listen address")
	flags.Int("max-depth", DefaultDepth, "deepest search an http request may ask for")
	flags.Duration("timeout", DefaultRequestTimeout, "time limit of one http move request, 0 for none")
	flags.String("ssh", DefaultSSHAddr, "ssh listen address")
	flags.String("host-key", "", "ssh host key file, a fresh key is generated when empty")
	flags.String("client", "fatbot", "client binary served to ssh terminals")
	return flags
}

// LoadConfig layers parsed flags over FATBOT_* environment variables over
// the optional config file over defaults.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for flag, key := range flagKeys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, err
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Depth < 1 || c.Depth > engine.MaxDepth {
		return fmt.Errorf("config: %w: depth %d not in [1, %d]", engine.ErrInvalidDepth, c.Depth, engine.MaxDepth)
	}
	if c.MaxRequestDepth < 1 || c.MaxRequestDepth > engine.MaxDepth {
		return fmt.Errorf("config: %w: max request depth %d not in [1, %d]", engine.ErrInvalidDepth, c.MaxRequestDepth, engine.MaxDepth)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: negative request timeout %s", c.RequestTimeout)
	}
	if !knownStrategy(c.Strategy) {
		return fmt.Errorf("config: %w: %q", ErrUnknownStrategy, c.Strategy)
	}
	if c.MaterialWeight < 0 || c.MobilityWeight < 0 {
		return fmt.Errorf("config: weights must not be negative")
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	if _, err := ThemeByName(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) Evaluator() *engine.MaterialMobility {
	eval := engine.NewMaterialMobility()
	eval.MaterialWeight = engine.Score(c.MaterialWeight)
	eval.MobilityWeight = engine.Score(c.MobilityWeight)
	return eval
}

func knownStrategy(name string) bool {
	for _, n := range strategy.Names {
		if n == name {
			return true
		}
	}
	return false
}
