// Package config is for run-wide settings unmarshalled from viper, which
// merges command-line flags, MOTIFMASK_* environment variables and an
// optional YAML file (--config), in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"motifmask/internal/common"
	"motifmask/internal/motif"
	"motifmask/internal/output"
)

// EnvPrefix prefixes environment overrides (MOTIFMASK_NUM_ELMS=2).
const EnvPrefix = "MOTIFMASK"

// FilterConfig toggles the per-occurrence filters.
type FilterConfig struct {
	Logic          bool    `mapstructure:"logic"`
	LogicLabel     string  `mapstructure:"logic-label"`
	MaxProbability float64 `mapstructure:"max-probability"`
	MinEntropyRate float64 `mapstructure:"min-entropy-rate"`
	MoRF           bool    `mapstructure:"morf"`
	Disorder       bool    `mapstructure:"disorder"`
	MinComplexity  float64 `mapstructure:"min-complexity"`
}

// PredictorConfig selects the disorder/binding predictor.
type PredictorConfig struct {
	Predictor         string        `mapstructure:"predictor"`
	PredictorArgs     []string      `mapstructure:"predictor-args"`
	PredictorGFF      string        `mapstructure:"predictor-gff"`
	PredictorTimeout  time.Duration `mapstructure:"predictor-timeout"`
	DisorderThreshold float64       `mapstructure:"disorder-threshold"`
	BindingThreshold  float64       `mapstructure:"binding-threshold"`
}

// LibraryConfig narrows the loaded motif library.
type LibraryConfig struct {
	ExcludeCategories     []string `mapstructure:"exclude-categories"`
	IncludeCategories     []string `mapstructure:"include-categories"`
	LibraryMaxProbability float64  `mapstructure:"library-max-probability"`
}

// MaskConfig controls collapsing and masking.
type MaskConfig struct {
	NumElms  int    `mapstructure:"num-elms"`
	MaskMode string `mapstructure:"mask-mode"`
	Hard     bool   `mapstructure:"hard"`
}

// Config is the root-level settings struct.
type Config struct {
	Classes   string   `mapstructure:"classes"`
	Instances string   `mapstructure:"instances"`
	Sequences []string `mapstructure:"sequences"`
	Threads   int      `mapstructure:"threads"`
	LogLevel  string   `mapstructure:"log-level"`
	Quiet     bool     `mapstructure:"quiet"`

	Output          string `mapstructure:"output"`
	NoHeader        bool   `mapstructure:"no-header"`
	Sort            bool   `mapstructure:"sort"`
	Rank            bool   `mapstructure:"rank"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`
	Summary         string `mapstructure:"summary"`

	Filter    FilterConfig    `mapstructure:",squash"`
	Predictor PredictorConfig `mapstructure:",squash"`
	Library   LibraryConfig   `mapstructure:",squash"`
	Mask      MaskConfig      `mapstructure:",squash"`
}

// New returns a viper instance bound to flags, the environment and, when
// configFile is set, that YAML file.
func New(flags *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// Load unmarshals the settings visible to v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode settings: %w", err)
	}
	c.Library.ExcludeCategories = common.UniqueUpper(c.Library.ExcludeCategories)
	c.Library.IncludeCategories = common.UniqueUpper(c.Library.IncludeCategories)
	return c, nil
}

// LogicLabel parses Filter.LogicLabel (default false positive).
func (c Config) LogicLabel() (motif.Logic, error) {
	if strings.TrimSpace(c.Filter.LogicLabel) == "" {
		return motif.FalsePositive, nil
	}
	return motif.ParseLogic(c.Filter.LogicLabel)
}

// NeedPredictor reports whether a filter consumes predictor output.
func (c Config) NeedPredictor() bool { return c.Filter.MoRF || c.Filter.Disorder }

func unit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("--%s must be within [0, 1], got %v", name, v)
	}
	return nil
}

// Validate checks settings shared by every command.
func (c Config) Validate() error {
	if c.Classes == "" {
		return fmt.Errorf("no motif class table (--classes)")
	}
	if c.Threads < 0 {
		return fmt.Errorf("--threads must be >= 0, got %d", c.Threads)
	}
	if _, err := c.LogicLabel(); err != nil {
		return fmt.Errorf("--logic-label: %w", err)
	}
	if c.Filter.MaxProbability < 0 {
		return fmt.Errorf("--max-probability must be >= 0")
	}
	if c.Filter.MinEntropyRate < 0 {
		return fmt.Errorf("--min-entropy-rate must be >= 0")
	}
	if c.Filter.MinComplexity < 0 {
		return fmt.Errorf("--min-complexity must be >= 0")
	}
	if err := unit("disorder-threshold", c.Predictor.DisorderThreshold); err != nil {
		return err
	}
	if err := unit("binding-threshold", c.Predictor.BindingThreshold); err != nil {
		return err
	}
	if c.Predictor.Predictor != "" && c.Predictor.PredictorGFF != "" {
		return fmt.Errorf("--predictor and --predictor-gff are mutually exclusive")
	}
	if c.NeedPredictor() && c.Predictor.Predictor == "" && c.Predictor.PredictorGFF == "" {
		return fmt.Errorf("--morf/--disorder need --predictor or --predictor-gff")
	}
	if c.Predictor.PredictorTimeout < 0 {
		return fmt.Errorf("--predictor-timeout must be >= 0")
	}
	if c.Library.LibraryMaxProbability < 0 {
		return fmt.Errorf("--library-max-probability must be >= 0")
	}
	return nil
}

// ValidateAssign checks the assign command settings.
func (c Config) ValidateAssign() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatGFF:
	default:
		return fmt.Errorf("--output must be text, json, jsonl or gff, got %q", c.Output)
	}
	if c.Sort && c.Rank {
		return fmt.Errorf("--sort and --rank are mutually exclusive")
	}
	return nil
}

// ValidateMask checks the mask command settings.
func (c Config) ValidateMask() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.Output {
	case output.FormatFASTA, output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("--output must be fasta, text, json or jsonl, got %q", c.Output)
	}
	switch c.Mask.MaskMode {
	case output.ModeBackground, output.ModeMotifs:
	default:
		return fmt.Errorf("--mask-mode must be background or motifs, got %q", c.Mask.MaskMode)
	}
	if c.Mask.NumElms < 1 {
		return fmt.Errorf("--num-elms must be >= 1, got %d", c.Mask.NumElms)
	}
	return nil
}
