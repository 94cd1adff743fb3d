// Package config persists user settings under the OS config directory:
// provider selection, API credentials, extra transcript paths, and the
// tunables for extraction and quiz generation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dnorman/learnchain/internal/concept"
	"github.com/dnorman/learnchain/internal/llm"
	"github.com/dnorman/learnchain/internal/pipeline"
)

const (
	appDirName     = "learnchain"
	configFileName = "config.toml"
)

// Config is the persisted application configuration.
type Config struct {
	// Provider selects the LLM backend: "anthropic", "openai",
	// "gemini", "openrouter", or "mock".
	Provider string

	// Model overrides the provider's default model when non-empty.
	Model string

	// Keys holds one API credential per provider name.
	Keys map[string]string

	// ExtraLogPaths are scanned for transcripts in addition to the
	// tools' standard directories.
	ExtraLogPaths []string

	// MaxInFlight bounds concurrent generation calls.
	MaxInFlight int

	// MaxAttempts is the retry ceiling for transient generation errors.
	MaxAttempts int

	// LookBack is the extractor's causal adjacency window, in events.
	LookBack int

	// MinContentSize is the extractor's noise threshold, in bytes of
	// normalized text.
	MinContentSize int

	// MaxConcepts caps how many concepts one session yields. 0 = no cap.
	MaxConcepts int

	// WriteArtifacts enables saving generated quiz sets as JSON files.
	WriteArtifacts bool

	// OutputDir is where quiz artifacts are written. Empty means a
	// "quizzes" directory next to the config file.
	OutputDir string
}

// Default returns the configuration used when no file exists.
func Default() Config {
	pcfg := pipeline.DefaultConfig()
	ccfg := concept.DefaultConfig()
	return Config{
		Provider:       "openai",
		Keys:           map[string]string{},
		MaxInFlight:    pcfg.MaxInFlight,
		MaxAttempts:    pcfg.MaxAttempts,
		LookBack:       ccfg.LookBack,
		MinContentSize: ccfg.MinContentSize,
		MaxConcepts:    ccfg.MaxConcepts,
	}
}

// Path returns the absolute path of the config file.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, appDirName, configFileName), nil
}

// Load reads the config file, falling back to defaults when it does
// not exist.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file at an explicit path. A missing file
// yields defaults, not an error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.Provider = v.GetString("provider")
	cfg.Model = v.GetString("model")
	cfg.Keys = v.GetStringMapString("keys")
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	cfg.ExtraLogPaths = v.GetStringSlice("log_paths")
	cfg.MaxInFlight = v.GetInt("pipeline.max_in_flight")
	cfg.MaxAttempts = v.GetInt("pipeline.max_attempts")
	cfg.LookBack = v.GetInt("extractor.look_back")
	cfg.MinContentSize = v.GetInt("extractor.min_content_size")
	cfg.MaxConcepts = v.GetInt("extractor.max_concepts")
	cfg.WriteArtifacts = v.GetBool("output.write_artifacts")
	cfg.OutputDir = v.GetString("output.dir")

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("provider", cfg.Provider)
	v.SetDefault("model", cfg.Model)
	v.SetDefault("keys", cfg.Keys)
	v.SetDefault("log_paths", cfg.ExtraLogPaths)
	v.SetDefault("pipeline.max_in_flight", cfg.MaxInFlight)
	v.SetDefault("pipeline.max_attempts", cfg.MaxAttempts)
	v.SetDefault("extractor.look_back", cfg.LookBack)
	v.SetDefault("extractor.min_content_size", cfg.MinContentSize)
	v.SetDefault("extractor.max_concepts", cfg.MaxConcepts)
	v.SetDefault("output.write_artifacts", cfg.WriteArtifacts)
	v.SetDefault("output.dir", cfg.OutputDir)
}

// Save writes the config to the default path, creating the directory
// if needed.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path.
func (c Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.Set("provider", c.Provider)
	v.Set("model", c.Model)
	v.Set("keys", c.Keys)
	v.Set("log_paths", c.ExtraLogPaths)
	v.Set("pipeline.max_in_flight", c.MaxInFlight)
	v.Set("pipeline.max_attempts", c.MaxAttempts)
	v.Set("extractor.look_back", c.LookBack)
	v.Set("extractor.min_content_size", c.MinContentSize)
	v.Set("extractor.max_concepts", c.MaxConcepts)
	v.Set("output.write_artifacts", c.WriteArtifacts)
	v.Set("output.dir", c.OutputDir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SetKey stores an API credential for the currently selected provider.
// Returns an error for an empty value or when the provider needs no key.
func (c *Config) SetKey(value string) error {
	if value == "" {
		return fmt.Errorf("credential value must not be empty")
	}
	if c.Provider == "mock" {
		return fmt.Errorf("provider %q does not use a credential", c.Provider)
	}
	if c.Keys == nil {
		c.Keys = map[string]string{}
	}
	c.Keys[c.Provider] = value
	return nil
}

// LLMConfig builds the provider configuration: environment defaults
// overlaid with the persisted provider, model, and credentials.
func (c Config) LLMConfig() llm.Config {
	lcfg := llm.ConfigFromEnv()

	if c.Provider != "" {
		lcfg.Provider = c.Provider
	}
	if k := c.Keys["anthropic"]; k != "" {
		lcfg.Anthropic.APIKey = k
	}
	if k := c.Keys["openai"]; k != "" {
		lcfg.OpenAI.APIKey = k
	}
	if k := c.Keys["gemini"]; k != "" {
		lcfg.Gemini.APIKey = k
	}
	if k := c.Keys["openrouter"]; k != "" {
		lcfg.OpenRouter.APIKey = k
	}
	if c.Model != "" {
		switch lcfg.Provider {
		case "anthropic":
			lcfg.Anthropic.Model = c.Model
		case "openai":
			lcfg.OpenAI.Model = c.Model
		case "gemini":
			lcfg.Gemini.Model = c.Model
		case "openrouter":
			lcfg.OpenRouter.Model = c.Model
		}
	}
	return lcfg
}

// PipelineConfig builds the quiz pipeline configuration.
func (c Config) PipelineConfig() pipeline.Config {
	pcfg := pipeline.DefaultConfig()
	if c.MaxInFlight > 0 {
		pcfg.MaxInFlight = c.MaxInFlight
	}
	if c.MaxAttempts > 0 {
		pcfg.MaxAttempts = c.MaxAttempts
	}
	return pcfg
}

// ExtractorConfig builds the concept extractor configuration.
func (c Config) ExtractorConfig() concept.Config {
	ccfg := concept.DefaultConfig()
	if c.LookBack > 0 {
		ccfg.LookBack = c.LookBack
	}
	if c.MinContentSize > 0 {
		ccfg.MinContentSize = c.MinContentSize
	}
	if c.MaxConcepts > 0 {
		ccfg.MaxConcepts = c.MaxConcepts
	}
	return ccfg
}

// ArtifactDir returns the directory quiz artifacts are written to.
func (c Config) ArtifactDir() (string, error) {
	if c.OutputDir != "" {
		return c.OutputDir, nil
	}
	path, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "quizzes"), nil
}
