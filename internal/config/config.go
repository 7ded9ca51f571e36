// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/food-cpi/pkg/constants"
	"github.com/iwvelando/food-cpi/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for food-cpi.
type Configuration struct {
	Dataset      DatasetConfig      `yaml:"dataset,omitempty"`
	Translations TranslationsConfig `yaml:"translations,omitempty"`
	Dashboard    DashboardConfig    `yaml:"dashboard,omitempty"`
	Logging      LoggingConfig      `yaml:"logging,omitempty"`
	Output       OutputConfig       `yaml:"output,omitempty"`
}

// DatasetConfig locates the CPI dataset. An empty path selects the dataset
// bundled with the binary.
type DatasetConfig struct {
	Path string `yaml:"path,omitempty"`
}

// TranslationsConfig locates the English to French category label table. An
// empty path selects the bundled table.
type TranslationsConfig struct {
	Path string `yaml:"path,omitempty"`
}

// DashboardConfig holds the initial selections of the dashboard.
type DashboardConfig struct {
	View     string `yaml:"view,omitempty"`     // top, bottom
	Count    int    `yaml:"count,omitempty"`    // categories per ranking
	Language string `yaml:"language,omitempty"` // en, fr
	Category string `yaml:"category,omitempty"` // trend category
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("dataset.path", "")
	v.SetDefault("translations.path", "")
	v.SetDefault("dashboard.view", constants.ViewTop)
	v.SetDefault("dashboard.count", constants.DefaultRankCount)
	v.SetDefault("dashboard.language", constants.LanguageEnglish)
	v.SetDefault("dashboard.category", constants.DefaultCategory)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Default returns the configuration used when no file is given: bundled data,
// environment overrides and defaults.
func Default() (*Configuration, error) {
	return decode(newViper())
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path is the same as Default.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath == "" {
		return decode(v)
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadOptionalConfiguration is LoadConfiguration, except that a file that does
// not exist yields the defaults.
func LoadOptionalConfiguration(configPath string) (*Configuration, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			return Default()
		}
	}
	return LoadConfiguration(configPath)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// Validate checks the settings that would make the dashboard unusable.
func (c *Configuration) Validate() error {
	var errs []error
	if err := validation.ValidateView(c.Dashboard.View); err != nil {
		errs = append(errs, err)
	}
	if err := validation.ValidateCount(c.Dashboard.Count); err != nil {
		errs = append(errs, err)
	}
	if err := validation.ValidateLanguage(c.Dashboard.Language); err != nil {
		errs = append(errs, err)
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if c.Dashboard.Count > constants.DefaultRankCount*5 {
		warnings = append(warnings, fmt.Sprintf("dashboard.count of %d will produce a crowded chart", c.Dashboard.Count))
	}
	if strings.TrimSpace(c.Dashboard.Category) == "" {
		warnings = append(warnings, "dashboard.category is empty; the first catalog category will be used")
	}
	if c.Dashboard.Count == 0 {
		warnings = append(warnings, "dashboard.count is 0; rankings will be empty")
	}
	return warnings
}
