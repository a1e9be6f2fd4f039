package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Whitespace/instrument ingestion.
	ExpectedColumns int `mapstructure:"expected_columns" yaml:"expected_columns"`
	// LabelColumn is the designated categorical column index; -1 means the
	// last column of the table.
	LabelColumn int `mapstructure:"label_column" yaml:"label_column"`

	// CSV cleaning.
	DropThreshold float64  `mapstructure:"drop_threshold" yaml:"drop_threshold"`
	DateColumns   []string `mapstructure:"date_columns" yaml:"date_columns"`
	TrimColumns   []string `mapstructure:"trim_columns" yaml:"trim_columns"`

	// Output locations.
	ProcessedDir string `mapstructure:"processed_dir" yaml:"processed_dir"`
	ReportsDir   string `mapstructure:"reports_dir" yaml:"reports_dir"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.dataportfolio/config.yaml, creating the directory
// if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataportfolio")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAPORTFOLIO")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("expected_columns", 10)
	v.SetDefault("label_column", -1)
	v.SetDefault("drop_threshold", 0.60)
	v.SetDefault("date_columns", []string{"Date"})
	v.SetDefault("trim_columns", []string{"City", "AQI_Bucket"})
	v.SetDefault("processed_dir", filepath.Join("data", "processed"))
	v.SetDefault("reports_dir", "reports")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataportfolio")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
