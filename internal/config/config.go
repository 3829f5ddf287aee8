package config

import "github.com/spf13/viper"

// Config holds runtime defaults for a t4fix invocation.
// Values come from .t4fix.yaml, T4FIX_* env vars, and CLI flags, in
// increasing order of precedence.
type Config struct {
	SchemaPath   string `mapstructure:"schema_path"`
	XmllintPath  string `mapstructure:"xmllint_path"`
	RulesPath    string `mapstructure:"rules_path"`
	BackupSuffix string `mapstructure:"backup_suffix"`
	Backup       bool   `mapstructure:"backup"`
	Jobs         int    `mapstructure:"jobs"`
	Color        string `mapstructure:"color"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("schema_path", "")
	viper.SetDefault("xmllint_path", "")
	viper.SetDefault("rules_path", "")
	viper.SetDefault("backup_suffix", ".bak")
	viper.SetDefault("backup", true)
	viper.SetDefault("jobs", 0)
	viper.SetDefault("color", "auto")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
