package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Global
		Journal
	}

	Global struct {
		Verbose bool // Diagnostic logging on stderr
	}
	Journal struct {
		Enabled bool
		Limit   int // Max events shown by the activity log
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("verbose", false)
	v.SetDefault("journal_enabled", true)
	v.SetDefault("journal_limit", DefaultJournalLimit)

	limit := v.GetInt("JOURNAL_LIMIT")
	if limit <= 0 {
		limit = DefaultJournalLimit
	}

	return &Config{
		Global: Global{
			Verbose: v.GetBool("VERBOSE"),
		},
		Journal: Journal{
			Enabled: v.GetBool("JOURNAL_ENABLED"),
			Limit:   limit,
		},
	}
}
