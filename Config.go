package main

import (
	"github.com/spf13/viper"
)

// keys are read from flags or from upper-cased environment variables, e.g. DATABASE_FILEPATH
const (
	DatabaseFilepathConfigKey     = "database_filepath"
	ListenAddrConfigKey           = "listen_addr"
	IncrementalRecomputeConfigKey = "incremental_recompute"
	WebhookWorkersConfigKey       = "webhook_workers"
)

const DefaultListenAddr = ":8080"

type AppConfig struct {
	DatabaseFilepath     string
	ListenAddr           string
	IncrementalRecompute bool
	WebhookWorkers       int
}

func NewConfigReader() *viper.Viper {
	config := viper.New()
	config.SetDefault(ListenAddrConfigKey, DefaultListenAddr)
	config.SetDefault(IncrementalRecomputeConfigKey, false)
	config.SetDefault(WebhookWorkersConfigKey, DefaultWebhookWorkersCount)
	config.AutomaticEnv()

	return config
}

func LoadConfig(config *viper.Viper) AppConfig {
	return AppConfig{
		DatabaseFilepath:     config.GetString(DatabaseFilepathConfigKey),
		ListenAddr:           config.GetString(ListenAddrConfigKey),
		IncrementalRecompute: config.GetBool(IncrementalRecomputeConfigKey),
		WebhookWorkers:       config.GetInt(WebhookWorkersConfigKey),
	}
}
