package main

import (
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "")

		config := LoadConfig(NewConfigReader())

		assert.Equal(t, AppConfig{
			ListenAddr:     DefaultListenAddr,
			WebhookWorkers: DefaultWebhookWorkersCount,
		}, config)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "/tmp/sheets.db")
		t.Setenv("LISTEN_ADDR", ":9090")
		t.Setenv("INCREMENTAL_RECOMPUTE", "true")
		t.Setenv("WEBHOOK_WORKERS", "2")

		config := LoadConfig(NewConfigReader())

		assert.Equal(t, AppConfig{
			DatabaseFilepath:     "/tmp/sheets.db",
			ListenAddr:           ":9090",
			IncrementalRecompute: true,
			WebhookWorkers:       2,
		}, config)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("LISTEN_ADDR", ":9090")

		config := NewConfigReader()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("listen", DefaultListenAddr, "")
		bindFlag(config, ListenAddrConfigKey, flags.Lookup("listen"))

		assert.Equal(t, ":9090", LoadConfig(config).ListenAddr)

		assert.NoError(t, flags.Parse([]string{"--listen", ":7070"}))
		assert.Equal(t, ":7070", LoadConfig(config).ListenAddr)
	})
}
