package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		t.Setenv("ORGTREE_LOG_LEVEL", "")
		t.Setenv("ORGTREE_LOG_FORMAT", "")
		t.Setenv("ORGTREE_INDENT", "")

		cfg := Load()

		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "    ", cfg.Console.Indent)
	})

	t.Run("значения из окружения", func(t *testing.T) {
		t.Setenv("ORGTREE_LOG_LEVEL", "debug")
		t.Setenv("ORGTREE_LOG_FORMAT", "json")
		t.Setenv("ORGTREE_INDENT", "  ")

		cfg := Load()

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "  ", cfg.Console.Indent)
	})
}
