package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/org-tree/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("json формат", func(t *testing.T) {
		var buf bytes.Buffer

		log, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
		require.NoError(t, err)

		log.WithField("employee", "Bob").Info("attached")

		assert.Equal(t, logrus.InfoLevel, log.GetLevel())
		assert.Contains(t, buf.String(), `"employee":"Bob"`)
	})

	t.Run("уровень фильтрует сообщения", func(t *testing.T) {
		var buf bytes.Buffer

		log, err := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
		require.NoError(t, err)

		log.Info("hidden")

		assert.Empty(t, buf.String())
	})

	t.Run("ошибка: неизвестный уровень", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "loud", Format: "text"}, &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("ошибка: неизвестный формат", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
