package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jhoicas/Impuestos-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Component("tax").Info().Str("total", "106").Msg("desglose")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "la salida en producción debe ser JSON")
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "tax", entry["component"])
	assert.Equal(t, "106", entry["total"])
	assert.Equal(t, "desglose", entry["message"])
}

func TestNew_NivelFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Debug().Msg("no debe aparecer")
	log.Info().Msg("tampoco")
	assert.Empty(t, buf.String())

	log.Warn().Msg("sí")
	assert.Contains(t, buf.String(), "sí")
}
