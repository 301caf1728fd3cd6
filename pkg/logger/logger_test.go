package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jhoicas/fishstock-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	l.Component("purchases").Info().Str("batch_no", "B1234567").Msg("compra registrada")
	l.Debug().Msg("descartado por nivel")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "purchases", line["component"])
	assert.Equal(t, "B1234567", line["batch_no"])
	assert.Equal(t, "info", line["level"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "ruidoso", Output: &buf})
	l.Debug().Msg("x")
	assert.Zero(t, buf.Len())
	l.Info().Msg("y")
	assert.NotZero(t, buf.Len())
}
