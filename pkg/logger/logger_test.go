package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-unison/pkg/logger"
)

func TestNewWithWriter_NivelYCampos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "warn")

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len(), "info queda por debajo de warn")

	l.With(func(c zerolog.Context) zerolog.Context {
		return c.Str("user", "Admin")
	}).Warn().Str("op", "warehouse.delete").Msg("almacén en uso")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Admin", entry["user"])
	assert.Equal(t, "warehouse.delete", entry["op"])
	assert.Contains(t, entry, "time")
	assert.NoError(t, l.Close())
}

func TestNew_ArchivoRotado(t *testing.T) {
	path := t.TempDir() + "/app.log"
	l := logger.New(logger.Config{Level: "debug", Output: "file", File: path, MaxSizeMB: 1})
	l.Debug().Msg("hola")
	require.NoError(t, l.Close())
	assert.FileExists(t, path)
}

func TestNop(t *testing.T) {
	l := logger.Nop()
	l.Error().Msg("nada")
	assert.NoError(t, l.Close())
}
