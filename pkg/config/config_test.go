package config_test

import (
	"testing"

	"github.com/jhoicas/fishstock-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "no-numero")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("STORAGE", "Memory")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.App.Location().String())
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port, "valor inválido cae al default")
	assert.True(t, cfg.Seed.DemoData)
	assert.True(t, cfg.App.InMemory())
}

func TestLoad_ZonaHorariaInvalida(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "fish", Password: "p@ss:w/rd", DBName: "fishstock", SSLMode: "disable"}
	assert.Equal(t, "postgres://fish:p%40ss%3Aw%2Frd@db:5432/fishstock?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
