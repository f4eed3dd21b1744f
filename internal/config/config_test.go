package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 8*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, SourceDummyJSON, cfg.Source.Type)
	assert.Equal(t, "https://dummyjson.com", cfg.Source.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Session.SweepInterval)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("EMPLOYEE_SOURCE", "Postgres")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "roster")
	t.Setenv("SESSION_IDLE_TIMEOUT", "1h")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.Equal(t, SourcePostgres, cfg.Source.Type)
	assert.Equal(t, time.Hour, cfg.Session.IdleTimeout)
	assert.Equal(t, "postgres://postgres:pw@localhost:5432/roster?sslmode=disable", cfg.DatabaseURL())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"bad port", map[string]string{"JWT_SECRET_KEY": "s", "APP_PORT": "http"}},
		{"bad expiration", map[string]string{"JWT_SECRET_KEY": "s", "JWT_ACCESS_EXPIRATION_TIME": "soon"}},
		{"unknown source", map[string]string{"JWT_SECRET_KEY": "s", "EMPLOYEE_SOURCE": "csv"}},
		{"postgres without password", map[string]string{"JWT_SECRET_KEY": "s", "EMPLOYEE_SOURCE": "postgres"}},
		{"zero idle timeout", map[string]string{"JWT_SECRET_KEY": "s", "SESSION_IDLE_TIMEOUT": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestLoadSeeder(t *testing.T) {
	t.Run("needs no jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")
		t.Setenv("DB_PASSWORD", "pw")

		cfg, err := LoadSeeder()

		require.NoError(t, err)
		assert.Equal(t, "https://dummyjson.com", cfg.Source.BaseURL)
		assert.Equal(t, "postgres://postgres:pw@localhost:5432/talent_dashboard?sslmode=disable", cfg.DatabaseURL())
	})

	t.Run("requires database password", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "")

		_, err := LoadSeeder()

		assert.Error(t, err)
	})
}
