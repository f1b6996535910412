package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.FrontendOrigin)
	assert.Equal(t, 3, cfg.ProbeTimeout)
	assert.Equal(t, 30, cfg.ResolveTTL)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("API_ORIGINS", "https://api.lumenlearn.dev, https://staging.lumenlearn.dev")
	t.Setenv("RESOLVE_TTL_SECONDS", "10")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://api.lumenlearn.dev", "https://staging.lumenlearn.dev"}, cfg.APIOrigins)
	assert.Equal(t, 10, cfg.ResolveTTL)
	assert.True(t, cfg.Debug)
}

func TestCandidateOriginsOrderAndDedup(t *testing.T) {
	cfg := &Config{APIOrigins: []string{"http://localhost:8080/", "https://api.lumenlearn.dev"}}

	candidates := cfg.CandidateOrigins()

	// Explicit origins first, then the conventional local fallbacks, with
	// the duplicate localhost:8080 removed.
	assert.Equal(t, []string{
		"http://localhost:8080",
		"https://api.lumenlearn.dev",
		"http://localhost:3001",
		"http://localhost:5000",
	}, candidates)
}

func TestInvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("PROBE_TIMEOUT_SECONDS", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.ProbeTimeout)
}
