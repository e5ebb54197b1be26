package tmb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TMB_LEDGER", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Ledger)

	t.Setenv("TMB_LEDGER", "/var/lib/tmb/runs.sqlite")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/tmb/runs.sqlite", cfg.Ledger)
}
