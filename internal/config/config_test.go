// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.ListFile, "compromised.txt")
	assert.Equal(t, cfg.Format, "text")
	assert.Equal(t, cfg.FailExitCode, 42)
	assert.Equal(t, cfg.LogLevel, "warn")
	assert.False(t, cfg.NoRunNpm)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NPMSCAN_LIST_FILE", "testdata/list.txt")
	t.Setenv("NPMSCAN_FORMAT", "json")
	t.Setenv("NPMSCAN_FAIL_EXIT_CODE", "99")
	t.Setenv("NPMSCAN_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.ListFile, "testdata/list.txt")
	assert.Equal(t, cfg.Format, "json")
	assert.Equal(t, cfg.FailExitCode, 99)
	assert.Equal(t, cfg.LogLevel, "debug")
}

func TestLoadRejectsBadFormat(t *testing.T) {
	t.Setenv("NPMSCAN_FORMAT", "yaml")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsReservedExitCode(t *testing.T) {
	cfg := Defaults
	cfg.FailExitCode = 1
	assert.Error(t, cfg.Validate())

	cfg.FailExitCode = 300
	assert.Error(t, cfg.Validate())

	cfg.FailExitCode = 42
	assert.NoError(t, cfg.Validate())
}
