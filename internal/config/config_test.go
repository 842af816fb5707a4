// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EDEVAL_LOG_LEVEL", "")
	t.Setenv("EDEVAL_LOG_FORMAT", "")
	t.Setenv("EDEVAL_THRESHOLD", "")
	t.Setenv("EDEVAL_STRICT_NAMES", "")
	t.Setenv("EDEVAL_REPORT_PATH", "")

	cfg := Load()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 0.0, cfg.Scoring.Threshold)
	assert.False(t, cfg.Scoring.StrictNames)
	assert.Equal(t, "data/evaluation_result.csv", cfg.Paths.Report)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("EDEVAL_LOG_LEVEL", "debug")
	t.Setenv("EDEVAL_LOG_FORMAT", "json")
	t.Setenv("EDEVAL_THRESHOLD", "0.25")
	t.Setenv("EDEVAL_STRICT_NAMES", "true")
	t.Setenv("EDEVAL_PLOT_DIR", "/tmp/plots")

	cfg := Load()
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 0.25, cfg.Scoring.Threshold)
	assert.True(t, cfg.Scoring.StrictNames)
	assert.Equal(t, "/tmp/plots", cfg.Paths.PlotDir)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("EDEVAL_THRESHOLD", "high")
	t.Setenv("EDEVAL_STRICT_NAMES", "maybe")

	cfg := Load()
	assert.Equal(t, 0.0, cfg.Scoring.Threshold)
	assert.False(t, cfg.Scoring.StrictNames)
}
