package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/specialistvlad/nodesynth/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		shouldExit bool
		errCode    int
		check      func(t *testing.T, cfg *app.Config)
	}{
		{
			name: "positional path with defaults",
			args: []string{"patches/"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, "patches/", cfg.PatchPath)
				assert.Equal(t, "json", cfg.LogFormat)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, app.DefaultTickRate, cfg.TickRate)
				assert.Equal(t, "/", cfg.BackendNamespace)
				assert.Empty(t, cfg.BackendURL)
				assert.Zero(t, cfg.Duration)
			},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-patch", "a.hcl", "-p", "b.hcl", "c.hcl"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, "a.hcl", cfg.PatchPath)
			},
		},
		{
			name: "shorthand",
			args: []string{"-p", "b.yaml"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, "b.yaml", cfg.PatchPath)
			},
		},
		{
			name: "all options",
			args: []string{
				"-log-format", "TEXT", "-log-level", "Debug", "-tick-rate", "120",
				"-max-steps", "50", "-duration", "1m30s", "-backend-url", "http://localhost:3000",
				"-backend-namespace", "/audio", "-inspect-port", "8080", "synth.hcl",
			},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, "text", cfg.LogFormat)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, 120, cfg.TickRate)
				assert.Equal(t, 50, cfg.MaxSteps)
				assert.Equal(t, 90*time.Second, cfg.Duration)
				assert.Equal(t, "http://localhost:3000", cfg.BackendURL)
				assert.Equal(t, "/audio", cfg.BackendNamespace)
				assert.Equal(t, 8080, cfg.InspectPort)
			},
		},
		{name: "help", args: []string{"-h"}, shouldExit: true},
		{name: "no path prints usage", args: []string{}, shouldExit: true},
		{name: "error - unknown flag", args: []string{"-nope"}, errCode: 2},
		{name: "error - bad log format", args: []string{"-log-format", "xml", "p.hcl"}, errCode: 2},
		{name: "error - bad log level", args: []string{"-log-level", "trace", "p.hcl"}, errCode: 2},
		{name: "error - negative max steps", args: []string{"-max-steps", "-1", "p.hcl"}, errCode: 2},
		{name: "error - negative duration", args: []string{"-duration", "-1s", "p.hcl"}, errCode: 2},
		{name: "error - negative tick rate", args: []string{"-tick-rate", "-5", "p.hcl"}, errCode: 2},
		{name: "error - inspect port out of range", args: []string{"-inspect-port", "70000", "p.hcl"}, errCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.errCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.errCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				assert.Nil(t, cfg)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			require.NotNil(t, cfg)
			tc.check(t, cfg)
		})
	}
}
