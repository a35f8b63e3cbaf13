package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		cmdEnv   map[string]string
		expected []string
	}{
		{
			name:     "system only",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"HOME=/home/test", "PATH=/bin", "USER=test"},
		},
		{
			name:     "command overrides",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			cmdEnv:   map[string]string{"USER": "weld", "NODE_ENV": "production"},
			expected: []string{"NODE_ENV=production", "PATH=/bin", "USER=weld"},
		},
		{
			name:     "malformed entries skipped",
			sysEnv:   []string{"BROKEN", "A=1=2"},
			expected: []string{"A=1=2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.cmdEnv))
		})
	}
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "gulp")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"), []byte("data"), 0o644))

	env := []string{"PATH=" + dir}

	got, err := lookPath("gulp", env)
	require.NoError(t, err)
	assert.Equal(t, tool, got)

	_, err = lookPath("plain", env)
	assert.ErrorIs(t, err, exec.ErrNotFound)

	_, err = lookPath("gulp", nil)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}
