package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	err := c.Load(nil)
	assert.NoError(t, err)
	assert.False(t, c.GetBool("debug"))
	assert.Equal(t, "/tmp/bitgrid_readline.tmp", c.GetString("history-file"))
	assert.Equal(t, "", c.GetString("cpu-profile"))
}

func TestArgOverrides(t *testing.T) {
	c := &Config{}
	err := c.Load([]string{"--debug", "--history-file", "/tmp/other.tmp",
		"--cpu-profile=/tmp/prof.out"})
	assert.NoError(t, err)
	assert.True(t, c.GetBool("debug"))
	assert.Equal(t, "/tmp/other.tmp", c.GetString("history-file"))
	assert.Equal(t, "/tmp/prof.out", c.GetString("cpu-profile"))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("BITGRID_DEBUG", "true")
	t.Setenv("BITGRID_HISTORY_FILE", "/tmp/env.tmp")
	c := &Config{}
	err := c.Load(nil)
	assert.NoError(t, err)
	assert.True(t, c.GetBool("debug"))
	assert.Equal(t, "/tmp/env.tmp", c.GetString("history-file"))
}

func TestBadArg(t *testing.T) {
	c := &Config{}
	err := c.Load([]string{"debug"})
	assert.Error(t, err)
}
