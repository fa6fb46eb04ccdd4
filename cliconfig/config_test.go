package cliconfig_test

import (
	"testing"

	"github.com/haxtibal/i4w-callapi/cliconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, forwarded, err := cliconfig.Parse([]string{"-c", "check_ping"})
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, uint64(5668), cfg.Port)
	assert.Equal(t, uint64(60), cfg.Timeout)
	assert.False(t, cfg.Insecure)
	assert.Equal(t, "check_ping", cfg.Command)
	assert.Empty(t, forwarded)
}

func TestParseAllFlags(t *testing.T) {
	cfg, forwarded, err := cliconfig.Parse([]string{
		"--host", "icinga.example", "-p", "8443", "-c", "check_ping",
		"--insecure", "--timeout", "5", "-Warning", "100", "-Critical", "200",
	})
	require.NoError(t, err)
	assert.Equal(t, "icinga.example", cfg.Host)
	assert.Equal(t, uint64(8443), cfg.Port)
	assert.Equal(t, "check_ping", cfg.Command)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, uint64(5), cfg.Timeout)
	assert.Equal(t, []string{"-Warning", "100", "-Critical", "200"}, forwarded)
}

func TestParseDoubleDashStartsForwardedListUnconditionally(t *testing.T) {
	cfg, forwarded, err := cliconfig.Parse([]string{"-c", "check_ping", "--", "--host", "looks-like-a-flag"})
	require.NoError(t, err)
	assert.Equal(t, "check_ping", cfg.Command)
	assert.Equal(t, []string{"--host", "looks-like-a-flag"}, forwarded)
}

func TestParseMissingCommandErrors(t *testing.T) {
	_, _, err := cliconfig.Parse([]string{"--host", "icinga.example"})
	require.ErrorIs(t, err, cliconfig.ErrMissingCommand)
}

func TestParseFlagMissingValueErrors(t *testing.T) {
	_, _, err := cliconfig.Parse([]string{"-c"})
	require.Error(t, err)
}

func TestParseInvalidPortErrors(t *testing.T) {
	_, _, err := cliconfig.Parse([]string{"-c", "check_ping", "-p", "not-a-port"})
	require.Error(t, err)
}

func TestParseForwardedFlagsInterspersedWithOwnFlags(t *testing.T) {
	cfg, forwarded, err := cliconfig.Parse([]string{"-Warning", "0", "-c", "check_ping", "-Critical", "1"})
	require.NoError(t, err)
	assert.Equal(t, "check_ping", cfg.Command)
	assert.Equal(t, []string{"-Warning", "0", "-Critical", "1"}, forwarded)
}
