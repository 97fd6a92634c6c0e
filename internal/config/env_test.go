package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Config reads for the duration of the test.
// envconfig only applies defaults to unset keys, so an empty value is not enough.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "ETC_RPC_HOST", "ETC_RPC_PORT", "RPC_TIMEOUT", "LOG_LEVEL", "LOG_DEVELOPMENT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestInit_Defaults(t *testing.T) {
	t.Cleanup(func() { cfg = nil })
	clearEnv(t)

	require.NoError(t, Init())

	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, "ec2-52-30-28-57.eu-west-1.compute.amazonaws.com", GetEtcRPCHost())
	assert.Equal(t, 8546, GetEtcRPCPort())
	assert.Equal(t, 15*time.Second, GetRPCTimeout())
	assert.Equal(t, "info", GetLogLevel())
	assert.False(t, GetLogDevelopment())
}

func TestInit_FromEnv(t *testing.T) {
	t.Cleanup(func() { cfg = nil })
	clearEnv(t)
	t.Setenv("ETC_RPC_HOST", "localhost")
	t.Setenv("ETC_RPC_PORT", "8545")
	t.Setenv("RPC_TIMEOUT", "3s")
	t.Setenv("LOG_DEVELOPMENT", "true")

	require.NoError(t, Init())

	assert.Equal(t, "localhost", GetEtcRPCHost())
	assert.Equal(t, 8545, GetEtcRPCPort())
	assert.Equal(t, 3*time.Second, GetRPCTimeout())
	assert.True(t, GetLogDevelopment())
}

func TestInit_InvalidPort(t *testing.T) {
	t.Cleanup(func() { cfg = nil })
	clearEnv(t)
	t.Setenv("ETC_RPC_PORT", "70000")

	err := Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ETC_RPC_PORT")
	assert.Nil(t, cfg)
}

func TestInit_NotANumber(t *testing.T) {
	t.Cleanup(func() { cfg = nil })
	clearEnv(t)
	t.Setenv("ETC_RPC_PORT", "abc")

	assert.Error(t, Init())
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	cfg = nil
	assert.Panics(t, func() { Get() })
}
