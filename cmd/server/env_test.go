package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SC_TEST_INT", "42")
	t.Setenv("SC_TEST_BAD_INT", "forty")
	t.Setenv("SC_TEST_BOOL", "false")
	t.Setenv("SC_TEST_DUR", "5s")

	assert.Equal(t, "fallback", getEnv("SC_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, getEnvInt("SC_TEST_INT", 1))
	assert.Equal(t, 1, getEnvInt("SC_TEST_BAD_INT", 1))
	assert.False(t, getEnvBool("SC_TEST_BOOL", true))
	assert.True(t, getEnvBool("SC_TEST_MISSING", true))
	assert.Equal(t, 5*time.Second, getEnvDuration("SC_TEST_DUR", time.Second))
}
