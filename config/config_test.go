package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_KEY", "set")

	assert.Equal(t, "set", GetEnv("STOREFRONT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STOREFRONT_TEST_MISSING", "fallback"))
}
