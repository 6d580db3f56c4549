package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/internal/platform/config"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfig(t *testing.T) {
	t.Run("flags override environment defaults", func(t *testing.T) {
		defaults := config.Server{FixturesDir: "./env-fixtures", DatabaseURL: "postgres://env"}
		cfg, err := parseConfig(newFlagSet(), []string{"-dir", "./dump"}, defaults)
		require.NoError(t, err)
		assert.Equal(t, "./dump", cfg.Dir)
		assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	})

	t.Run("missing dir", func(t *testing.T) {
		_, err := parseConfig(newFlagSet(), nil, config.Server{DatabaseURL: "postgres://env"})
		assert.ErrorContains(t, err, "-dir is required")
	})

	t.Run("missing database url", func(t *testing.T) {
		_, err := parseConfig(newFlagSet(), []string{"-dir", "./dump"}, config.Server{})
		assert.ErrorContains(t, err, "-database-url is required")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseConfig(newFlagSet(), []string{"-nope"}, config.Server{})
		assert.Error(t, err)
	})
}
