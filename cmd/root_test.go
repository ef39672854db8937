package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jralvarenga/r1go.dev/internal/config"
)

func withConfigFile(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	prev := cfgFile
	cfgFile = path
	t.Cleanup(func() {
		cfgFile = prev
		appConfig = config.Config{}
	})
}

func TestInitializeConfigFromFile(t *testing.T) {
	withConfigFile(t, "siteTitle: Test site\nbaseURL: https://example.com\noutputDir: dist\n")

	require.NoError(t, initializeConfig(rootCmd))
	assert.Equal(t, "Test site", appConfig.SiteTitle)
	assert.Equal(t, "https://example.com", appConfig.BaseURL)
	assert.Equal(t, "dist", appConfig.OutputDir)
	assert.Equal(t, config.DefaultContentDir, appConfig.ContentDir)
	assert.Equal(t, config.DefaultPostsDir, appConfig.PostsDir)
}

func TestInitializeConfigEnvOverridesFile(t *testing.T) {
	withConfigFile(t, "siteTitle: From file\n")
	t.Setenv("R1GO_SITETITLE", "From env")

	require.NoError(t, initializeConfig(rootCmd))
	assert.Equal(t, "From env", appConfig.SiteTitle)
}

func TestInitializeConfigRejectsUnsafeOutput(t *testing.T) {
	withConfigFile(t, "outputDir: content\n")
	assert.Error(t, initializeConfig(rootCmd))
}

func TestInitializeConfigMissingExplicitFile(t *testing.T) {
	prev := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { cfgFile = prev })

	assert.Error(t, initializeConfig(rootCmd))
}

func TestInitializeConfigOutputFlag(t *testing.T) {
	withConfigFile(t, "outputDir: dist\n")
	flag := rootCmd.PersistentFlags().Lookup("output")
	require.NotNil(t, flag)
	require.NoError(t, flag.Value.Set("site-out"))
	flag.Changed = true
	t.Cleanup(func() {
		_ = flag.Value.Set("")
		flag.Changed = false
	})

	// Subcommands resolve the flag through the root command.
	require.NoError(t, initializeConfig(buildCmd))
	assert.Equal(t, "site-out", appConfig.OutputDir)
}
