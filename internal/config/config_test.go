package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "git@github.com:graphframes/graphframes.git", cfg.GitRemote)
	require.Equal(t, "master", cfg.PrimaryBranch)
	require.Equal(t, "./build/sbt", cfg.SbtLauncher)
	require.Equal(t, "./dev/build-docs.sh", cfg.DocsScript)
	require.Equal(t, "docs/_site", cfg.DocsSiteDir)
	require.Equal(t, "gh-pages", cfg.PagesBranch)
	require.Equal(t, []string{"3.0.3", "3.1.3", "3.2.3", "3.3.2"}, cfg.SparkVersions)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "empty remote", mutate: func(c *Config) { c.GitRemote = "" }, wantErr: "git_remote"},
		{name: "remote with spaces", mutate: func(c *Config) { c.GitRemote = "git@host: path" }, wantErr: "git_remote"},
		{name: "empty primary branch", mutate: func(c *Config) { c.PrimaryBranch = "" }, wantErr: "primary_branch"},
		{name: "primary branch traversal", mutate: func(c *Config) { c.PrimaryBranch = "ma..ster" }, wantErr: "primary_branch"},
		{name: "pages branch leading dash", mutate: func(c *Config) { c.PagesBranch = "-pages" }, wantErr: "pages_branch"},
		{name: "launcher traversal", mutate: func(c *Config) { c.SbtLauncher = "../sbt" }, wantErr: "path traversal"},
		{name: "absolute site dir", mutate: func(c *Config) { c.DocsSiteDir = "/var/site" }, wantErr: "relative"},
		{name: "no spark versions", mutate: func(c *Config) { c.SparkVersions = nil }, wantErr: "spark_versions"},
		{name: "bad spark version", mutate: func(c *Config) { c.SparkVersions = []string{"3.3.2; rm"} }, wantErr: "spark"},
		{name: "short token", mutate: func(c *Config) { c.GithubToken = "abc" }, wantErr: "github_token"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})
}

func TestValidateRemoteURL(t *testing.T) {
	valid := []string{
		"git@github.com:graphframes/graphframes.git",
		"https://github.com/graphframes/graphframes.git",
		"ssh://git@github.com/graphframes/graphframes.git",
		"/tmp/remotes/graphframes.git",
		"./local/remote",
	}
	for _, remote := range valid {
		require.NoError(t, ValidateRemoteURL(remote), remote)
	}
	invalid := []string{"", "   ", "git@github.com: spaced"}
	for _, remote := range invalid {
		require.Error(t, ValidateRemoteURL(remote), remote)
	}
}

func TestValidateSparkVersion(t *testing.T) {
	for _, v := range []string{"3.3.2", "4.0.0-preview1", "3.5.1_hotfix"} {
		require.NoError(t, ValidateSparkVersion(v), v)
	}
	for _, v := range []string{"", "-Dspark", "3.3.2; rm -rf /", "3 3"} {
		require.Error(t, ValidateSparkVersion(v), v)
	}
}

func TestLoadConfig(t *testing.T) {
	// Keep the host environment out of these runs.
	isolate := func(t *testing.T) {
		t.Helper()
		viper.Reset()
		t.Cleanup(viper.Reset)
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("RELEASEKIT_GITHUB_TOKEN", "")
	}
	t.Run("Should fall back to defaults without file or env", func(t *testing.T) {
		isolate(t)
		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, DefaultConfig().GitRemote, cfg.GitRemote)
		require.Equal(t, DefaultConfig().SparkVersions, cfg.SparkVersions)
	})
	t.Run("Should honor prefixed environment overrides", func(t *testing.T) {
		isolate(t)
		t.Setenv("RELEASEKIT_PRIMARY_BRANCH", "main")
		t.Setenv("RELEASEKIT_GIT_REMOTE", "git@github.com:acme/fork.git")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "main", cfg.PrimaryBranch)
		require.Equal(t, "git@github.com:acme/fork.git", cfg.GitRemote)
	})
	t.Run("Should split comma-separated spark versions from the environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("RELEASEKIT_SPARK_VERSIONS", "3.5.1,4.0.0")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, []string{"3.5.1", "4.0.0"}, cfg.SparkVersions)
	})
	t.Run("Should reject invalid environment values", func(t *testing.T) {
		isolate(t)
		t.Setenv("RELEASEKIT_PRIMARY_BRANCH", "bad..branch")
		_, err := LoadConfig()
		require.Error(t, err)
		require.Contains(t, err.Error(), "config validation failed")
	})
}
