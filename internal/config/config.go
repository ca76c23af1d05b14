package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	GitRemote     string   `mapstructure:"git_remote"`
	PrimaryBranch string   `mapstructure:"primary_branch"`
	SbtLauncher   string   `mapstructure:"sbt_launcher"`
	DocsScript    string   `mapstructure:"docs_script"`
	DocsSiteDir   string   `mapstructure:"docs_site_dir"`
	PagesBranch   string   `mapstructure:"pages_branch"`
	SparkVersions []string `mapstructure:"spark_versions"`
	GithubToken   string   `mapstructure:"github_token"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		GitRemote:     "git@github.com:graphframes/graphframes.git",
		PrimaryBranch: "master",
		SbtLauncher:   "./build/sbt",
		DocsScript:    "./dev/build-docs.sh",
		DocsSiteDir:   "docs/_site",
		PagesBranch:   "gh-pages",
		SparkVersions: []string{"3.0.3", "3.1.3", "3.2.3", "3.3.2"},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := ValidateRemoteURL(c.GitRemote); err != nil {
		return fmt.Errorf("invalid git_remote: %w", err)
	}
	if err := validateRefName("primary_branch", c.PrimaryBranch); err != nil {
		return err
	}
	if err := validateRefName("pages_branch", c.PagesBranch); err != nil {
		return err
	}
	if err := validateRepoPath("sbt_launcher", c.SbtLauncher); err != nil {
		return err
	}
	if err := validateRepoPath("docs_script", c.DocsScript); err != nil {
		return err
	}
	if err := validateRepoPath("docs_site_dir", c.DocsSiteDir); err != nil {
		return err
	}
	if len(c.SparkVersions) == 0 {
		return fmt.Errorf("spark_versions cannot be empty")
	}
	for _, v := range c.SparkVersions {
		if err := ValidateSparkVersion(v); err != nil {
			return fmt.Errorf("invalid spark_versions entry: %w", err)
		}
	}
	// Token is optional - only validate if provided
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	return nil
}

// ValidateRemoteURL accepts ssh, https, git and plain-path remotes.
func ValidateRemoteURL(remote string) error {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return fmt.Errorf("remote cannot be empty")
	}
	validRemote := regexp.MustCompile(`^(https://|ssh://|git://|file://|git@|[./~]|/)?[^\s]+$`)
	if strings.ContainsAny(remote, " \t\n") || !validRemote.MatchString(remote) {
		return fmt.Errorf("invalid remote format: %s", remote)
	}
	return nil
}

// ValidateSparkVersion guards values interpolated into build invocations.
func ValidateSparkVersion(version string) error {
	if version == "" {
		return fmt.Errorf("spark version cannot be empty")
	}
	validVersion := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)
	if !validVersion.MatchString(version) {
		return fmt.Errorf("invalid spark version format: %s", version)
	}
	return nil
}

// ValidateGitHubToken validates GitHub token format (exported for reuse)
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	prefixedPAT := regexp.MustCompile(`^ghp_[a-zA-Z0-9]{36,}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!prefixedPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

func validateRefName(key, name string) error {
	if name == "" {
		return fmt.Errorf("%s cannot be empty", key)
	}
	validRef := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._/-]*$`)
	if !validRef.MatchString(name) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid %s: %s", key, name)
	}
	return nil
}

func validateRepoPath(key, path string) error {
	if path == "" {
		return fmt.Errorf("%s cannot be empty", key)
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("%s contains invalid path traversal", key)
	}
	if strings.HasPrefix(path, "/") {
		return fmt.Errorf("%s must be relative to the repository root", key)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".releasekit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Configure environment variables
	viper.SetEnvPrefix("RELEASEKIT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	// BindEnv allows multiple env vars - it will check them in order
	bindings := map[string][]string{
		"git_remote":     {"RELEASEKIT_GIT_REMOTE"},
		"primary_branch": {"RELEASEKIT_PRIMARY_BRANCH"},
		"sbt_launcher":   {"RELEASEKIT_SBT_LAUNCHER"},
		"docs_script":    {"RELEASEKIT_DOCS_SCRIPT"},
		"docs_site_dir":  {"RELEASEKIT_DOCS_SITE_DIR"},
		"pages_branch":   {"RELEASEKIT_PAGES_BRANCH"},
		"spark_versions": {"RELEASEKIT_SPARK_VERSIONS"},
		"github_token":   {"GITHUB_TOKEN", "RELEASEKIT_GITHUB_TOKEN"},
	}
	for key, envs := range bindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("git_remote", defaults.GitRemote)
	viper.SetDefault("primary_branch", defaults.PrimaryBranch)
	viper.SetDefault("sbt_launcher", defaults.SbtLauncher)
	viper.SetDefault("docs_script", defaults.DocsScript)
	viper.SetDefault("docs_site_dir", defaults.DocsSiteDir)
	viper.SetDefault("pages_branch", defaults.PagesBranch)
	viper.SetDefault("spark_versions", defaults.SparkVersions)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
