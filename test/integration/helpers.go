//go:build integration

package integration

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
	"github.com/fivetwenty-io/careapi/pkg/careclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BaseURL  string
	Email    string
	Password string
	APIKey   string
	CLIPath  string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:  os.Getenv("CAREAPI_INTEGRATION_BASE_URL"),
		Email:    os.Getenv("CAREAPI_INTEGRATION_EMAIL"),
		Password: os.Getenv("CAREAPI_INTEGRATION_PASSWORD"),
		APIKey:   os.Getenv("CAREAPI_INTEGRATION_API_KEY"),
		CLIPath:  getCLIPath(),
		Verbose:  os.Getenv("CAREAPI_INTEGRATION_VERBOSE") == "true",
	}
}

func getCLIPath() string {
	if path := os.Getenv("CAREAPI_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../careapi", "./careapi"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "careapi"
}

// SkipIfMissingConfig skips the test when no live endpoint or credential is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.BaseURL == "" {
		t.Skip("CAREAPI_INTEGRATION_BASE_URL not set, skipping integration test")
	}

	if config.APIKey == "" && (config.Email == "" || config.Password == "") {
		t.Skip("no integration credentials set, skipping integration test")
	}
}

// SkipIfMissingCLI skips the test when the careapi binary cannot be found.
func (config *TestConfig) SkipIfMissingCLI(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.CLIPath); err != nil {
		t.Skipf("careapi binary not found at %s, skipping integration test", config.CLIPath)
	}
}

// NewAuthenticatedClient returns a client holding a working credential,
// logging in with email and password when no API key is configured.
func (config *TestConfig) NewAuthenticatedClient(t *testing.T) careapi.Client {
	t.Helper()

	client := careclient.NewWithAPIKey(config.BaseURL, config.APIKey)
	if config.APIKey != "" {
		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Auth().Login(ctx, &careapi.LoginRequest{Email: config.Email, Password: config.Password})
	require.NoError(t, err)

	client.SetAPIKey(resp.AccessToken)

	return client
}

// CommandRunner provides utilities for running careapi commands
type CommandRunner struct {
	config    *TestConfig
	t         *testing.T
	configDir string
}

// NewCommandRunner creates a new command runner with an isolated config file.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config:    config,
		t:         t,
		configDir: t.TempDir(),
	}
}

// Run executes a careapi command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{
		"--config", runner.configDir + "/config.yml",
		"--api", runner.config.BaseURL,
	}, args...)

	cmd := exec.Command(runner.config.CLIPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.CLIPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// Login authenticates the CLI, storing the token in the runner's config file.
func (runner *CommandRunner) Login() error {
	if runner.config.Email == "" || runner.config.Password == "" {
		return fmt.Errorf("email and password are required for CLI login")
	}

	_, stderr, err := runner.Run("login", "--email", runner.config.Email, "--password", runner.config.Password)
	if err != nil {
		return fmt.Errorf("failed to log in: %s", stderr)
	}

	return nil
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
