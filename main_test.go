package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonlite/internal/config"
	"github.com/mcncl/jsonlite/internal/errors"
	"github.com/mcncl/jsonlite/internal/parser"
)

func testContext(cfg *config.Config) *Context {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Context{
		Config: cfg,
		Logger: newLogger(cfg),
	}
}

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "test_input_*.json")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(tmpFile.Name()) })

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

func TestRun_SimpleJSON(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = writeTempJSON(t, `{"name": "John", "age": 30, "active": true}`)
	CLI.Output = ""

	err := run(testContext(nil))
	require.NoError(t, err)
}

func TestRun_WithOutputFile(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = writeTempJSON(t, `{"id": 1, "tags": ["a", "b"]}`)

	tmpOutput, err := os.CreateTemp("", "test_output_*.txt")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpOutput.Name()) }()
	require.NoError(t, tmpOutput.Close())
	CLI.Output = tmpOutput.Name()

	err = run(testContext(nil))
	require.NoError(t, err)

	written, err := os.ReadFile(tmpOutput.Name())
	require.NoError(t, err)
	outline := string(written)
	assert.Contains(t, outline, "object (2 keys)")
	assert.Contains(t, outline, "id: int 1")
	assert.Contains(t, outline, "tags: array (2 items)")
}

func TestRun_RendersWithConfigOptions(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = writeTempJSON(t, `{"user_name": {"first_name": "Ada"}}`)

	tmpOutput, err := os.CreateTemp("", "test_output_*.txt")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpOutput.Name()) }()
	require.NoError(t, tmpOutput.Close())
	CLI.Output = tmpOutput.Name()

	cfg := config.NewConfig()
	cfg.Indent = 4
	cfg.KeyStyle = "camel"
	err = run(testContext(cfg))
	require.NoError(t, err)

	written, err := os.ReadFile(tmpOutput.Name())
	require.NoError(t, err)
	assert.Contains(t, string(written), "    userName: object (1 key)")
	assert.Contains(t, string(written), "        firstName: string \"Ada\"")
}

func TestRun_SampleDocument(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = "testdata/samples/complex.json"

	tmpOutput, err := os.CreateTemp("", "test_output_*.txt")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpOutput.Name()) }()
	require.NoError(t, tmpOutput.Close())
	CLI.Output = tmpOutput.Name()

	err = run(testContext(nil))
	require.NoError(t, err)

	written, err := os.ReadFile(tmpOutput.Name())
	require.NoError(t, err)
	outline := string(written)
	assert.Contains(t, outline, "object (7 keys)")
	assert.Contains(t, outline, "ratio: float 0.5")
	assert.Contains(t, outline, "parent: null")
	assert.Contains(t, outline, `notes: string "escaped \"quotes\" and a newline\nhere"`)
}

func TestRun_InvalidJSON(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = writeTempJSON(t, `{"a": 1,}`)
	CLI.Output = ""

	err := run(testContext(nil))
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeParsing, appErr.Type)

	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, strings.Contains(parseErr.Error(), "^"),
		"parse error should carry the caret snippet")
}

func TestRun_MissingFile(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = "/nonexistent/path/to/file.json"
	CLI.Output = ""

	err := run(testContext(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrFileNotFound)
}

func TestNewLogger_DebugLevel(t *testing.T) {
	cfg := config.NewConfig()
	logger := newLogger(cfg)
	assert.Equal(t, "warning", logger.GetLevel().String())

	cfg.Dev.Debug = true
	logger = newLogger(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}

func TestWriteOutput_Stdout(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Output = ""

	err := writeOutput("object (0 keys)\n")
	assert.NoError(t, err)
}
