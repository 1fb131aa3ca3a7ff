// Package cli: cli_test.go drives the cobra command tree end to end with
// in-memory stdin/stdout. No terminal is involved: lipgloss sees a buffer
// and renders plain text.
package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/guessing-game/internal/config"
	"github.com/shinji-kodama/guessing-game/internal/feedback"
	"github.com/shinji-kodama/guessing-game/internal/model"
)

// runCLI executes the root command with args and stdin, returning stdout,
// stderr and the command error. Each call runs in a fresh temp directory so
// no config file or .env from the repository leaks in.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvLogLevel, "")

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// sweep returns input lines counting up from lo to hi inclusive. Fed to a
// game, it is guaranteed to hit any secret in that range.
func sweep(lo, hi int) string {
	var b strings.Builder
	for i := lo; i <= hi; i++ {
		fmt.Fprintf(&b, "%d\n", i)
	}
	return b.String()
}

// summaryOf extracts the result from the last JSON event line.
func summaryOf(t *testing.T, stdout string) *model.Result {
	t.Helper()

	var last feedback.Event
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		last = feedback.Event{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &last), "line: %s", scanner.Text())
	}
	require.Equal(t, feedback.EventSummary, last.Event)
	require.NotNil(t, last.Result)
	return last.Result
}

// TestPlay_TextTranscript verifies the human-readable transcript. With
// bounds 1-2 the half-open draw can only produce 1.
func TestPlay_TextTranscript(t *testing.T) {
	stdout, stderr, err := runCLI(t, "abc\n5\n2\n1\n", "play", "--min", "1", "--max", "2")
	require.NoError(t, err)

	want := "Guess the number!\n" +
		"Pick a number between 1 and 2.\n" +
		"Please input your guess.\n" +
		"Please input your guess.\n" +
		"Guess value must be between 1 and 2, obtained 5.\n" +
		"Please input your guess.\n" +
		"You guessed: 2\n" +
		"Too big!\n" +
		"Please input your guess.\n" +
		"You guessed: 1\n" +
		"You win!\n" +
		"Found 1 in 2 guesses.\n"
	assert.Equal(t, want, stdout)
	assert.Empty(t, stderr)
}

// TestRoot_PlaysWithoutSubcommand verifies that the bare root command
// plays a game.
func TestRoot_PlaysWithoutSubcommand(t *testing.T) {
	stdout, _, err := runCLI(t, "1\n", "--min", "1", "--max", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "You win!")
}

// TestPlay_JSONSweepFindsSecret verifies that sweeping 1..99 always wins,
// that the secret is never 100, and that the attempt count equals the
// secret (every number below it was a "less").
func TestPlay_JSONSweepFindsSecret(t *testing.T) {
	stdout, _, err := runCLI(t, sweep(1, 100), "play", "--json")
	require.NoError(t, err)

	res := summaryOf(t, stdout)
	assert.GreaterOrEqual(t, res.Secret, 1)
	assert.LessOrEqual(t, res.Secret, 99)
	assert.Equal(t, res.Secret, res.Attempts)
	assert.Zero(t, res.Rejected)
	assert.NotEmpty(t, res.SessionID)
}

// TestPlay_SeedIsReproducible verifies that the same seed yields the same
// secret across runs.
func TestPlay_SeedIsReproducible(t *testing.T) {
	first, _, err := runCLI(t, sweep(1, 99), "play", "--json", "--seed", "42")
	require.NoError(t, err)
	second, _, err := runCLI(t, sweep(1, 99), "play", "--json", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, summaryOf(t, first).Secret, summaryOf(t, second).Secret)
}

// TestPlay_RevealEvent verifies that --reveal emits the secret before the
// first prompt and that the revealed value is the one that wins.
func TestPlay_RevealEvent(t *testing.T) {
	stdout, _, err := runCLI(t, sweep(1, 9), "play", "--json", "--reveal", "--max", "10")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	var reveal feedback.Event
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &reveal))
	require.Equal(t, feedback.EventReveal, reveal.Event)
	require.NotNil(t, reveal.Value)

	assert.Equal(t, *reveal.Value, summaryOf(t, stdout).Secret)
}

// TestPlay_JSONDiagnosticGoesToStderr verifies that stdout stays pure
// NDJSON when a range failure prints its diagnostic.
func TestPlay_JSONDiagnosticGoesToStderr(t *testing.T) {
	stdout, stderr, err := runCLI(t, "500\n1\n", "play", "--json", "--max", "2")
	require.NoError(t, err)

	assert.Contains(t, stderr, "obtained 500")
	assert.NotContains(t, stdout, "Guess value must be")
	summaryOf(t, stdout)
}

// TestPlay_EndOfInput verifies that closing stdin before the secret is found
// is fatal with ExitInputFailed.
func TestPlay_EndOfInput(t *testing.T) {
	_, _, err := runCLI(t, "", "play")
	require.Error(t, err)
	assert.Equal(t, model.ExitInputFailed, ExitCodeOf(err))
}

// TestPlay_InvalidRange verifies that an empty secret range is rejected
// before the game starts.
func TestPlay_InvalidRange(t *testing.T) {
	stdout, _, err := runCLI(t, "5\n", "play", "--min", "5", "--max", "5")
	require.Error(t, err)
	assert.Equal(t, model.ExitConfigInvalid, ExitCodeOf(err))
	assert.Empty(t, stdout, "no game output before validation passes")
}

// TestPlay_RangeBeyondTypeableGuesses verifies that bounds no player could
// type (guesses are 32-bit) are rejected before the game starts.
func TestPlay_RangeBeyondTypeableGuesses(t *testing.T) {
	stdout, _, err := runCLI(t, "", "play", "--min", "3000000000", "--max", "3000000010")
	require.Error(t, err)
	assert.Equal(t, model.ExitConfigInvalid, ExitCodeOf(err))
	assert.Contains(t, err.Error(), "min: must be between")
	assert.Empty(t, stdout)
}

// TestPlay_ConfigFile verifies that an explicit config file sets the range
// and that flags override it.
func TestPlay_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min: 3\nmax: 4\n"), 0o644))

	stdout, _, err := runCLI(t, "3\n", "play", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pick a number between 3 and 4.")

	// Flags win over the file: bounds 5-6 can only draw 5.
	stdout, _, err = runCLI(t, "5\n", "play", "--config", path, "--min", "5", "--max", "6")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pick a number between 5 and 6.")
}

// TestPlay_MissingConfigFile verifies the exit code for a bad --config path.
func TestPlay_MissingConfigFile(t *testing.T) {
	_, _, err := runCLI(t, "", "play", "--config", "/nonexistent/game.yaml")
	require.Error(t, err)
	assert.Equal(t, model.ExitConfigInvalid, ExitCodeOf(err))
}

// TestPlay_VerboseLogsToStderr verifies that --verbose writes debug logs to
// stderr and leaves stdout untouched by log lines.
func TestPlay_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := runCLI(t, "x\n1\n", "play", "--verbose", "--max", "2")
	require.NoError(t, err)

	assert.Contains(t, stderr, "rejected: not a number")
	assert.Contains(t, stderr, "game finished")
	assert.NotContains(t, stdout, "game finished")
}

// TestConfigCommand_Text verifies the default configuration table.
func TestConfigCommand_Text(t *testing.T) {
	stdout, _, err := runCLI(t, "", "config")
	require.NoError(t, err)

	want := "SOURCE     defaults\n" +
		"RANGE      1-100\n" +
		"SECRET     1-99\n" +
		"SEED       random\n" +
		"REVEAL     false\n" +
		"LOG LEVEL  info\n"
	assert.Equal(t, want, stdout)
}

// TestConfigCommand_JSON verifies the JSON output of a JSONC config file.
func TestConfigCommand_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
  // reproducible demo
  "seed": 9,
}`), 0o644))

	stdout, _, err := runCLI(t, "", "config", "--json", "--config", path)
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, uint64(9), got.Seed)
	assert.Equal(t, 100, got.Max)
	assert.Equal(t, path, got.Source)
}

// TestConfigCommand_Invalid verifies that an invalid file is reported.
func TestConfigCommand_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min: 10\nmax: 1\n"), 0o644))

	_, _, err := runCLI(t, "", "config", "--config", path)
	require.Error(t, err)
	assert.Equal(t, model.ExitConfigInvalid, ExitCodeOf(err))
}

// TestExitCodeOf covers nil, CLIError (also when wrapped) and plain errors.
func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, model.ExitSuccess, ExitCodeOf(nil))
	assert.Equal(t, model.ExitGeneralError, ExitCodeOf(errors.New("boom")))

	cliErr := model.NewCLIError(model.ExitInputFailed, "failed to read line")
	assert.Equal(t, model.ExitInputFailed, ExitCodeOf(cliErr))
	assert.Equal(t, model.ExitInputFailed, ExitCodeOf(fmt.Errorf("wrapped: %w", cliErr)))
}

// TestPrintError verifies both output formats.
func TestPrintError(t *testing.T) {
	err := model.WrapCLIError(model.ExitInputFailed, "failed to read line", errors.New("EOF"))

	t.Run("text", func(t *testing.T) {
		jsonOutput = false
		var buf bytes.Buffer
		printError(&buf, err)
		assert.Equal(t, "Error: failed to read line: EOF\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		jsonOutput = true
		t.Cleanup(func() { jsonOutput = false })

		var buf bytes.Buffer
		printError(&buf, err)
		assert.JSONEq(t, `{"error":{"message":"failed to read line","detail":"EOF"}}`, buf.String())
	})

	t.Run("plain error", func(t *testing.T) {
		jsonOutput = false
		var buf bytes.Buffer
		printError(&buf, errors.New("unknown flag: --nope"))
		assert.Equal(t, "Error: unknown flag: --nope\n", buf.String())
	})
}

// TestFormatSeed verifies the display form of seeds.
func TestFormatSeed(t *testing.T) {
	assert.Equal(t, "random", FormatSeed(0))
	assert.Equal(t, "42", FormatSeed(42))
}
