package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "seed-chart", "import-chart", "import-statement", "summary", "rebuild-balances", "token"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("workplace"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("user"))
}

func TestCommands_RequireWorkplace(t *testing.T) {
	for _, args := range [][]string{
		{"seed-chart"},
		{"rebuild-balances"},
		{"summary", "--session", "rs-1"},
		{"import-chart", "chart.csv"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "--workplace is required", args)
	}
}

func TestCommands_ArgumentValidation(t *testing.T) {
	_, err := execute(t, "migrate", "sideways")
	assert.Error(t, err)

	_, err = execute(t, "import-chart")
	assert.Error(t, err)

	_, err = execute(t, "summary", "--workplace", "wp-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session")

	_, err = execute(t, "import-chart", "chart.csv", "--workplace", "wp-1", "--mode", "GUESS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestImportChart_MissingFile(t *testing.T) {
	_, err := execute(t, "import-chart", "does-not-exist.csv", "--workplace", "wp-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening does-not-exist.csv")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-that-is-long-enough")

	out, err := execute(t, "token", "--user", "user-7", "--ttl", "1h")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3, "expected a compact JWT")

	_, err = execute(t, "token", "--ttl", "-1h")
	assert.Error(t, err)
}
