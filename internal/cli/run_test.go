package cli

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarytracker/internal/config"
)

func newTestCommand(t *testing.T, input string) (*RunCommand, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
	})

	cfg := &config.Config{
		Journal: config.Journal{Enabled: true, Limit: config.DefaultJournalLimit},
	}
	var out, logs bytes.Buffer
	cmd := NewRunCommand(cfg, "test")
	cmd.in = strings.NewReader(input)
	cmd.out = &out
	cmd.log = &logs
	return cmd, &out, &logs
}

func TestRunCommand_ParseFlags(t *testing.T) {
	t.Run("defaults come from config", func(t *testing.T) {
		cmd, _, _ := newTestCommand(t, "")
		require.NoError(t, cmd.ParseFlags(nil))
		assert.False(t, cmd.Verbose)
		assert.False(t, cmd.NoJournal)
	})

	t.Run("disabled journal in config", func(t *testing.T) {
		cmd := NewRunCommand(&config.Config{Global: config.Global{Verbose: true}}, "test")
		require.NoError(t, cmd.ParseFlags(nil))
		assert.True(t, cmd.Verbose)
		assert.True(t, cmd.NoJournal)
	})

	t.Run("flags override config", func(t *testing.T) {
		cmd, _, _ := newTestCommand(t, "")
		require.NoError(t, cmd.ParseFlags([]string{"-verbose", "-no-journal"}))
		assert.True(t, cmd.Verbose)
		assert.True(t, cmd.NoJournal)
	})
}

func TestRunCommand_RunWithJournal(t *testing.T) {
	cmd, out, _ := newTestCommand(t, "1\nDune\nHerbert\n2\n0\n2\n0\n6\n0\n")
	require.NoError(t, cmd.ParseFlags(nil))

	require.NoError(t, cmd.Run())

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "====== Library Tracker ======\n"))
	assert.Contains(t, output, "6. Show Activity Log")
	assert.Contains(t, output, "\nActivity Log:\n"+
		"1. add #0 \"Dune\" by Herbert [success]\n"+
		"2. borrow #0 \"Dune\" by Herbert [success]\n"+
		"3. borrow #0 \"Dune\" by Herbert [failed]: index 0: book is already borrowed\n")
	assert.True(t, strings.HasSuffix(output, "Exiting Library Tracker. Goodbye!\n"))
}

func TestRunCommand_RunWithoutJournal(t *testing.T) {
	cmd, out, _ := newTestCommand(t, "6\n0\n")
	require.NoError(t, cmd.ParseFlags([]string{"-no-journal"}))

	require.NoError(t, cmd.Run())

	assert.NotContains(t, out.String(), "Show Activity Log")
	assert.Contains(t, out.String(), "Invalid option.")
}

func TestRunCommand_VerboseLogging(t *testing.T) {
	t.Run("verbose writes diagnostics", func(t *testing.T) {
		cmd, out, logs := newTestCommand(t, "0\n")
		require.NoError(t, cmd.ParseFlags([]string{"-verbose"}))

		require.NoError(t, cmd.Run())

		assert.Contains(t, logs.String(), "Starting Library Tracker vtest")
		assert.Contains(t, logs.String(), "Activity journal session")
		assert.NotContains(t, out.String(), "Starting Library Tracker")
	})

	t.Run("quiet by default", func(t *testing.T) {
		cmd, _, logs := newTestCommand(t, "0\n")
		require.NoError(t, cmd.ParseFlags(nil))

		require.NoError(t, cmd.Run())

		assert.Empty(t, logs.String())
	})
}
