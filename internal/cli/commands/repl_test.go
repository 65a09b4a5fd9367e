package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalens/schemalens/pkg/dialects/standard"
)

func newREPLTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd, out, errOut
}

func TestHandleDotCommandQuit(t *testing.T) {
	cmd, _, _ := newREPLTestCmd()
	cfg := standard.New()

	for _, line := range []string{".quit", ".exit"} {
		quit, _ := handleDotCommand(cmd, cfg, line, "table")
		assert.True(t, quit, "%s should exit", line)
	}
}

func TestHandleDotCommandHelp(t *testing.T) {
	cmd, out, _ := newREPLTestCmd()

	quit, _ := handleDotCommand(cmd, standard.New(), ".help", "table")
	assert.False(t, quit)
	assert.Contains(t, out.String(), ".dialect")
	assert.Contains(t, out.String(), ".tokens")
}

func TestHandleDotCommandDialectSwitch(t *testing.T) {
	cmd, out, _ := newREPLTestCmd()

	quit, next := handleDotCommand(cmd, standard.New(), ".dialect mysql", "table")
	assert.False(t, quit)
	require.NotNil(t, next)
	assert.Equal(t, "mysql", next.Name)
	assert.Contains(t, out.String(), "Switched to dialect: mysql")
}

func TestHandleDotCommandDialectShowsActive(t *testing.T) {
	cmd, out, _ := newREPLTestCmd()
	cfg := standard.New()

	_, next := handleDotCommand(cmd, cfg, ".dialect", "table")
	assert.Equal(t, cfg, next)
	assert.Contains(t, out.String(), "Active dialect:")
}

func TestHandleDotCommandDialectUnknown(t *testing.T) {
	cmd, _, errOut := newREPLTestCmd()
	cfg := standard.New()

	_, next := handleDotCommand(cmd, cfg, ".dialect db2", "table")
	assert.Equal(t, cfg, next, "active dialect should not change")
	assert.Contains(t, errOut.String(), "unknown dialect")
}

func TestHandleDotCommandTokens(t *testing.T) {
	cmd, out, _ := newREPLTestCmd()

	quit, _ := handleDotCommand(cmd, standard.New(), ".tokens SELECT 1", "table")
	assert.False(t, quit)
	assert.Contains(t, out.String(), "SELECT")
	assert.Contains(t, out.String(), "INT")
}

func TestHandleDotCommandUnknown(t *testing.T) {
	cmd, _, errOut := newREPLTestCmd()

	quit, _ := handleDotCommand(cmd, standard.New(), ".bogus", "table")
	assert.False(t, quit)
	assert.Contains(t, errOut.String(), "Unknown command")
}
