package cli

import (
	"bytes"
	"testing"

	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/orbitlabs/missionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_NoArgsLaunchesBoard(t *testing.T) {
	// Setup: stub out the TUI launcher
	launched := false
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container) error {
		launched = true
		return nil
	}
	t.Cleanup(func() { launchTUIFunc = orig })

	container := newTestContainer(testutil.NewMockTaskRepository())
	t.Cleanup(container.Close)

	root := NewRootCommand(container, "test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.True(t, launched)
}

func TestRootCommand_TUISubcommand(t *testing.T) {
	// Setup
	launched := false
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container) error {
		launched = true
		return nil
	}
	t.Cleanup(func() { launchTUIFunc = orig })

	container := newTestContainer(testutil.NewMockTaskRepository())
	t.Cleanup(container.Close)

	root := NewRootCommand(container, "test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"tui"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.True(t, launched)
}

func TestRootCommand_RegistersAllCommands(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	t.Cleanup(container.Close)

	root := NewRootCommand(container, "test")

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"add", "list", "show", "edit", "done", "rm", "export", "import", "settings", "stats", "watch", "tui"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestRootCommand_Version(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	t.Cleanup(container.Close)

	root := NewRootCommand(container, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}
