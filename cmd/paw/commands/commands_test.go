package commands_test

import (
	"testing"

	"github.com/paw-tools/paw/cmd/paw/commands"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebappsCommand(t *testing.T) {
	cmd := commands.NewWebappsCommand()
	assert.Equal(t, "webapps", cmd.Use)
	assert.Equal(t, []string{"webapp"}, cmd.Aliases)
	assert.Equal(t, "Manage webapps", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 7)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "update")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "reload")
	assert.Contains(t, commandNames, "static-files")
}

func TestNewSSLCommand(t *testing.T) {
	cmd := commands.NewSSLCommand()
	assert.Equal(t, "ssl", cmd.Use)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 2)
}

func TestNewLogsCommand(t *testing.T) {
	cmd := commands.NewLogsCommand()
	assert.Equal(t, "logs", cmd.Use)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 2)
}

func TestNewVersionCommand(t *testing.T) {
	cmd := commands.NewVersionCommand("1.0.0", "abc123", "2026-08-23")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestCreateClient(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		viper.Reset()

		_, err := commands.CreateClient()
		require.ErrorIs(t, err, commands.ErrUsernameNotConfigured)
	})

	t.Run("builds a client from settings", func(t *testing.T) {
		viper.Reset()
		viper.Set("user", "alice")
		viper.Set("token", "test-token")

		t.Cleanup(viper.Reset)

		client, err := commands.CreateClient()
		require.NoError(t, err)
		assert.NotNil(t, client.Webapps())
		assert.NotNil(t, client.CPU())
	})
}
