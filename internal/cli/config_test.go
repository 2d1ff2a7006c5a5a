package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/scalyr-tool/internal/config"
)

func TestConfigShowCmd_Run(t *testing.T) {
	t.Run("outputs config in text format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("https://eu.scalyr.com")
		cmd := &ConfigShowCmd{}

		require.NoError(t, cmd.Run(globals))

		output := stdout.String()
		assert.Contains(t, output, "Current Configuration:")
		assert.Contains(t, output, "server:   https://eu.scalyr.com")
		assert.Contains(t, output, "read_logs:    env scalyr_readlog_token")
		assert.Contains(t, output, "Defaults:")
		assert.NotContains(t, output, "read-logs-token", "token values are never printed")
	})

	t.Run("outputs config as JSON", func(t *testing.T) {
		globals, stdout, _ := testGlobals("")
		globals.Env = fakeEnv(nil)
		globals.Config.Tokens.WriteConfig = "from-file"
		cmd := &ConfigShowCmd{JSON: true}

		require.NoError(t, cmd.Run(globals))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))

		assert.Equal(t, "config", result["type"])
		assert.Equal(t, "https://www.scalyr.com", result["server"])
		tokens := result["tokens"].(map[string]interface{})
		assert.Equal(t, "not set", tokens["read_logs"])
		assert.Equal(t, "config file", tokens["write_config"])
		assert.Contains(t, result, "defaults")
	})

	t.Run("token flag takes precedence", func(t *testing.T) {
		globals, stdout, _ := testGlobals("")
		globals.Token = "secret"
		require.NoError(t, (&ConfigShowCmd{}).Run(globals))
		assert.Contains(t, stdout.String(), "read_logs:    --token")
		assert.NotContains(t, stdout.String(), "secret")
	})
}

func TestConfigPathCmd_Run(t *testing.T) {
	t.Run("outputs path info in text format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("")
		require.NoError(t, (&ConfigPathCmd{}).Run(globals))

		output := stdout.String()
		// Either shows the path or says no config found
		assert.True(t, strings.Contains(output, "Config file:") || strings.Contains(output, "No configuration file found"))
	})

	t.Run("lists every searched location when nothing is found", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if config.ConfigFile() != "" {
			t.Skip("a config file exists on this machine")
		}
		globals, stdout, _ := testGlobals("")
		require.NoError(t, (&ConfigPathCmd{}).Run(globals))

		output := stdout.String()
		for _, p := range config.SearchPaths() {
			assert.Contains(t, output, "  "+p+"\n")
		}
		assert.Contains(t, output, "/etc/scalyr/config.yaml")
	})

	t.Run("outputs path as JSON", func(t *testing.T) {
		globals, stdout, _ := testGlobals("")
		require.NoError(t, (&ConfigPathCmd{JSON: true}).Run(globals))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		assert.Equal(t, "config_path", result["type"])
		assert.Contains(t, result, "path")
		searched, ok := result["searched"].([]interface{})
		require.True(t, ok)
		assert.Len(t, searched, len(config.SearchPaths()))
		assert.Contains(t, searched, "/etc/scalyr/scalyr.yml")
	})
}

func TestConfigGenerateCmd_Run(t *testing.T) {
	globals, stdout, _ := testGlobals("")
	require.NoError(t, (&ConfigGenerateCmd{}).Run(globals))

	output := stdout.String()
	assert.Contains(t, output, "# scalyr configuration file")
	assert.Contains(t, output, "server: https://www.scalyr.com")
	assert.Contains(t, output, "tokens:")
	assert.Contains(t, output, "tail_lines: 10")
}
