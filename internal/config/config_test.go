package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Backend: Backend{
			URL:    "./data/site.db",
			APIKey: "secret",
		},
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(c *Config)
		expectedErr error
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name:        "missing backend url",
			mutate:      func(c *Config) { c.Backend.URL = "" },
			expectedErr: ErrEmptyBackendURL,
		},
		{
			name:        "missing backend api key",
			mutate:      func(c *Config) { c.Backend.APIKey = "" },
			expectedErr: ErrEmptyBackendAPIKey,
		},
		{
			name: "realtime enabled without redis url",
			mutate: func(c *Config) {
				c.Realtime.Enabled = true
				c.Realtime.RedisURL = ""
			},
			expectedErr: ErrRealtimeRedisURLEmpty,
		},
		{
			name: "realtime enabled with redis url",
			mutate: func(c *Config) {
				c.Realtime.Enabled = true
				c.Realtime.RedisURL = "redis://localhost:6379/0"
			},
		},
		{
			name:        "zero webserver port",
			mutate:      func(c *Config) { c.Webserver.Port = 0 },
			expectedErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name:        "missing webserver url",
			mutate:      func(c *Config) { c.Webserver.URL = "" },
			expectedErr: ErrEmptyURL,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(&c)

			err := Validate(c)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + "/")
	assert.Error(t, err)
}

func TestReadConfigMergesEnvOverride(t *testing.T) {
	dir := t.TempDir() + "/"

	tomlContent := `
title = "Site"

[backend]
url = "./data/site.db"
apiKey = "from-toml"

[webserver]
port = 8080
url = "http://localhost:8080"
`

	require.NoError(t, os.WriteFile(dir+"main.toml", []byte(tomlContent), 0o600))

	t.Setenv(EnvConfigJSON, `{"Backend":{"APIKey":"from-env"}}`)

	c, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", c.Backend.APIKey, "env JSON overrides the TOML value")
	assert.Equal(t, "./data/site.db", c.Backend.URL, "untouched values survive the merge")
}

func TestDumpConfig(t *testing.T) {
	out, err := DumpConfig(validConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "apiKey")
}
