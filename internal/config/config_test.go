package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("required and optional values", func(t *testing.T) {
		t.Setenv("DB_NAME", "golf.db")
		t.Setenv("PORT", "8080")
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("SLACK_CHANNEL_ID", "C123")
		t.Setenv("SLACK_SIGNING_SECRET", "")
		t.Setenv("TURSO_PRIMARY_URL", "libsql://golf.turso.io")
		t.Setenv("TURSO_AUTH_TOKEN", "secret")
		t.Setenv("GCP_PROJECT", "golf-project")

		cfg, err := load()
		require.NoError(t, err)
		assert.Equal(t, "golf.db", cfg.DBName)
		assert.Equal(t, "8080", cfg.Port)
		assert.True(t, cfg.Slack.Enabled())
		assert.Empty(t, cfg.Slack.SigningSecret)
		assert.Equal(t, "libsql://golf.turso.io", cfg.Turso.PrimaryURL)
		assert.Equal(t, "secret", cfg.Turso.AuthToken)
		assert.Equal(t, "golf-project", cfg.ProjectID)
	})

	t.Run("missing required values", func(t *testing.T) {
		t.Setenv("DB_NAME", "")
		t.Setenv("PORT", "")

		_, err := load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_NAME")
		assert.Contains(t, err.Error(), "PORT")
	})

	t.Run("slack disabled without channel", func(t *testing.T) {
		t.Setenv("DB_NAME", "golf.db")
		t.Setenv("PORT", "8080")
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("SLACK_CHANNEL_ID", "")

		cfg, err := load()
		require.NoError(t, err)
		assert.False(t, cfg.Slack.Enabled())
	})
}
