package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: test-token
roadmap:
  endpoint: http://localhost:8081
llm:
  model: llama-3.1-8b-instant
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:studyping.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Roadmap.Timeout)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.Equal(t, time.Second, cfg.Schedule.SendDelay)
	assert.Equal(t, 20, cfg.Schedule.TopicsLimit)
	assert.False(t, cfg.WhatsAppEnabled())
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
database:
  dsn: "file:test.db"
telegram:
  token: tg-token
  timeout: 5s
twilio:
  account_sid: AC123
  auth_token: secret
  from_number: "whatsapp:+14155238886"
roadmap:
  endpoint: http://content:8081
  timeout: 12s
llm:
  endpoint: https://api.groq.com/openai/v1
  api_key: gsk-test
  model: llama-3.1-8b-instant
  temperature: 0.5
  max_tokens: 400
schedule:
  send_delay: 2s
  topics_limit: 10
app:
  web_url: https://study.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "file:test.db", cfg.Database.DSN)
	assert.Equal(t, 5*time.Second, cfg.Telegram.Timeout)
	assert.True(t, cfg.WhatsAppEnabled())
	assert.Equal(t, "AC123", cfg.Twilio.AccountSID)
	assert.Equal(t, 12*time.Second, cfg.Roadmap.Timeout)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.Endpoint)
	assert.Equal(t, 2*time.Second, cfg.Schedule.SendDelay)
	assert.Equal(t, "https://study.example.com", cfg.App.WebURL)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_TG_TOKEN", "expanded-token")

	path := writeConfig(t, `
telegram:
  token: ${TEST_TG_TOKEN}
roadmap:
  endpoint: http://localhost:8081
llm:
  model: test-model
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-token", cfg.Telegram.Token)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "missing telegram token",
			content: `
roadmap:
  endpoint: http://localhost:8081
llm:
  model: test-model
`,
			errMsg: "telegram.token is required",
		},
		{
			name: "missing roadmap endpoint",
			content: `
telegram:
  token: tok
llm:
  model: test-model
`,
			errMsg: "roadmap.endpoint is required",
		},
		{
			name: "missing llm model",
			content: `
telegram:
  token: tok
roadmap:
  endpoint: http://localhost:8081
`,
			errMsg: "llm.model is required",
		},
		{
			name: "partial twilio config",
			content: `
telegram:
  token: tok
twilio:
  account_sid: AC123
roadmap:
  endpoint: http://localhost:8081
llm:
  model: test-model
`,
			errMsg: "twilio.account_sid and twilio.auth_token are required together",
		},
		{
			name: "bad twilio from number",
			content: `
telegram:
  token: tok
twilio:
  account_sid: AC123
  auth_token: secret
  from_number: "+14155238886"
roadmap:
  endpoint: http://localhost:8081
llm:
  model: test-model
`,
			errMsg: "twilio.from_number must look like",
		},
		{
			name: "temperature out of range",
			content: `
telegram:
  token: tok
roadmap:
  endpoint: http://localhost:8081
llm:
  model: test-model
  temperature: 3.5
`,
			errMsg: "llm.temperature must be between 0 and 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")

	path := writeConfig(t, "not: [valid: yaml")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
