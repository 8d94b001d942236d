package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyping/studyping/pkg/domain"
	"github.com/studyping/studyping/pkg/router"
	"github.com/studyping/studyping/server/mocks"
)

func setupTestServer() (*httptest.Server, *mocks.MessageHandlerMock, *mocks.ProfileManagerMock) {
	handler := &mocks.MessageHandlerMock{
		HandleFunc: func(ctx context.Context, msg router.InboundMessage) {},
	}
	profiles := &mocks.ProfileManagerMock{}
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 10 * time.Second },
	}

	srv := New(cfg, handler, profiles, "test", false)
	return httptest.NewServer(srv.router), handler, profiles
}

func TestServer_Status(t *testing.T) {
	ts, _, _ := setupTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
}

func TestServer_TelegramWebhook(t *testing.T) {
	ts, handler, _ := setupTestServer()
	defer ts.Close()

	update := `{"update_id":1,"message":{"chat":{"id":987654321,"first_name":"Ana"},"text":"/roadmap"}}`
	resp, err := http.Post(ts.URL+"/webhook/telegram", "application/json", strings.NewReader(update))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, handler.HandleCalls(), 1)
	msg := handler.HandleCalls()[0].Msg
	assert.Equal(t, domain.ChannelTelegram, msg.Channel)
	assert.Equal(t, "987654321", msg.Identity)
	assert.Equal(t, "/roadmap", msg.Text)
	assert.Equal(t, "Ana", msg.DisplayName)
}

func TestServer_TelegramWebhookNonMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"edit update", `{"update_id":2}`},
		{"empty text", `{"update_id":3,"message":{"chat":{"id":1},"text":""}}`},
		{"garbage", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, handler, _ := setupTestServer()
			defer ts.Close()

			resp, err := http.Post(ts.URL+"/webhook/telegram", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode, "provider always gets 200")
			assert.Empty(t, handler.HandleCalls())
		})
	}
}

func TestServer_WhatsAppWebhook(t *testing.T) {
	ts, handler, _ := setupTestServer()
	defer ts.Close()

	form := url.Values{}
	form.Set("From", "whatsapp:+5215512345678")
	form.Set("Body", "hola")
	form.Set("ProfileName", "Luis")

	resp, err := http.Post(ts.URL+"/webhook/whatsapp", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, handler.HandleCalls(), 1)
	msg := handler.HandleCalls()[0].Msg
	assert.Equal(t, domain.ChannelWhatsApp, msg.Channel)
	assert.Equal(t, "+5215512345678", msg.Identity, "provider prefix stripped")
	assert.Equal(t, "hola", msg.Text)
	assert.Equal(t, "Luis", msg.DisplayName)
}

func TestServer_WhatsAppWebhookMissingFrom(t *testing.T) {
	ts, handler, _ := setupTestServer()
	defer ts.Close()

	form := url.Values{}
	form.Set("Body", "hola")

	resp, err := http.Post(ts.URL+"/webhook/whatsapp", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, handler.HandleCalls())
}
