package messenger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramClient_SendMessage(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewTelegramClient(TelegramConfig{Token: "test-token", Endpoint: server.URL})

	err := client.SendMessage(context.Background(), "42", "hola", nil)
	require.NoError(t, err)

	assert.Equal(t, "42", captured["chat_id"])
	assert.Equal(t, "hola", captured["text"])
	assert.NotContains(t, captured, "reply_markup")
}

func TestTelegramClient_SendMessage_WithButton(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewTelegramClient(TelegramConfig{Token: "tok", Endpoint: server.URL})

	err := client.SendMessage(context.Background(), "42", "mira esto",
		&buttonSpec{text: "Ver en la web", url: "https://study.example.com/roadmaps"})
	require.NoError(t, err)

	markup, ok := captured["reply_markup"].(map[string]any)
	require.True(t, ok)
	keyboard, ok := markup["inline_keyboard"].([]any)
	require.True(t, ok)
	row, ok := keyboard[0].([]any)
	require.True(t, ok)
	btn, ok := row[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ver en la web", btn["text"])
	assert.Equal(t, "https://study.example.com/roadmaps", btn["url"])
}

func TestTelegramClient_SendMessage_Errors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewTelegramClient(TelegramConfig{Token: "tok", Endpoint: server.URL})
		err := client.SendMessage(context.Background(), "42", "x", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telegram api returned 502")
	})

	t.Run("api rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
		}))
		defer server.Close()

		client := NewTelegramClient(TelegramConfig{Token: "tok", Endpoint: server.URL})
		err := client.SendMessage(context.Background(), "42", "x", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chat not found")
	})
}
