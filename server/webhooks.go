package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/studyping/studyping/pkg/domain"
	"github.com/studyping/studyping/pkg/router"
)

// telegramUpdate is the subset of the Bot API update the gateway reads
type telegramUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Chat struct {
			ID        int64  `json:"id"`
			FirstName string `json:"first_name"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
}

// telegramWebhookHandler accepts Bot API updates. It always acknowledges
// with 200, a non-2xx would make Telegram redeliver the same update.
func (s *Server) telegramWebhookHandler(w http.ResponseWriter, r *http.Request) {
	var update telegramUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		lgr.Printf("[WARN] malformed telegram update: %v", err)
		RenderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	// non-message updates (edits, callbacks) are acknowledged and dropped
	if update.Message == nil || update.Message.Text == "" {
		RenderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	s.handler.Handle(r.Context(), router.InboundMessage{
		Channel:     domain.ChannelTelegram,
		Identity:    strconv.FormatInt(update.Message.Chat.ID, 10),
		Text:        update.Message.Text,
		DisplayName: update.Message.Chat.FirstName,
	})

	RenderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// whatsappWebhookHandler accepts Twilio form posts. The provider prefix is
// stripped so the rest of the gateway only sees a bare E.164 number.
func (s *Server) whatsappWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		lgr.Printf("[WARN] malformed whatsapp webhook: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	from := strings.TrimPrefix(r.PostFormValue("From"), "whatsapp:")
	body := r.PostFormValue("Body")
	if from == "" || body == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	s.handler.Handle(r.Context(), router.InboundMessage{
		Channel:     domain.ChannelWhatsApp,
		Identity:    from,
		Text:        body,
		DisplayName: r.PostFormValue("ProfileName"),
	})

	w.WriteHeader(http.StatusOK)
}
