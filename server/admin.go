package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/studyping/studyping/pkg/domain"
)

// linkTelegramHandler binds a telegram chat to a profile, creating the
// profile on first link
func (s *Server) linkTelegramHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email          string `json:"email"`
		TelegramChatID string `json:"telegramChatId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.TelegramChatID == "" {
		RenderError(w, r, errors.New("email and telegramChatId are required"), http.StatusBadRequest)
		return
	}

	if err := s.profiles.LinkTelegram(r.Context(), req.Email, req.TelegramChatID); err != nil {
		renderStoreError(w, r, err)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "linked", "email": req.Email})
}

// linkWhatsAppHandler binds a whatsapp number to a profile
func (s *Server) linkWhatsAppHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email          string `json:"email"`
		WhatsAppNumber string `json:"whatsappNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.WhatsAppNumber == "" {
		RenderError(w, r, errors.New("email and whatsappNumber are required"), http.StatusBadRequest)
		return
	}

	if err := s.profiles.LinkWhatsApp(r.Context(), req.Email, req.WhatsAppNumber); err != nil {
		renderStoreError(w, r, err)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "linked", "email": req.Email})
}

func (s *Server) unlinkTelegramHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if err := s.profiles.UnlinkTelegram(r.Context(), email); err != nil {
		renderStoreError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "unlinked", "email": email})
}

func (s *Server) unlinkWhatsAppHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if err := s.profiles.UnlinkWhatsApp(r.Context(), email); err != nil {
		renderStoreError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "unlinked", "email": email})
}

// settingsResponse is the wire shape of a profile's settings
type settingsResponse struct {
	Email            string `json:"email"`
	TelegramLinked   bool   `json:"telegramLinked"`
	WhatsAppLinked   bool   `json:"whatsappLinked"`
	PreferredChannel string `json:"preferredChannel"`
	Frequency        string `json:"frequency"`
	Time             string `json:"time"`
	ActiveTopic      string `json:"activeTopic,omitempty"`
}

func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	profile, err := s.profiles.GetByEmail(r.Context(), email)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}

	RenderJSON(w, r, http.StatusOK, settingsResponse{
		Email:            profile.Email,
		TelegramLinked:   profile.ChannelEnabled(domain.ChannelTelegram),
		WhatsAppLinked:   profile.ChannelEnabled(domain.ChannelWhatsApp),
		PreferredChannel: string(profile.Preferred),
		Frequency:        string(profile.Reminder.Frequency),
		Time:             profile.Reminder.TimeOfDay,
		ActiveTopic:      profile.Reminder.ActiveTopic,
	})
}

// updateSettingsHandler applies a partial settings update, only fields
// present in the request change
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	var req struct {
		PreferredChannel *string `json:"preferredChannel"`
		Frequency        *string `json:"frequency"`
		Time             *string `json:"time"`
		ActiveTopic      *string `json:"activeTopic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if req.PreferredChannel != nil {
		pc := domain.PreferredChannel(*req.PreferredChannel)
		switch pc {
		case domain.PreferTelegram, domain.PreferWhatsApp, domain.PreferBoth, domain.PreferNone:
		default:
			RenderError(w, r, errors.New("invalid preferredChannel"), http.StatusBadRequest)
			return
		}
		if err := s.profiles.SetPreferredChannel(r.Context(), email, pc); err != nil {
			renderStoreError(w, r, err)
			return
		}
	}

	if req.Frequency != nil || req.Time != nil {
		profile, err := s.profiles.GetByEmail(r.Context(), email)
		if err != nil {
			renderStoreError(w, r, err)
			return
		}

		freq := profile.Reminder.Frequency
		if req.Frequency != nil {
			freq = domain.Frequency(*req.Frequency)
			if !freq.Valid() {
				RenderError(w, r, errors.New("invalid frequency"), http.StatusBadRequest)
				return
			}
		}

		timeOfDay := profile.Reminder.TimeOfDay
		if req.Time != nil {
			if _, err := time.Parse("15:04", *req.Time); err != nil {
				RenderError(w, r, errors.New("invalid time, expected HH:MM"), http.StatusBadRequest)
				return
			}
			timeOfDay = *req.Time
		}

		if err := s.profiles.SetReminderSettings(r.Context(), email, freq, timeOfDay); err != nil {
			renderStoreError(w, r, err)
			return
		}
	}

	if req.ActiveTopic != nil {
		if err := s.profiles.SetActiveTopic(r.Context(), email, *req.ActiveTopic); err != nil {
			renderStoreError(w, r, err)
			return
		}
	}

	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "updated", "email": email})
}

func (s *Server) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if err := s.profiles.Delete(r.Context(), email); err != nil {
		renderStoreError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted", "email": email})
}
