package messenger

import (
	"context"
	"fmt"

	"github.com/studyping/studyping/pkg/domain"
)

// Dispatcher routes an outbound message to the adapter for its channel.
// The WhatsApp transport is optional; sends to it fail cleanly when the
// Twilio credentials are not configured.
type Dispatcher struct {
	telegram *TelegramClient
	whatsapp *TwilioClient
}

// NewDispatcher creates a dispatcher over the configured transports,
// whatsapp may be nil
func NewDispatcher(telegram *TelegramClient, whatsapp *TwilioClient) *Dispatcher {
	return &Dispatcher{telegram: telegram, whatsapp: whatsapp}
}

// Send delivers text to a channel identity, with an optional link button.
// Channel-specific rendering (inline button vs appended link) happens in
// the adapters, callers pass the same message either way.
func (d *Dispatcher) Send(ctx context.Context, ch domain.Channel, identity, text string, button *domain.LinkButton) error {
	var spec *buttonSpec
	if button != nil {
		spec = &buttonSpec{text: button.Text, url: button.URL}
	}

	switch ch {
	case domain.ChannelTelegram:
		if d.telegram == nil {
			return fmt.Errorf("telegram transport not configured")
		}
		return d.telegram.SendMessage(ctx, identity, text, spec)
	case domain.ChannelWhatsApp:
		if d.whatsapp == nil {
			return fmt.Errorf("whatsapp transport not configured")
		}
		return d.whatsapp.SendMessage(ctx, identity, text, spec)
	}
	return fmt.Errorf("unknown channel %q", ch)
}
