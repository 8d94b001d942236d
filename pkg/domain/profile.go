package domain

import "time"

// Channel identifies a messaging provider
type Channel string

// supported messaging channels
const (
	ChannelTelegram Channel = "telegram"
	ChannelWhatsApp Channel = "whatsapp"
)

// PreferredChannel selects where reminders are delivered
type PreferredChannel string

// preferred delivery channel values
const (
	PreferTelegram PreferredChannel = "telegram"
	PreferWhatsApp PreferredChannel = "whatsapp"
	PreferBoth     PreferredChannel = "both"
	PreferNone     PreferredChannel = "none"
)

// Includes reports whether reminders should go out on the given channel
func (p PreferredChannel) Includes(ch Channel) bool {
	switch p {
	case PreferBoth:
		return true
	case PreferTelegram:
		return ch == ChannelTelegram
	case PreferWhatsApp:
		return ch == ChannelWhatsApp
	}
	return false
}

// Frequency is a reminder cadence policy
type Frequency string

// reminder frequency policies
const (
	FrequencyDaily       Frequency = "daily"
	FrequencyEvery2Days  Frequency = "every_2_days"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyIntelligent Frequency = "intelligent"
	FrequencyDisabled    Frequency = "disabled"
)

// Valid reports whether the frequency is one of the known policies
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyEvery2Days, FrequencyWeekly, FrequencyIntelligent, FrequencyDisabled:
		return true
	}
	return false
}

// TelegramLink binds a profile to a Telegram chat
type TelegramLink struct {
	ChatID  string
	Enabled bool
}

// WhatsAppLink binds a profile to a WhatsApp number (E.164, no "whatsapp:" prefix)
type WhatsAppLink struct {
	Number  string
	Enabled bool
}

// ReminderSettings holds the per-user reminder configuration
type ReminderSettings struct {
	Frequency   Frequency
	TimeOfDay   string // "HH:MM", wall clock
	ActiveTopic string // empty means no topic selected
}

// Profile is a user's channel-linkage and reminder configuration,
// uniquely keyed by email
type Profile struct {
	Email     string
	Telegram  *TelegramLink
	WhatsApp  *WhatsAppLink
	Preferred PreferredChannel
	Reminder  ReminderSettings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity returns the profile's identity on the given channel,
// empty if the channel is not linked
func (p *Profile) Identity(ch Channel) string {
	switch ch {
	case ChannelTelegram:
		if p.Telegram != nil {
			return p.Telegram.ChatID
		}
	case ChannelWhatsApp:
		if p.WhatsApp != nil {
			return p.WhatsApp.Number
		}
	}
	return ""
}

// ChannelEnabled reports whether the given channel is linked and enabled
func (p *Profile) ChannelEnabled(ch Channel) bool {
	switch ch {
	case ChannelTelegram:
		return p.Telegram != nil && p.Telegram.Enabled && p.Telegram.ChatID != ""
	case ChannelWhatsApp:
		return p.WhatsApp != nil && p.WhatsApp.Enabled && p.WhatsApp.Number != ""
	}
	return false
}

// AnyChannelEnabled reports whether at least one channel can receive messages
func (p *Profile) AnyChannelEnabled() bool {
	return p.ChannelEnabled(ChannelTelegram) || p.ChannelEnabled(ChannelWhatsApp)
}
