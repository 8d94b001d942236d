package domain

// LinkButton is an optional action link attached to an outbound message.
// Telegram renders it as an inline button; channels without rich buttons
// append it as plain text.
type LinkButton struct {
	Text string
	URL  string
}
