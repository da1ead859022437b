package ports

import "context"

// Notifier delivers outbound text messages to a phone number.
// The production implementation relays through a WhatsApp messaging API;
// delivery is best-effort and callers treat failures as non-fatal.
type Notifier interface {
	Send(ctx context.Context, phone string, text string) error
}
