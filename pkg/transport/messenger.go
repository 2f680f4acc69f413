// Package transport abstracts the outbound messaging channel. Services
// talk to the Messenger contract; the WhatsApp Cloud API implementation
// lives in the whatsapp subpackage, and Console stands in for it in the
// simulation CLI and tests.
package transport

import (
	"context"
	"fmt"
)

// Button is one quick-reply choice. ID comes back verbatim in the user's
// button reply; Title is what WhatsApp renders (20 char limit).
type Button struct {
	ID    string
	Title string
}

// Messenger sends messages to one user of a chat channel.
type Messenger interface {
	// SendText delivers a plain text message.
	SendText(ctx context.Context, to, text string) error

	// SendButtons delivers a text body with up to three quick-reply
	// buttons. Implementations degrade to numbered text when the channel
	// cannot render buttons.
	SendButtons(ctx context.Context, to, text string, buttons []Button) error
}

// MediaFetcher downloads inbound media (voice notes) by provider media id.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, mediaID string) (data []byte, mimeType string, err error)
}

// RenderButtonsAsText formats a button prompt as a numbered text message,
// the shared degradation path for channels without interactive messages.
func RenderButtonsAsText(text string, buttons []Button) string {
	out := text
	for i, b := range buttons {
		out += fmt.Sprintf("\n%d. %s", i+1, b.Title)
	}
	return out
}
