// Package transcribe converts WhatsApp voice notes to text so they can
// flow through the same classification pipeline as typed messages.
package transcribe

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no transcription backend is configured.
var ErrUnavailable = errors.New("transcription backend not configured")

// Transcriber defines the contract for any speech-to-text backend
type Transcriber interface {
	// Transcribe converts one audio payload to text. The language hint is a
	// BCP-47-ish code ("hi", "en", "ta") or empty for auto-detection.
	Transcribe(ctx context.Context, audio []byte, mimeType, language string) (string, error)
}

// Noop is the disabled backend. Callers should treat ErrUnavailable as
// "ask the user to type instead", not as a failure.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (Noop) Transcribe(_ context.Context, _ []byte, _, _ string) (string, error) {
	return "", ErrUnavailable
}
