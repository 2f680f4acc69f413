package console

import (
	"context"
	"io"
	"sync"

	"github.com/fatih/color"

	"wa-bazaar-be/pkg/transport"
)

// Messenger writes outbound messages to a terminal instead of WhatsApp.
// Used by the simulation CLI and anywhere a live channel is not wired.
type Messenger struct {
	mu  sync.Mutex
	out io.Writer

	bot   *color.Color
	label *color.Color
}

var _ transport.Messenger = &Messenger{}

func NewMessenger(out io.Writer) *Messenger {
	return &Messenger{
		out:   out,
		bot:   color.New(color.FgGreen),
		label: color.New(color.FgCyan, color.Bold),
	}
}

func (m *Messenger) SendText(_ context.Context, to, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.label.Fprintf(m.out, "bot -> %s:\n", to)
	m.bot.Fprintln(m.out, text)
	return nil
}

func (m *Messenger) SendButtons(ctx context.Context, to, text string, buttons []transport.Button) error {
	return m.SendText(ctx, to, transport.RenderButtonsAsText(text, buttons))
}
