package dto

// WhatsApp Cloud API webhook payload. Only the fields the router reads
// are modelled; the rest of Meta's envelope is ignored on unmarshal.

type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	Id      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []InboundMessage `json:"messages"`
}

type InboundMessage struct {
	From        string              `json:"from"` // sender phone number
	Id          string              `json:"id"`
	Type        string              `json:"type"` // text | audio | interactive
	Text        *InboundText        `json:"text,omitempty"`
	Audio       *InboundAudio       `json:"audio,omitempty"`
	Interactive *InboundInteractive `json:"interactive,omitempty"`
}

type InboundText struct {
	Body string `json:"body"`
}

type InboundAudio struct {
	Id       string `json:"id"` // media id, resolved via the Graph API
	MimeType string `json:"mime_type"`
	Voice    bool   `json:"voice"`
}

type InboundInteractive struct {
	Type        string         `json:"type"`
	ButtonReply *InboundButton `json:"button_reply,omitempty"`
}

type InboundButton struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}

// EffectiveText returns the text of a message: typed body or pressed
// button id, empty for media the router handles separately.
func (m *InboundMessage) EffectiveText() string {
	switch {
	case m.Text != nil:
		return m.Text.Body
	case m.Interactive != nil && m.Interactive.ButtonReply != nil:
		return m.Interactive.ButtonReply.Id
	default:
		return ""
	}
}
