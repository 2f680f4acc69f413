package dto

// OutboundReply is the internal bus message between the dialogue services
// and the transport consumer that actually hits the WhatsApp API.
type OutboundReply struct {
	To      string        `json:"to"`
	Text    string        `json:"text"`
	Buttons []ReplyButton `json:"buttons,omitempty"`
}

type ReplyButton struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}
