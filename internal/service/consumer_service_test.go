package service

import (
	"context"
	"testing"
	"time"

	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/pkg/transport"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

// chanMessenger signals each delivery so tests can wait on the async
// consumer without sleeping.
type chanMessenger struct {
	sent chan dto.OutboundReply
}

func (m *chanMessenger) SendText(_ context.Context, to, text string) error {
	m.sent <- dto.OutboundReply{To: to, Text: text}
	return nil
}

func (m *chanMessenger) SendButtons(_ context.Context, to, text string, buttons []transport.Button) error {
	out := dto.OutboundReply{To: to, Text: text}
	for _, b := range buttons {
		out.Buttons = append(out.Buttons, dto.ReplyButton{Id: b.ID, Title: b.Title})
	}
	m.sent <- out
	return nil
}

func TestReplyBusRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		watermill.NopLogger{},
	)
	messenger := &chanMessenger{sent: make(chan dto.OutboundReply, 4)}

	consumer := NewConsumerService(pubSub, ReplyTopicName, messenger, nopLogger{})
	assert.NoError(t, consumer.Consume(ctx))

	replies := NewReplyService(pubSub, ReplyTopicName)
	assert.NoError(t, replies.SendText(ctx, "919111", "hello there"))
	assert.NoError(t, replies.SendButtons(ctx, "919111", "confirm?", []dto.ReplyButton{
		{Id: "confirm_yes", Title: "Yes"},
		{Id: "confirm_no", Title: "No"},
	}))

	first := waitForReply(t, messenger.sent)
	assert.Equal(t, "919111", first.To)
	assert.Equal(t, "hello there", first.Text)
	assert.Empty(t, first.Buttons)

	second := waitForReply(t, messenger.sent)
	assert.Equal(t, "confirm?", second.Text)
	if assert.Len(t, second.Buttons, 2) {
		assert.Equal(t, "confirm_yes", second.Buttons[0].Id)
	}
}

func waitForReply(t *testing.T, ch chan dto.OutboundReply) dto.OutboundReply {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for consumer delivery")
		return dto.OutboundReply{}
	}
}
