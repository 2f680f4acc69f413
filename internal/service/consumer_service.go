package service

import (
	"context"
	"encoding/json"

	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/pkg/transport"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the outbound reply topic and pushes each reply
// through the WhatsApp transport. The bus publishes with subscriber ack,
// so replies reach the transport in the order the dialogue emitted them.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	messenger transport.Messenger
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	messenger transport.Messenger,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		messenger: messenger,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var reply dto.OutboundReply
	if err := json.Unmarshal(msg.Payload, &reply); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal outbound reply", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	var err error
	if len(reply.Buttons) > 0 {
		buttons := make([]transport.Button, len(reply.Buttons))
		for i, b := range reply.Buttons {
			buttons[i] = transport.Button{ID: b.Id, Title: b.Title}
		}
		err = cs.messenger.SendButtons(ctx, reply.To, reply.Text, buttons)
	} else {
		err = cs.messenger.SendText(ctx, reply.To, reply.Text)
	}

	if err != nil {
		cs.log.Error("consumer", "Failed to deliver reply", map[string]interface{}{
			"to":    reply.To,
			"error": err.Error(),
		})
		// Ack anyway: WhatsApp sends are not worth retrying blind, the
		// user will just message again.
	}

	msg.Ack()
}
