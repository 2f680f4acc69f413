package service

import (
	"context"
	"encoding/json"

	"wa-bazaar-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ReplyTopicName is the in-process bus topic carrying outbound replies
// from the dialogue services to the transport consumer.
const ReplyTopicName = "OUTBOUND_REPLIES"

type IReplyService interface {
	// SendText queues a plain text reply for delivery.
	SendText(ctx context.Context, to, text string) error
	// SendButtons queues a reply with quick-reply buttons.
	SendButtons(ctx context.Context, to, text string, buttons []dto.ReplyButton) error
}

type replyService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewReplyService(pubSub *gochannel.GoChannel, topicName string) IReplyService {
	return &replyService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (s *replyService) SendText(ctx context.Context, to, text string) error {
	return s.publish(ctx, &dto.OutboundReply{To: to, Text: text})
}

func (s *replyService) SendButtons(ctx context.Context, to, text string, buttons []dto.ReplyButton) error {
	return s.publish(ctx, &dto.OutboundReply{To: to, Text: text, Buttons: buttons})
}

func (s *replyService) publish(_ context.Context, reply *dto.OutboundReply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}
