package service

import (
	"context"
	"fmt"

	"wa-bazaar-be/internal/constant"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/pkg/events"
	pktNats "wa-bazaar-be/pkg/nats"
)

type INotifierService interface {
	// Start attaches the durable NATS consumers. A nil subscriber is a
	// no-op: notifications are optional infrastructure.
	Start() error
	// HandleEvent reacts to one domain event.
	HandleEvent(ctx context.Context, evt events.Event) error
}

// notifierService turns listing lifecycle events back into WhatsApp
// messages to the owner. It runs off the JetStream stream, so a restart
// picks up where it left off.
type notifierService struct {
	subscriber   *pktNats.Subscriber
	replyService IReplyService
	log          logger.ILogger
}

func NewNotifierService(
	subscriber *pktNats.Subscriber,
	replyService IReplyService,
	log logger.ILogger,
) INotifierService {
	return &notifierService{
		subscriber:   subscriber,
		replyService: replyService,
		log:          log,
	}
}

func (s *notifierService) Start() error {
	if s.subscriber == nil {
		return nil
	}
	return s.subscriber.Subscribe(events.TypeListingExpired, "bazaar-expiry-notifier", s.HandleEvent)
}

func (s *notifierService) HandleEvent(ctx context.Context, evt events.Event) error {
	switch evt.EventType() {
	case events.TypeListingExpired:
		return s.notifyExpired(ctx, evt.Payload())
	default:
		return nil
	}
}

func (s *notifierService) notifyExpired(ctx context.Context, payload map[string]interface{}) error {
	owner, _ := payload["owner_id"].(string)
	title, _ := payload["title"].(string)
	if owner == "" {
		// Nothing to deliver to. Dropping beats redelivering forever.
		s.log.Warn("notifier", "Expiry event without owner", map[string]interface{}{
			"payload": payload,
		})
		return nil
	}

	s.log.Info("notifier", "Notifying owner of expired listing", map[string]interface{}{
		"owner": owner,
		"title": title,
	})
	return s.replyService.SendText(ctx, owner, fmt.Sprintf(constant.ReplyListingExpiredNotice, title))
}
