package controller

import (
	"context"

	"wa-bazaar-be/internal/config"
	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Verify(ctx *fiber.Ctx) error
	Receive(ctx *fiber.Ctx) error
}

type webhookController struct {
	messageService service.IMessageService
	verifyToken    string
	log            logger.ILogger
}

func NewWebhookController(messageService service.IMessageService, cfg *config.Config, log logger.ILogger) IWebhookController {
	return &webhookController{
		messageService: messageService,
		verifyToken:    cfg.WhatsApp.VerifyToken,
		log:            log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhook/v1")
	h.Get("whatsapp", c.Verify)
	h.Post("whatsapp", c.Receive)
}

// Verify answers Meta's webhook subscription handshake.
func (c *webhookController) Verify(ctx *fiber.Ctx) error {
	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	challenge := ctx.Query("hub.challenge")

	if mode == "subscribe" && token == c.verifyToken {
		return ctx.SendString(challenge)
	}
	return ctx.SendStatus(fiber.StatusForbidden)
}

// Receive ingests a webhook delivery. Meta requires a fast 200, so each
// message is processed in its own goroutine.
func (c *webhookController) Receive(ctx *fiber.Ctx) error {
	var payload dto.WebhookPayload
	if err := ctx.BodyParser(&payload); err != nil {
		c.log.Warn("webhook", "Unparseable webhook payload", map[string]interface{}{
			"error": err.Error(),
		})
		// Still 200: Meta retries aggressively and the payload will not
		// get better.
		return ctx.SendStatus(fiber.StatusOK)
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				m := msg
				go func() {
					if err := c.messageService.ProcessMessage(context.Background(), &m); err != nil {
						c.log.Error("webhook", "Message processing failed", map[string]interface{}{
							"from":  m.From,
							"error": err.Error(),
						})
					}
				}()
			}
		}
	}

	return ctx.SendStatus(fiber.StatusOK)
}
