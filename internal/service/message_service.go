package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wa-bazaar-be/internal/constant"
	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/internal/repository/memory"
	"wa-bazaar-be/pkg/nlp/assist"
	"wa-bazaar-be/pkg/nlp/intent"
	"wa-bazaar-be/pkg/store"
	"wa-bazaar-be/pkg/transcribe"
	"wa-bazaar-be/pkg/transport"
)

type IMessageService interface {
	// ProcessMessage routes one inbound WhatsApp message through
	// transcription, classification and the dialogue services. Every
	// message produces exactly one reply path.
	ProcessMessage(ctx context.Context, msg *dto.InboundMessage) error
}

type messageService struct {
	sessionRepo    *memory.SessionRepository
	resolver       *assist.Resolver
	postingService IPostingService
	searchService  ISearchService
	replyService   IReplyService
	transcriber    transcribe.Transcriber
	mediaFetcher   transport.MediaFetcher
	log            logger.ILogger
}

func NewMessageService(
	sessionRepo *memory.SessionRepository,
	resolver *assist.Resolver,
	postingService IPostingService,
	searchService ISearchService,
	replyService IReplyService,
	transcriber transcribe.Transcriber,
	mediaFetcher transport.MediaFetcher,
	log logger.ILogger,
) IMessageService {
	return &messageService{
		sessionRepo:    sessionRepo,
		resolver:       resolver,
		postingService: postingService,
		searchService:  searchService,
		replyService:   replyService,
		transcriber:    transcriber,
		mediaFetcher:   mediaFetcher,
		log:            log,
	}
}

func (s *messageService) ProcessMessage(ctx context.Context, msg *dto.InboundMessage) error {
	from := msg.From

	text, err := s.resolveText(ctx, msg)
	if err != nil {
		s.log.Warn("message", "Voice note could not be transcribed", map[string]interface{}{
			"from":  from,
			"error": err.Error(),
		})
		return s.replyService.SendText(ctx, from, constant.ReplyVoiceUnavailable)
	}
	if strings.TrimSpace(text) == "" {
		return s.replyService.SendText(ctx, from, constant.ReplyNotUnderstood)
	}

	// Error boundary: a persistence or dialogue failure must still end in
	// a reply, never in a silently dropped message.
	if err := s.route(ctx, from, text); err != nil {
		s.log.Error("message", "Message routing failed", map[string]interface{}{
			"from":  from,
			"error": err.Error(),
		})
		return s.replyService.SendText(ctx, from, constant.ReplyTryLater)
	}
	return nil
}

func (s *messageService) route(ctx context.Context, from, text string) error {
	session := s.sessionRepo.GetOrCreate(from)
	result := s.resolver.Resolve(ctx, text, session)

	s.log.Info("message", "Message classified", map[string]interface{}{
		"from":       from,
		"intent":     result.Intent,
		"confidence": result.Confidence,
		"context":    result.Context,
		"language":   result.Language,
		"mode":       session.Mode,
	})

	// Greetings and farewells short-circuit only outside an active flow.
	if session.Mode == store.ModeIdle && result.Confident() {
		switch result.Intent {
		case intent.IntentGreeting:
			return s.replyService.SendText(ctx, from, constant.ReplyGreeting)
		case intent.IntentFarewell:
			return s.replyService.SendText(ctx, from, constant.ReplyFarewell)
		}
	}

	// A bare number after a search picks a result for the full view.
	if session.Mode == store.ModeIdle && len(session.LastResults) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			return s.sendListingDetail(ctx, session, n)
		}
	}

	// Posting gets first refusal: it owns any in-progress flow and any
	// message that reads as an offer.
	handled, err := s.postingService.Handle(ctx, session, text, result)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	// Search path: find context or a confident category search intent.
	if result.Category() != "" && (result.Context == store.ContextFind || result.Confident()) {
		matches, err := s.searchService.Search(ctx, result, text)
		if err != nil {
			return err
		}
		s.rememberResults(session, matches)
		if len(matches) == 0 {
			return s.replyService.SendText(ctx, from, constant.ReplyNoResults)
		}
		return s.replyService.SendText(ctx, from, s.searchService.FormatResults(matches))
	}

	if result.Confident() && result.Intent == intent.IntentGeneralHelp {
		return s.replyService.SendText(ctx, from, constant.ReplyHelp)
	}

	return s.replyService.SendText(ctx, from, constant.ReplyNotUnderstood)
}

// rememberResults keeps the last search's listing ids on the session so a
// bare number can select one.
func (s *messageService) rememberResults(session *store.Session, matches []*entity.Listing) {
	session.LastResults = session.LastResults[:0]
	for _, l := range matches {
		session.LastResults = append(session.LastResults, l.Id.String())
	}
	s.sessionRepo.Save(session)
}

func (s *messageService) sendListingDetail(ctx context.Context, session *store.Session, n int) error {
	if n < 1 || n > len(session.LastResults) {
		return s.replyService.SendText(ctx, session.UserID,
			fmt.Sprintf("Please pick a number between 1 and %d.", len(session.LastResults)))
	}

	detail, err := s.searchService.Detail(ctx, session.LastResults[n-1])
	if errors.Is(err, entity.ErrListingNotFound) {
		return s.replyService.SendText(ctx, session.UserID, constant.ReplyListingGone)
	}
	if err != nil {
		return err
	}
	return s.replyService.SendText(ctx, session.UserID, detail)
}

// resolveText returns the message's text, transcribing voice notes when a
// backend is wired.
func (s *messageService) resolveText(ctx context.Context, msg *dto.InboundMessage) (string, error) {
	if msg.Type == "audio" && msg.Audio != nil {
		if s.mediaFetcher == nil {
			return "", transcribe.ErrUnavailable
		}
		audio, mimeType, err := s.mediaFetcher.FetchMedia(ctx, msg.Audio.Id)
		if err != nil {
			return "", err
		}
		return s.transcriber.Transcribe(ctx, audio, mimeType, "")
	}
	return msg.EffectiveText(), nil
}
