package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"wa-bazaar-be/internal/constant"
	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/internal/repository/cache"
	"wa-bazaar-be/internal/repository/memory"
	"wa-bazaar-be/internal/repository/specification"
	"wa-bazaar-be/internal/repository/unitofwork"
	"wa-bazaar-be/pkg/dialog/fieldpath"
	"wa-bazaar-be/pkg/dialog/schema"
	"wa-bazaar-be/pkg/dialog/summary"
	"wa-bazaar-be/pkg/events"
	pktNats "wa-bazaar-be/pkg/nats"
	"wa-bazaar-be/pkg/nlp/extract"
	"wa-bazaar-be/pkg/nlp/intent"
	"wa-bazaar-be/pkg/store"

	"github.com/google/uuid"
)

// postingEntryConfidence lets a non-whitelisted intent enter the posting
// flow when the classifier is very sure and a category is known.
const postingEntryConfidence = 0.7

// immediateOfferPattern catches first-person offers ("I am a plumber",
// "main electrician hoon") that read as statements rather than sale
// phrasings and would otherwise need the keyword second chance.
var immediateOfferPattern = regexp.MustCompile(
	`(?i)\b(?:i\s+am\s+an?|i'm\s+an?|main\s+\w+\s+h(?:oon|u)|we\s+provide|i\s+do)\b`)

type IPostingService interface {
	// Handle processes one inbound message against the posting flow. It
	// returns false when the message does not belong to posting, so the
	// router can try search or fall back to help.
	Handle(ctx context.Context, session *store.Session, text string, result *intent.Result) (bool, error)
}

type postingService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionRepo    *memory.SessionRepository
	listingCache   *cache.ListingCache
	replyService   IReplyService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewPostingService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	listingCache *cache.ListingCache,
	replyService IReplyService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IPostingService {
	return &postingService{
		uowFactory:     uowFactory,
		sessionRepo:    sessionRepo,
		listingCache:   listingCache,
		replyService:   replyService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *postingService) Handle(ctx context.Context, session *store.Session, text string, result *intent.Result) (bool, error) {
	if session.Mode == store.ModePosting {
		err := s.continuePosting(ctx, session, text)
		if errors.Is(err, entity.ErrDraftNotFound) {
			// The referenced draft vanished mid-flow (expired, cancelled
			// elsewhere). Leaving the session in posting mode would fail
			// every following message, so drop to idle and say so.
			session.Reset()
			s.sessionRepo.Save(session)
			return true, s.replyService.SendText(ctx, session.UserID, constant.ReplyDraftGone)
		}
		return true, err
	}
	return s.maybeStartPosting(ctx, session, text, result)
}

// --- Entry ---

func (s *postingService) maybeStartPosting(ctx context.Context, session *store.Session, text string, result *intent.Result) (bool, error) {
	category := result.Category()

	eligible := false
	switch {
	case intent.IsPostingIntent(result.Intent) && result.Confident():
		eligible = true
	case result.Context == store.ContextOffer && category != "":
		eligible = true
	case result.Confidence > postingEntryConfidence && intent.IsPostingIntent(result.Intent):
		eligible = true
	case immediateOfferPattern.MatchString(text) && category != "":
		eligible = true
	case constant.HasPostingKeyword(text):
		// Keyword second chance: selling words without a clear category
		// still enter the flow via the category picker.
		eligible = true
	}

	if !eligible {
		// Session may have expired mid-posting. An unclassifiable message
		// from someone with an unfinished draft resumes that draft.
		if !result.Confident() {
			return s.tryResumeExpired(ctx, session, text)
		}
		return false, nil
	}

	if category == "" {
		return true, s.askCategory(ctx, session, text)
	}
	return true, s.startPosting(ctx, session, category, result.Entities, text)
}

// tryResumeExpired recovers a posting flow whose in-memory session timed
// out: the draft survives in the DB, so pick it back up.
func (s *postingService) tryResumeExpired(ctx context.Context, session *store.Session, text string) (bool, error) {
	draft := s.activeDraft(ctx, session.UserID)
	if draft == nil {
		return false, nil
	}

	session.Mode = store.ModePosting
	session.Category = draft.Category
	session.DraftID = draft.Id.String()
	s.sessionRepo.Save(session)

	if err := s.replyService.SendText(ctx, session.UserID, constant.ReplySessionExpired); err != nil {
		return true, err
	}
	// The message that woke us up is treated as the pending answer.
	return true, s.continuePosting(ctx, session, text)
}

func (s *postingService) askCategory(ctx context.Context, session *store.Session, text string) error {
	session.Mode = store.ModePosting
	session.ExpectedField = store.FieldCategoryChoice
	session.LastQuery = text
	s.sessionRepo.Save(session)

	var b strings.Builder
	b.WriteString(constant.ReplyCategoryChoice)
	for i, category := range store.Categories {
		fmt.Fprintf(&b, "\n%d. %s", i+1, categoryLabel(category))
	}
	return s.replyService.SendText(ctx, session.UserID, b.String())
}

func (s *postingService) startPosting(ctx context.Context, session *store.Session, category string, entities extract.Entities, text string) error {
	existing := s.activeDraft(ctx, session.UserID)
	if existing != nil {
		// One active draft per user. Let them choose before clobbering.
		session.Mode = store.ModePosting
		session.ExpectedField = store.FieldDraftChoice
		session.PendingCategory = category
		session.LastQuery = text
		s.sessionRepo.Save(session)

		prompt := fmt.Sprintf("%s\nUnfinished: %s (%s)",
			constant.ReplyDraftConflict,
			categoryLabel(existing.Category),
			strings.Join(filledLabels(existing), ", "))
		return s.replyService.SendButtons(ctx, session.UserID, prompt, []dto.ReplyButton{
			{Id: constant.ButtonDraftResume, Title: "Continue it"},
			{Id: constant.ButtonDraftDiscard, Title: "Start new"},
			{Id: constant.ButtonDraftKeep, Title: "Keep for later"},
		})
	}

	return s.createDraft(ctx, session, category, entities)
}

func (s *postingService) createDraft(ctx context.Context, session *store.Session, category string, entities extract.Entities) error {
	draft := entity.NewDraft(session.UserID, category, store.ContextOffer)
	prefillDraft(draft, entities)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DraftRepository().Create(ctx, draft); err != nil {
		return err
	}

	session.Mode = store.ModePosting
	session.Category = category
	session.DraftID = draft.Id.String()
	session.PendingCategory = ""
	s.sessionRepo.Save(session)

	s.log.Info("posting", "Draft started", map[string]interface{}{
		"owner":    session.UserID,
		"category": category,
		"prefill":  len(draft.FilledFields),
	})

	return s.askNext(ctx, session, draft)
}

// prefillDraft maps extracted entities onto schema field paths so the bot
// never re-asks what the opening message already said.
func prefillDraft(draft *entity.Draft, entities extract.Entities) {
	for key, value := range entities {
		var path string
		switch key {
		case "location":
			path = "location.area"
		case "phone":
			fieldpath.Set(draft.Data, "contact", value)
			continue
		default:
			if !schemaHasField(draft.Category, key) {
				continue
			}
			path = key
		}
		dataPath := schema.DataPath(draft.Category, path)
		if !fieldpath.IsBlank(draft.Data, dataPath) {
			continue
		}
		fieldpath.Set(draft.Data, dataPath, value)
		draft.FilledFields = append(draft.FilledFields, path)
	}
}

func schemaHasField(category, path string) bool {
	s, ok := schema.Get(category)
	if !ok {
		return false
	}
	_, ok = s.Fields[path]
	return ok
}

// --- Mid-flow ---

func (s *postingService) continuePosting(ctx context.Context, session *store.Session, text string) error {
	switch session.ExpectedField {
	case store.FieldCategoryChoice:
		return s.handleCategoryChoice(ctx, session, text)
	case store.FieldDraftChoice:
		return s.handleDraftChoice(ctx, session, text)
	case store.FieldConfirmation:
		return s.handleConfirmation(ctx, session, text)
	case store.FieldEditChoice:
		return s.handleEditChoice(ctx, session, text)
	default:
		return s.handleAnswer(ctx, session, text)
	}
}

func (s *postingService) handleCategoryChoice(ctx context.Context, session *store.Session, text string) error {
	category := parseCategoryChoice(text)
	if category == "" {
		if constant.IsNo(text) {
			return s.cancel(ctx, session, nil)
		}
		return s.replyService.SendText(ctx, session.UserID,
			"Please pick a number from the list, or reply No to cancel.")
	}

	entities := extract.Extract(session.LastQuery, category)
	return s.createDraft(ctx, session, category, entities)
}

func parseCategoryChoice(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if n, err := strconv.Atoi(t); err == nil && n >= 1 && n <= len(store.Categories) {
		return store.Categories[n-1]
	}
	for _, category := range store.Categories {
		if t == category || t == strings.ToLower(categoryLabel(category)) {
			return category
		}
	}
	return ""
}

func (s *postingService) handleDraftChoice(ctx context.Context, session *store.Session, text string) error {
	draft := s.activeDraft(ctx, session.UserID)
	if draft == nil {
		// Draft vanished, start over with the pending category.
		category := session.PendingCategory
		entities := extract.Extract(session.LastQuery, category)
		return s.createDraft(ctx, session, category, entities)
	}

	choice := strings.ToLower(strings.TrimSpace(text))
	switch choice {
	case constant.ButtonDraftResume, "1", "continue", "continue it", "resume":
		session.Category = draft.Category
		session.DraftID = draft.Id.String()
		session.PendingCategory = ""
		s.sessionRepo.Save(session)
		return s.askNext(ctx, session, draft)

	case constant.ButtonDraftDiscard, "2", "start new", "new", "discard":
		if err := s.cancelDraft(ctx, session, draft); err != nil {
			return err
		}
		category := session.PendingCategory
		entities := extract.Extract(session.LastQuery, category)
		return s.createDraft(ctx, session, category, entities)

	case constant.ButtonDraftKeep, "3", "keep", "keep for later", "later":
		session.Reset()
		s.sessionRepo.Save(session)
		return s.replyService.SendText(ctx, session.UserID,
			"Okay, your unfinished listing is saved. Message me to continue it anytime.")

	default:
		return s.replyService.SendText(ctx, session.UserID,
			"Please choose: 1 Continue it, 2 Start new, or 3 Keep for later.")
	}
}

func (s *postingService) handleAnswer(ctx context.Context, session *store.Session, text string) error {
	draft, err := s.loadDraft(ctx, session)
	if err != nil {
		return err
	}

	path := session.ExpectedField
	if path == "" {
		return s.askNext(ctx, session, draft)
	}

	if err := schema.ValidateAnswer(session.Category, path, text); err != nil {
		// Reject and re-ask with the field's hint.
		return s.replyService.SendText(ctx, session.UserID,
			err.Error()+" "+schema.QuestionFor(session.Category, path, true))
	}

	value := coerceAnswer(session.Category, path, text)
	fieldpath.Set(draft.Data, schema.DataPath(session.Category, path), value)
	draft.FilledFields = appendUnique(draft.FilledFields, path)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DraftRepository().Update(ctx, draft); err != nil {
		return err
	}

	return s.askNext(ctx, session, draft)
}

// coerceAnswer converts a validated answer into its stored representation:
// amounts go through lakh/crore normalization, counts become numbers.
func coerceAnswer(category, path, answer string) interface{} {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return trimmed
	}
	if summary.IsAmountField(path) {
		if amount, ok := extract.NormalizePrice(trimmed); ok {
			return amount
		}
	}
	switch path {
	case "bhk", "year", "quantity":
		if n, err := strconv.ParseFloat(strings.Fields(trimmed)[0], 64); err == nil {
			return n
		}
	}
	return trimmed
}

func (s *postingService) askNext(ctx context.Context, session *store.Session, draft *entity.Draft) error {
	next, err := schema.NextRequiredField(session.Category, draft.Data)
	if err != nil {
		return err
	}

	if next == "" {
		return s.askConfirmation(ctx, session, draft)
	}

	session.ExpectedField = next
	s.sessionRepo.Save(session)
	return s.replyService.SendText(ctx, session.UserID, schema.QuestionFor(session.Category, next, false))
}

// --- Confirmation / publish ---

func (s *postingService) askConfirmation(ctx context.Context, session *store.Session, draft *entity.Draft) error {
	session.ExpectedField = store.FieldConfirmation
	s.sessionRepo.Save(session)

	return s.replyService.SendButtons(ctx, session.UserID,
		summary.Build(session.Category, draft.Data),
		[]dto.ReplyButton{
			{Id: constant.ButtonYes, Title: "Yes, publish"},
			{Id: constant.ButtonNo, Title: "No, cancel"},
			{Id: constant.ButtonEdit, Title: "Edit a field"},
		})
}

func (s *postingService) handleConfirmation(ctx context.Context, session *store.Session, text string) error {
	draft, err := s.loadDraft(ctx, session)
	if err != nil {
		return err
	}

	switch {
	case text == constant.ButtonYes || constant.IsYes(text):
		return s.publish(ctx, session, draft)
	case text == constant.ButtonNo || constant.IsNo(text):
		return s.cancel(ctx, session, draft)
	case text == constant.ButtonEdit || constant.IsEdit(text):
		return s.askEditChoice(ctx, session, draft)
	default:
		return s.replyService.SendText(ctx, session.UserID, constant.ReplyConfirmHint)
	}
}

func (s *postingService) askEditChoice(ctx context.Context, session *store.Session, draft *entity.Draft) error {
	session.ExpectedField = store.FieldEditChoice
	s.sessionRepo.Save(session)

	sch, _ := schema.Get(session.Category)
	var b strings.Builder
	b.WriteString(constant.ReplyEditPrompt)
	for i, path := range sch.Required {
		fmt.Fprintf(&b, "\n%d. %s", i+1, schema.LabelFor(session.Category, path))
	}
	return s.replyService.SendText(ctx, session.UserID, b.String())
}

func (s *postingService) handleEditChoice(ctx context.Context, session *store.Session, text string) error {
	sch, ok := schema.Get(session.Category)
	if !ok {
		return entity.ErrInvalidCategory
	}

	path := ""
	t := strings.ToLower(strings.TrimSpace(text))
	if n, err := strconv.Atoi(t); err == nil && n >= 1 && n <= len(sch.Required) {
		path = sch.Required[n-1]
	} else {
		for _, p := range sch.Required {
			if t == strings.ToLower(schema.LabelFor(session.Category, p)) || t == strings.ToLower(p) {
				path = p
				break
			}
		}
	}

	if path == "" {
		return s.replyService.SendText(ctx, session.UserID,
			"Please pick a field number from the list.")
	}

	session.ExpectedField = path
	s.sessionRepo.Save(session)
	return s.replyService.SendText(ctx, session.UserID, schema.QuestionFor(session.Category, path, false))
}

// publish turns the draft into a live listing and removes the draft, both
// inside one transaction so a crash never yields a double record.
func (s *postingService) publish(ctx context.Context, session *store.Session, draft *entity.Draft) error {
	contact := fieldpath.GetString(draft.Data, "contact")
	if contact == "" {
		contact = session.UserID
	}

	now := time.Now()
	listing := &entity.Listing{
		Id:          uuid.New(),
		Status:      entity.ListingStatusActive,
		Category:    draft.Category,
		SubCategory: strings.ToLower(fieldpath.GetString(draft.Data, schema.DataPath(draft.Category, schema.PrimaryTypeField(draft.Category)))),
		Title:       summary.Title(draft.Category, draft.Data),
		Data:        draft.Data,
		OwnerId:     draft.OwnerId,
		Contact:     contact,
		CreatedAt:   now,
		ExpiresAt:   now.Add(entity.ListingTTL),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.ListingRepository().Create(ctx, listing); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.DraftRepository().Delete(ctx, draft.Id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.listingCache.Invalidate(ctx, listing.Category)

	if s.eventPublisher != nil {
		evt := events.NewListingPublished(listing.Id.String(), listing.OwnerId, listing.Category, listing.Title)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("posting", "Failed to publish listing event", map[string]interface{}{
				"listing_id": listing.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	s.log.Info("posting", "Listing published", map[string]interface{}{
		"listing_id": listing.Id.String(),
		"owner":      listing.OwnerId,
		"category":   listing.Category,
	})

	session.Reset()
	s.sessionRepo.Save(session)
	return s.replyService.SendText(ctx, session.UserID, constant.ReplyPublished)
}

func (s *postingService) cancel(ctx context.Context, session *store.Session, draft *entity.Draft) error {
	if draft != nil {
		if err := s.cancelDraft(ctx, session, draft); err != nil {
			return err
		}
	}
	session.Reset()
	s.sessionRepo.Save(session)
	return s.replyService.SendText(ctx, session.UserID, constant.ReplyCancelled)
}

func (s *postingService) cancelDraft(ctx context.Context, session *store.Session, draft *entity.Draft) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DraftRepository().Delete(ctx, draft.Id); err != nil {
		return err
	}
	if s.eventPublisher != nil {
		evt := events.NewDraftCancelled(draft.Id.String(), draft.OwnerId, draft.Category)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("posting", "Failed to publish cancel event", map[string]interface{}{
				"draft_id": draft.Id.String(),
				"error":    err.Error(),
			})
		}
	}
	return nil
}

// --- Helpers ---

func (s *postingService) loadDraft(ctx context.Context, session *store.Session) (*entity.Draft, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if session.DraftID != "" {
		if id, err := uuid.Parse(session.DraftID); err == nil {
			draft, err := uow.DraftRepository().FindOne(ctx, specification.ByID{ID: id})
			if err != nil {
				return nil, err
			}
			if draft != nil {
				return draft, nil
			}
		}
	}

	draft := s.activeDraft(ctx, session.UserID)
	if draft == nil {
		return nil, entity.ErrDraftNotFound
	}
	session.DraftID = draft.Id.String()
	session.Category = draft.Category
	return draft, nil
}

// activeDraft looks up the owner's unfinished draft. Query failures count
// as no draft: the flow must not wedge on a transient read error.
func (s *postingService) activeDraft(ctx context.Context, ownerID string) *entity.Draft {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	draft, err := uow.DraftRepository().FindActiveByOwner(ctx, ownerID)
	if err != nil {
		s.log.Warn("posting", "Active draft lookup failed", map[string]interface{}{
			"owner": ownerID,
			"error": err.Error(),
		})
		return nil
	}
	return draft
}

func filledLabels(draft *entity.Draft) []string {
	if len(draft.FilledFields) == 0 {
		return []string{"nothing filled yet"}
	}
	labels := make([]string, len(draft.FilledFields))
	for i, path := range draft.FilledFields {
		labels[i] = schema.LabelFor(draft.Category, path)
	}
	return labels
}

func categoryLabel(category string) string {
	switch category {
	case store.CategoryHousing:
		return "Property"
	case store.CategoryUrbanHelp:
		return "Services"
	case store.CategoryVehicle:
		return "Vehicle"
	case store.CategoryElectronics:
		return "Electronics"
	case store.CategoryFurniture:
		return "Furniture"
	case store.CategoryJob:
		return "Job"
	case store.CategoryCommodity:
		return "Farm produce"
	}
	return category
}

func appendUnique(paths []string, path string) []string {
	for _, p := range paths {
		if p == path {
			return paths
		}
	}
	return append(paths, path)
}
