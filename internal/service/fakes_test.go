package service

import (
	"context"
	"sync"

	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/internal/repository/contract"
	"wa-bazaar-be/internal/repository/specification"
	"wa-bazaar-be/internal/repository/unitofwork"
	"wa-bazaar-be/pkg/nlp/intent"
	"wa-bazaar-be/pkg/store"

	"github.com/google/uuid"
)

// nopLogger discards everything, tests assert on replies instead.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

// replyRecorder captures outbound replies in order.
type replyRecorder struct {
	mu      sync.Mutex
	texts   []string
	buttons [][]dto.ReplyButton
}

func (r *replyRecorder) SendText(_ context.Context, _ string, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	r.buttons = append(r.buttons, nil)
	return nil
}

func (r *replyRecorder) SendButtons(_ context.Context, _ string, text string, buttons []dto.ReplyButton) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	r.buttons = append(r.buttons, buttons)
	return nil
}

func (r *replyRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

func (r *replyRecorder) lastButtons() []dto.ReplyButton {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.buttons) == 0 {
		return nil
	}
	return r.buttons[len(r.buttons)-1]
}

// memDraftRepository is an in-memory stand-in for the GORM draft repository.
// findActiveErr simulates a failing owner lookup.
type memDraftRepository struct {
	mu            sync.Mutex
	drafts        map[uuid.UUID]*entity.Draft
	findActiveErr error
}

func newMemDraftRepository() *memDraftRepository {
	return &memDraftRepository{drafts: map[uuid.UUID]*entity.Draft{}}
}

func (r *memDraftRepository) Create(_ context.Context, draft *entity.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.Id] = draft
	return nil
}

func (r *memDraftRepository) Update(_ context.Context, draft *entity.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.Id] = draft
	return nil
}

func (r *memDraftRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}

func (r *memDraftRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.drafts {
		if draftMatches(d, specs) {
			return d, nil
		}
	}
	return nil, nil
}

func (r *memDraftRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Draft
	for _, d := range r.drafts {
		if draftMatches(d, specs) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memDraftRepository) FindActiveByOwner(_ context.Context, ownerID string) (*entity.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findActiveErr != nil {
		return nil, r.findActiveErr
	}
	for _, d := range r.drafts {
		if d.OwnerId == ownerID && d.Status == entity.DraftStatusDraft {
			return d, nil
		}
	}
	return nil, nil
}

func (r *memDraftRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func draftMatches(d *entity.Draft, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if d.Id != s.ID {
				return false
			}
		case specification.ByOwner:
			if d.OwnerId != s.OwnerID {
				return false
			}
		case specification.ByStatus:
			if string(d.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

// memListingRepository mirrors the listing repository in memory.
type memListingRepository struct {
	mu       sync.Mutex
	listings map[uuid.UUID]*entity.Listing
}

func newMemListingRepository() *memListingRepository {
	return &memListingRepository{listings: map[uuid.UUID]*entity.Listing{}}
}

func (r *memListingRepository) Create(_ context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[listing.Id] = listing
	return nil
}

func (r *memListingRepository) Update(_ context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[listing.Id] = listing
	return nil
}

func (r *memListingRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listings, id)
	return nil
}

func (r *memListingRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.listings {
		if listingMatches(l, specs) {
			return l, nil
		}
	}
	return nil, nil
}

func (r *memListingRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Listing
	for _, l := range r.listings {
		if listingMatches(l, specs) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memListingRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *memListingRepository) IncrementViews(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.listings[id]; ok {
		l.Views++
	}
	return nil
}

func (r *memListingRepository) IncrementContacts(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.listings[id]; ok {
		l.Contacts++
	}
	return nil
}

func listingMatches(l *entity.Listing, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if l.Id != s.ID {
				return false
			}
		case specification.ByCategory:
			if l.Category != s.Category {
				return false
			}
		case specification.ByStatus:
			if string(l.Status) != s.Status {
				return false
			}
		case specification.ExpiredBefore:
			if !l.ExpiresAt.Before(s.Now) {
				return false
			}
		}
	}
	return true
}

// memUnitOfWork wires the in-memory repositories behind the UnitOfWork
// contract. Begin/Commit are bookkeeping only.
type memUnitOfWork struct {
	drafts   *memDraftRepository
	listings *memListingRepository

	begun     int
	committed int
	rolled    int
}

func (u *memUnitOfWork) Begin(_ context.Context) error { u.begun++; return nil }
func (u *memUnitOfWork) Commit() error                 { u.committed++; return nil }
func (u *memUnitOfWork) Rollback() error               { u.rolled++; return nil }

func (u *memUnitOfWork) DraftRepository() contract.DraftRepository     { return u.drafts }
func (u *memUnitOfWork) ListingRepository() contract.ListingRepository { return u.listings }

type memRepositoryFactory struct {
	uow *memUnitOfWork
}

func newMemFactory() *memRepositoryFactory {
	return &memRepositoryFactory{uow: &memUnitOfWork{
		drafts:   newMemDraftRepository(),
		listings: newMemListingRepository(),
	}}
}

func (f *memRepositoryFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// offerResult builds a confident posting-intent classification for tests.
func offerResult(intentName string, confidence float64, entities map[string]interface{}) *intent.Result {
	return &intent.Result{
		Intent:     intentName,
		Confidence: confidence,
		Context:    contextFor(intentName),
		Entities:   entities,
		Language:   "en",
	}
}

func contextFor(intentName string) string {
	switch {
	case intent.IsPostingIntent(intentName):
		return store.ContextOffer
	case intent.CategoryFor(intentName) != "":
		return store.ContextFind
	default:
		return ""
	}
}
