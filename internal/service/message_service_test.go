package service

import (
	"context"
	"errors"
	stdlog "log"
	"os"
	"testing"

	"wa-bazaar-be/internal/constant"
	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/repository/memory"
	"wa-bazaar-be/pkg/nlp/assist"
	"wa-bazaar-be/pkg/nlp/intent"
	"wa-bazaar-be/pkg/store"
	"wa-bazaar-be/pkg/transcribe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// passPosting refuses every message, so routing falls through to search.
type passPosting struct{}

func (passPosting) Handle(_ context.Context, _ *store.Session, _ string, _ *intent.Result) (bool, error) {
	return false, nil
}

// claimPosting takes every message, mimicking an in-progress flow.
type claimPosting struct {
	called bool
}

func (c *claimPosting) Handle(_ context.Context, _ *store.Session, _ string, _ *intent.Result) (bool, error) {
	c.called = true
	return true, nil
}

// failPosting claims the message and then fails, like a dead database.
type failPosting struct{}

func (failPosting) Handle(_ context.Context, _ *store.Session, _ string, _ *intent.Result) (bool, error) {
	return true, errors.New("connection refused")
}

type stubSearch struct {
	matches   []*entity.Listing
	queries   []string
	detailIDs []string
	detailErr error
}

func (s *stubSearch) Search(_ context.Context, _ *intent.Result, rawText string) ([]*entity.Listing, error) {
	s.queries = append(s.queries, rawText)
	return s.matches, nil
}

func (s *stubSearch) FormatResults(_ []*entity.Listing) string {
	return "formatted results"
}

func (s *stubSearch) Detail(_ context.Context, id string) (string, error) {
	s.detailIDs = append(s.detailIDs, id)
	if s.detailErr != nil {
		return "", s.detailErr
	}
	return "detail view", nil
}

func newMessageFixture(posting IPostingService, search ISearchService) (*replyRecorder, IMessageService) {
	replies := &replyRecorder{}
	resolver := assist.NewResolver(nil, stdlog.New(os.Stdout, "", 0))
	svc := NewMessageService(
		memory.NewSessionRepository(), resolver, posting, search, replies,
		transcribe.NewNoop(), nil, nopLogger{},
	)
	return replies, svc
}

func textMessage(from, body string) *dto.InboundMessage {
	return &dto.InboundMessage{
		From: from,
		Id:   "wamid.test",
		Type: "text",
		Text: &dto.InboundText{Body: body},
	}
}

func TestProcessMessageGreeting(t *testing.T) {
	replies, svc := newMessageFixture(&passPosting{}, &stubSearch{})

	err := svc.ProcessMessage(context.Background(), textMessage("919111", "hello"))
	assert.NoError(t, err)
	assert.Equal(t, constant.ReplyGreeting, replies.last())
}

func TestProcessMessageSearchPath(t *testing.T) {
	match := &entity.Listing{Title: "Plumber in Noida"}
	search := &stubSearch{matches: []*entity.Listing{match}}
	replies, svc := newMessageFixture(&passPosting{}, search)

	err := svc.ProcessMessage(context.Background(), textMessage("919111", "I need a plumber in Noida"))
	assert.NoError(t, err)
	assert.Equal(t, "formatted results", replies.last())
	assert.Len(t, search.queries, 1)
}

func TestProcessMessageSearchNoResults(t *testing.T) {
	replies, svc := newMessageFixture(&passPosting{}, &stubSearch{})

	err := svc.ProcessMessage(context.Background(), textMessage("919111", "I need a plumber in Noida"))
	assert.NoError(t, err)
	assert.Equal(t, constant.ReplyNoResults, replies.last())
}

func TestProcessMessageGibberishFallsBack(t *testing.T) {
	replies, svc := newMessageFixture(&passPosting{}, &stubSearch{})

	err := svc.ProcessMessage(context.Background(), textMessage("919111", "xyzzy qwerty plugh"))
	assert.NoError(t, err)
	assert.Equal(t, constant.ReplyNotUnderstood, replies.last())
}

func TestProcessMessageEmptyText(t *testing.T) {
	replies, svc := newMessageFixture(&passPosting{}, &stubSearch{})

	err := svc.ProcessMessage(context.Background(), &dto.InboundMessage{From: "919111", Type: "text"})
	assert.NoError(t, err)
	assert.Equal(t, constant.ReplyNotUnderstood, replies.last())
}

func TestProcessMessageVoiceWithoutBackend(t *testing.T) {
	replies, svc := newMessageFixture(&passPosting{}, &stubSearch{})

	msg := &dto.InboundMessage{
		From:  "919111",
		Type:  "audio",
		Audio: &dto.InboundAudio{Id: "media-1", MimeType: "audio/ogg", Voice: true},
	}
	err := svc.ProcessMessage(context.Background(), msg)
	assert.NoError(t, err)
	assert.Equal(t, constant.ReplyVoiceUnavailable, replies.last())
}

func TestProcessMessageFailureSendsRetryLater(t *testing.T) {
	replies, svc := newMessageFixture(failPosting{}, &stubSearch{})

	err := svc.ProcessMessage(context.Background(), textMessage("919111", "I am a plumber in Noida"))
	assert.NoError(t, err)
	// The failure is swallowed at the boundary and the user still hears back.
	assert.Equal(t, constant.ReplyTryLater, replies.last())
}

func TestProcessMessageNumberSelectsSearchResult(t *testing.T) {
	match := &entity.Listing{Id: uuid.New(), Title: "Plumber in Noida"}
	search := &stubSearch{matches: []*entity.Listing{match}}
	replies, svc := newMessageFixture(&passPosting{}, search)

	err := svc.ProcessMessage(context.Background(), textMessage("919111", "I need a plumber in Noida"))
	assert.NoError(t, err)
	assert.Equal(t, "formatted results", replies.last())

	// A bare number on the next turn opens that result.
	err = svc.ProcessMessage(context.Background(), textMessage("919111", "1"))
	assert.NoError(t, err)
	assert.Equal(t, "detail view", replies.last())
	assert.Equal(t, []string{match.Id.String()}, search.detailIDs)

	// Out of range asks again instead of erroring.
	err = svc.ProcessMessage(context.Background(), textMessage("919111", "4"))
	assert.NoError(t, err)
	assert.Contains(t, replies.last(), "between 1 and 1")
}

func TestProcessMessageNumberForGoneListing(t *testing.T) {
	match := &entity.Listing{Id: uuid.New(), Title: "Plumber in Noida"}
	search := &stubSearch{matches: []*entity.Listing{match}, detailErr: entity.ErrListingNotFound}
	replies, svc := newMessageFixture(&passPosting{}, search)

	assert.NoError(t, svc.ProcessMessage(context.Background(), textMessage("919111", "I need a plumber in Noida")))
	assert.NoError(t, svc.ProcessMessage(context.Background(), textMessage("919111", "1")))
	assert.Equal(t, constant.ReplyListingGone, replies.last())
}

func TestProcessMessagePostingHasFirstRefusal(t *testing.T) {
	posting := &claimPosting{}
	search := &stubSearch{matches: []*entity.Listing{{Title: "x"}}}
	replies, svc := newMessageFixture(posting, search)

	err := svc.ProcessMessage(context.Background(), textMessage("919111", "I need a plumber in Noida"))
	assert.NoError(t, err)
	// Posting claimed the message, so search never ran and no extra reply
	// was sent on top of whatever posting said.
	assert.True(t, posting.called)
	assert.Empty(t, search.queries)
	assert.Empty(t, replies.texts)
}
