package service

import (
	"context"
	"testing"

	"wa-bazaar-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestNotifierMessagesOwnerOnExpiry(t *testing.T) {
	replies := &replyRecorder{}
	svc := NewNotifierService(nil, replies, nopLogger{})

	evt := events.NewListingExpired("lst-1", "919900000011", "housing", "2 BHK Flat in Kothrud")
	assert.NoError(t, svc.HandleEvent(context.Background(), evt))
	assert.Contains(t, replies.last(), "2 BHK Flat in Kothrud")
	assert.Contains(t, replies.last(), "expired")
}

func TestNotifierIgnoresOtherEvents(t *testing.T) {
	replies := &replyRecorder{}
	svc := NewNotifierService(nil, replies, nopLogger{})

	evt := events.NewListingPublished("lst-1", "919900000011", "housing", "Plumber in Noida")
	assert.NoError(t, svc.HandleEvent(context.Background(), evt))
	assert.Empty(t, replies.texts)
}

func TestNotifierDropsExpiryWithoutOwner(t *testing.T) {
	replies := &replyRecorder{}
	svc := NewNotifierService(nil, replies, nopLogger{})

	evt := events.BaseEvent{Type: events.TypeListingExpired, Data: map[string]interface{}{
		"listing_id": "lst-2",
	}}
	assert.NoError(t, svc.HandleEvent(context.Background(), evt))
	assert.Empty(t, replies.texts)
}

func TestNotifierStartWithoutBroker(t *testing.T) {
	svc := NewNotifierService(nil, &replyRecorder{}, nopLogger{})
	assert.NoError(t, svc.Start())
}
