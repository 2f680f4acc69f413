package memory

import (
	"testing"

	"wa-bazaar-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	repo := NewSessionRepository()

	first := repo.GetOrCreate("919900112233")
	assert.Equal(t, "919900112233", first.UserID)
	assert.Equal(t, store.ModeIdle, first.Mode)

	first.Mode = store.ModePosting
	first.Category = store.CategoryHousing
	repo.Save(first)

	second := repo.GetOrCreate("919900112233")
	assert.Same(t, first, second)
	assert.Equal(t, store.ModePosting, second.Mode)
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("919900000001")
	b := repo.GetOrCreate("919900000002")

	a.Mode = store.ModePosting
	repo.Save(a)

	assert.Equal(t, store.ModeIdle, b.Mode)
}

func TestDeleteForgetsSession(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("919900000003")
	s.Mode = store.ModePosting
	repo.Save(s)

	repo.Delete(s.ID)

	_, found := repo.Get(s.ID)
	assert.False(t, found)

	fresh := repo.GetOrCreate(s.ID)
	assert.Equal(t, store.ModeIdle, fresh.Mode)
}

func TestSaveTouchesUpdatedAt(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("919900000004")
	before := s.UpdatedAt
	repo.Save(s)
	assert.False(t, s.UpdatedAt.Before(before))
}

func TestResetClearsPostingState(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("919900000005")
	s.Mode = store.ModePosting
	s.Category = store.CategoryVehicle
	s.DraftID = "some-draft"
	s.ExpectedField = "price"
	s.PendingCategory = store.CategoryHousing
	repo.Save(s)

	s.Reset()
	repo.Save(s)

	got, found := repo.Get(s.ID)
	assert.True(t, found)
	assert.Equal(t, store.ModeIdle, got.Mode)
	assert.Empty(t, got.Category)
	assert.Empty(t, got.DraftID)
	assert.Empty(t, got.ExpectedField)
	assert.Empty(t, got.PendingCategory)
}
