package service

import (
	"context"
	"testing"
	"time"

	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/repository/cache"
	"wa-bazaar-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newListingFixture() (*memRepositoryFactory, IListingService) {
	factory := newMemFactory()
	svc := NewListingService(factory, cache.NewListingCache(nil), nil, nopLogger{})
	return factory, svc
}

func TestExpireDueFlipsOverdueListings(t *testing.T) {
	ctx := context.Background()
	factory, svc := newListingFixture()

	overdue := housingListing("Kothrud", 14000)
	overdue.ExpiresAt = time.Now().Add(-time.Hour)
	fresh := housingListing("Baner", 20000)
	assert.NoError(t, factory.uow.listings.Create(ctx, overdue))
	assert.NoError(t, factory.uow.listings.Create(ctx, fresh))

	count, err := svc.ExpireDue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, entity.ListingStatusExpired, overdue.Status)
	assert.Equal(t, entity.ListingStatusActive, fresh.Status)

	// Idempotent: a second sweep finds nothing active and overdue.
	count, err = svc.ExpireDue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestShowUnknownListing(t *testing.T) {
	_, svc := newListingFixture()

	_, err := svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrListingNotFound)
}

func TestDeleteRemovesListing(t *testing.T) {
	ctx := context.Background()
	factory, svc := newListingFixture()

	l := housingListing("Kothrud", 14000)
	assert.NoError(t, factory.uow.listings.Create(ctx, l))

	assert.NoError(t, svc.Delete(ctx, l.Id))
	assert.ErrorIs(t, svc.Delete(ctx, l.Id), entity.ErrListingNotFound)
}

func TestListFiltersByCategoryAndStatus(t *testing.T) {
	ctx := context.Background()
	factory, svc := newListingFixture()

	flat := housingListing("Kothrud", 14000)
	expiredFlat := housingListing("Baner", 20000)
	expiredFlat.Status = entity.ListingStatusExpired
	assert.NoError(t, factory.uow.listings.Create(ctx, flat))
	assert.NoError(t, factory.uow.listings.Create(ctx, expiredFlat))

	res, err := svc.List(ctx, &dto.ListListingsRequest{
		Category: store.CategoryHousing,
		Status:   string(entity.ListingStatusActive),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	if assert.Len(t, res.Listings, 1) {
		assert.Equal(t, flat.Id, res.Listings[0].Id)
	}
}
