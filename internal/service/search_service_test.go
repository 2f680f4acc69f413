package service

import (
	"context"
	"testing"
	"time"

	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/repository/cache"
	"wa-bazaar-be/pkg/nlp/intent"
	"wa-bazaar-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func housingListing(area string, price float64) *entity.Listing {
	return &entity.Listing{
		Id:          uuid.New(),
		Status:      entity.ListingStatusActive,
		Category:    store.CategoryHousing,
		SubCategory: "flat",
		Title:       "2 BHK flat in " + area,
		Data: map[string]interface{}{
			"housing": map[string]interface{}{
				"propertyType": "flat",
				"bhk":          float64(2),
				"price":        price,
				"description":  "nice flat near the market",
			},
			"location": map[string]interface{}{"area": area},
		},
		OwnerId:   "919888",
		Contact:   "919888",
		ExpiresAt: time.Now().Add(entity.ListingTTL),
	}
}

func TestSearchRanksWithinBudgetFirst(t *testing.T) {
	ctx := context.Background()
	factory := newMemFactory()
	svc := NewSearchService(factory, cache.NewListingCache(nil), 5, nopLogger{})

	cheap := housingListing("Kothrud", 14000)
	pricey := housingListing("Baner", 20000)
	assert.NoError(t, factory.uow.listings.Create(ctx, cheap))
	assert.NoError(t, factory.uow.listings.Create(ctx, pricey))

	result := &intent.Result{
		Intent:     intent.IntentPropertySearch,
		Confidence: 0.9,
		Context:    store.ContextFind,
		Entities: map[string]interface{}{
			"bhk":   float64(2),
			"price": float64(15000),
		},
	}
	matches, err := svc.Search(ctx, result, "2 bhk flat under 15000")
	assert.NoError(t, err)
	if assert.NotEmpty(t, matches) {
		// The listing inside budget outranks the one above it.
		assert.Equal(t, cheap.Id, matches[0].Id)
	}

	// Matches get a best-effort view bump.
	assert.Equal(t, int64(1), cheap.Views)
}

func TestSearchSkipsExpiredAndForeignCategories(t *testing.T) {
	ctx := context.Background()
	factory := newMemFactory()
	svc := NewSearchService(factory, cache.NewListingCache(nil), 5, nopLogger{})

	expired := housingListing("Kothrud", 12000)
	expired.Status = entity.ListingStatusExpired
	assert.NoError(t, factory.uow.listings.Create(ctx, expired))

	scooter := &entity.Listing{
		Id:       uuid.New(),
		Status:   entity.ListingStatusActive,
		Category: store.CategoryVehicle,
		Title:    "Honda Activa",
		Data:     map[string]interface{}{"vehicle": map[string]interface{}{}},
	}
	assert.NoError(t, factory.uow.listings.Create(ctx, scooter))

	result := &intent.Result{
		Intent:     intent.IntentPropertySearch,
		Confidence: 0.9,
		Context:    store.ContextFind,
		Entities:   map[string]interface{}{"location": "Kothrud"},
	}
	matches, err := svc.Search(ctx, result, "flat in kothrud")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchWithoutCategoryReturnsNothing(t *testing.T) {
	factory := newMemFactory()
	svc := NewSearchService(factory, cache.NewListingCache(nil), 5, nopLogger{})

	result := &intent.Result{Intent: intent.IntentGeneralHelp, Confidence: 0.2}
	matches, err := svc.Search(context.Background(), result, "anything at all")
	assert.NoError(t, err)
	assert.Nil(t, matches)
}

func TestDetailRevealsContactAndCountsEnquiry(t *testing.T) {
	ctx := context.Background()
	factory := newMemFactory()
	svc := NewSearchService(factory, cache.NewListingCache(nil), 5, nopLogger{})

	flat := housingListing("Kothrud", 14000)
	assert.NoError(t, factory.uow.listings.Create(ctx, flat))

	out, err := svc.Detail(ctx, flat.Id.String())
	assert.NoError(t, err)
	assert.Contains(t, out, "2 BHK flat in Kothrud")
	assert.Contains(t, out, "Rs 14K")
	assert.Contains(t, out, "Contact: 919888")
	// Opening the detail counts as an enquiry.
	assert.Equal(t, int64(1), flat.Contacts)
}

func TestDetailGoneListing(t *testing.T) {
	ctx := context.Background()
	factory := newMemFactory()
	svc := NewSearchService(factory, cache.NewListingCache(nil), 5, nopLogger{})

	_, err := svc.Detail(ctx, uuid.New().String())
	assert.ErrorIs(t, err, entity.ErrListingNotFound)

	_, err = svc.Detail(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrListingNotFound)

	// Expired listings are not shown either.
	stale := housingListing("Baner", 12000)
	stale.Status = entity.ListingStatusExpired
	assert.NoError(t, factory.uow.listings.Create(ctx, stale))
	_, err = svc.Detail(ctx, stale.Id.String())
	assert.ErrorIs(t, err, entity.ErrListingNotFound)
}

func TestFormatResults(t *testing.T) {
	factory := newMemFactory()
	svc := NewSearchService(factory, cache.NewListingCache(nil), 5, nopLogger{})

	out := svc.FormatResults([]*entity.Listing{
		housingListing("Kothrud", 14000),
		housingListing("Baner", 20000),
	})
	assert.Contains(t, out, "Found 2 matching listings:")
	assert.Contains(t, out, "1. 2 BHK flat in Kothrud - Rs 14K, Kothrud")
	assert.Contains(t, out, "Contact: 919888")
	assert.Contains(t, out, "Reply with a number for more details.")

	assert.Equal(t, "", svc.FormatResults(nil))
}
