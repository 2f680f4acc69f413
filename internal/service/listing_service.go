package service

import (
	"context"
	"time"

	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/internal/repository/cache"
	"wa-bazaar-be/internal/repository/specification"
	"wa-bazaar-be/internal/repository/unitofwork"
	"wa-bazaar-be/pkg/events"
	pktNats "wa-bazaar-be/pkg/nats"

	"github.com/google/uuid"
)

type IListingService interface {
	List(ctx context.Context, req *dto.ListListingsRequest) (*dto.ListListingsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ListingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ExpireDue retires active listings past their expiry horizon and
	// returns how many were retired.
	ExpireDue(ctx context.Context) (int, error)
	// StartExpiryLoop runs ExpireDue on a fixed interval until ctx ends.
	StartExpiryLoop(ctx context.Context, interval time.Duration)
}

type listingService struct {
	uowFactory     unitofwork.RepositoryFactory
	listingCache   *cache.ListingCache
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewListingService(
	uowFactory unitofwork.RepositoryFactory,
	listingCache *cache.ListingCache,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IListingService {
	return &listingService{
		uowFactory:     uowFactory,
		listingCache:   listingCache,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *listingService) List(ctx context.Context, req *dto.ListListingsRequest) (*dto.ListListingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if req.Category != "" {
		specs = append(specs, specification.ByCategory{Category: req.Category})
	}
	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}

	total, err := uow.ListingRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)

	listings, err := uow.ListingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListListingsResponse{
		Listings: make([]dto.ListingResponse, len(listings)),
		Total:    total,
	}
	for i, l := range listings {
		res.Listings[i] = toListingResponse(l)
	}
	return res, nil
}

func (s *listingService) Show(ctx context.Context, id uuid.UUID) (*dto.ListingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	listing, err := uow.ListingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, entity.ErrListingNotFound
	}
	res := toListingResponse(listing)
	return &res, nil
}

func (s *listingService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	listing, err := uow.ListingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if listing == nil {
		return entity.ErrListingNotFound
	}
	if err := uow.ListingRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.listingCache.Invalidate(ctx, listing.Category)
	return nil
}

func (s *listingService) ExpireDue(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	due, err := uow.ListingRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.ListingStatusActive)},
		specification.ExpiredBefore{Now: time.Now()},
	)
	if err != nil {
		return 0, err
	}

	expired := 0
	touched := map[string]bool{}
	for _, l := range due {
		l.Status = entity.ListingStatusExpired
		if err := uow.ListingRepository().Update(ctx, l); err != nil {
			s.log.Error("listing", "Failed to expire listing", map[string]interface{}{
				"listing_id": l.Id.String(),
				"error":      err.Error(),
			})
			continue
		}
		expired++
		touched[l.Category] = true

		if s.eventPublisher != nil {
			evt := events.NewListingExpired(l.Id.String(), l.OwnerId, l.Category, l.Title)
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				s.log.Warn("listing", "Failed to publish expiry event", map[string]interface{}{
					"listing_id": l.Id.String(),
					"error":      err.Error(),
				})
			}
		}
	}

	for category := range touched {
		s.listingCache.Invalidate(ctx, category)
	}

	if expired > 0 {
		s.log.Info("listing", "Expired listings", map[string]interface{}{"count": expired})
	}
	return expired, nil
}

func (s *listingService) StartExpiryLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.ExpireDue(ctx); err != nil {
					s.log.Error("listing", "Expiry batch failed", map[string]interface{}{
						"error": err.Error(),
					})
				}
			}
		}
	}()
}

func toListingResponse(l *entity.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		Id:          l.Id,
		Status:      string(l.Status),
		Category:    l.Category,
		SubCategory: l.SubCategory,
		Title:       l.Title,
		Data:        l.Data,
		OwnerId:     l.OwnerId,
		Views:       l.Views,
		Contacts:    l.Contacts,
		CreatedAt:   l.CreatedAt,
		ExpiresAt:   l.ExpiresAt,
	}
}
