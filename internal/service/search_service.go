package service

import (
	"context"
	"fmt"
	"strings"

	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/internal/repository/cache"
	"wa-bazaar-be/internal/repository/specification"
	"wa-bazaar-be/internal/repository/unitofwork"
	"wa-bazaar-be/pkg/dialog/fieldpath"
	"wa-bazaar-be/pkg/dialog/schema"
	"wa-bazaar-be/pkg/dialog/summary"
	"wa-bazaar-be/pkg/nlp/intent"
	"wa-bazaar-be/pkg/scoring"

	"github.com/google/uuid"
)

type ISearchService interface {
	// Search scores the active listings of the classified category against
	// the query entities and returns the ranked matches.
	Search(ctx context.Context, result *intent.Result, rawText string) ([]*entity.Listing, error)
	// FormatResults renders matches as one WhatsApp reply.
	FormatResults(listings []*entity.Listing) string
	// Detail renders the full view of one listing, revealing the contact
	// and counting the reveal.
	Detail(ctx context.Context, id string) (string, error)
}

type searchService struct {
	uowFactory   unitofwork.RepositoryFactory
	listingCache *cache.ListingCache
	maxResults   int
	log          logger.ILogger
}

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	listingCache *cache.ListingCache,
	maxResults int,
	log logger.ILogger,
) ISearchService {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &searchService{
		uowFactory:   uowFactory,
		listingCache: listingCache,
		maxResults:   maxResults,
		log:          log,
	}
}

func (s *searchService) Search(ctx context.Context, result *intent.Result, rawText string) ([]*entity.Listing, error) {
	category := result.Category()
	if category == "" {
		return nil, nil
	}

	pool, err := s.activeListings(ctx, category)
	if err != nil {
		return nil, err
	}

	query := buildScoringQuery(category, result, rawText)
	matches := scoring.Search(pool, query, scoring.Options{MaxResults: s.maxResults})
	if len(matches) > s.maxResults {
		matches = matches[:s.maxResults]
	}

	s.log.Info("search", "Search executed", map[string]interface{}{
		"category": category,
		"pool":     len(pool),
		"matches":  len(matches),
	})

	// View counters are best effort, a failed bump never fails the search.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	for _, l := range matches {
		if err := uow.ListingRepository().IncrementViews(ctx, l.Id); err != nil {
			s.log.Warn("search", "Failed to bump view counter", map[string]interface{}{
				"listing_id": l.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	return matches, nil
}

func (s *searchService) activeListings(ctx context.Context, category string) ([]*entity.Listing, error) {
	if cached, ok := s.listingCache.Get(ctx, category); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	pool, err := uow.ListingRepository().FindAll(ctx,
		specification.ByCategory{Category: category},
		specification.ByStatus{Status: string(entity.ListingStatusActive)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	s.listingCache.Set(ctx, category, pool)
	return pool, nil
}

// buildScoringQuery translates extracted entities into the scoring
// signal keys. The free text rides along as description keywords.
func buildScoringQuery(category string, result *intent.Result, rawText string) map[string]interface{} {
	query := map[string]interface{}{}

	if loc := fieldpath.GetString(result.Entities, "location"); loc != "" {
		query["city"] = loc
	}
	if typeField := schema.PrimaryTypeField(category); typeField != "" {
		if v := fieldpath.GetString(result.Entities, typeField); v != "" {
			query["type"] = v
		}
	}
	if bhk, ok := result.Entities["bhk"]; ok {
		query["bhk"] = bhk
	}
	if price, ok := result.Entities["price"]; ok {
		query["budget"] = price
	}
	if rawText != "" {
		query["keywords"] = rawText
	}
	return query
}

func (s *searchService) FormatResults(listings []*entity.Listing) string {
	if len(listings) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matching listing", len(listings))
	if len(listings) > 1 {
		b.WriteString("s")
	}
	b.WriteString(":\n")

	for i, l := range listings {
		fmt.Fprintf(&b, "\n%d. %s", i+1, l.Title)
		if price, ok := fieldpath.Get(l.Data, l.Category+".price"); ok {
			if amount, isNum := price.(float64); isNum && amount > 0 {
				fmt.Fprintf(&b, " - Rs %s", summary.FormatAmount(amount))
			}
		}
		if area := fieldpath.GetString(l.Data, "location.area"); area != "" {
			fmt.Fprintf(&b, ", %s", area)
		}
		if l.Contact != "" {
			fmt.Fprintf(&b, "\n   Contact: %s", l.Contact)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nReply with a number for more details.")
	return b.String()
}

func (s *searchService) Detail(ctx context.Context, id string) (string, error) {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return "", entity.ErrListingNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	listing, err := uow.ListingRepository().FindOne(ctx, specification.ByID{ID: listingID})
	if err != nil {
		return "", err
	}
	if listing == nil || listing.Status != entity.ListingStatusActive {
		return "", entity.ErrListingNotFound
	}

	// Contact reveal counts as an enquiry. Best effort, like view bumps.
	if err := uow.ListingRepository().IncrementContacts(ctx, listing.Id); err != nil {
		s.log.Warn("search", "Failed to bump contact counter", map[string]interface{}{
			"listing_id": listing.Id.String(),
			"error":      err.Error(),
		})
	}

	var b strings.Builder
	b.WriteString(listing.Title)
	b.WriteString("\n")
	if sch, ok := schema.Get(listing.Category); ok {
		writeDetailLines(&b, listing, sch.Required)
		writeDetailLines(&b, listing, sch.Optional)
	}
	if listing.Contact != "" {
		fmt.Fprintf(&b, "\nContact: %s", listing.Contact)
	}
	return b.String(), nil
}

func writeDetailLines(b *strings.Builder, listing *entity.Listing, paths []string) {
	for _, path := range paths {
		raw, ok := fieldpath.Get(listing.Data, schema.DataPath(listing.Category, path))
		if !ok || raw == nil {
			continue
		}
		label := schema.LabelFor(listing.Category, path)
		switch v := raw.(type) {
		case float64:
			if summary.IsAmountField(path) {
				fmt.Fprintf(b, "%s: Rs %s\n", label, summary.FormatAmount(v))
			} else {
				fmt.Fprintf(b, "%s: %v\n", label, v)
			}
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
			fmt.Fprintf(b, "%s: %s\n", label, summary.TitleCase(v))
		default:
			fmt.Fprintf(b, "%s: %v\n", label, v)
		}
	}
}
