package contract

import (
	"context"

	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Listing, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Listing, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// IncrementViews bumps the view counter without a read-modify-write.
	IncrementViews(ctx context.Context, id uuid.UUID) error
	// IncrementContacts bumps the contact-reveal counter.
	IncrementContacts(ctx context.Context, id uuid.UUID) error
}
