package contract

import (
	"context"

	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DraftRepository interface {
	Create(ctx context.Context, draft *entity.Draft) error
	Update(ctx context.Context, draft *entity.Draft) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Draft, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Draft, error)
	// FindActiveByOwner returns the owner's single in-progress draft, or
	// nil when none exists.
	FindActiveByOwner(ctx context.Context, ownerID string) (*entity.Draft, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
