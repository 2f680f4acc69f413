package unitofwork

import (
	"context"

	"wa-bazaar-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DraftRepository() contract.DraftRepository
	ListingRepository() contract.ListingRepository
}
