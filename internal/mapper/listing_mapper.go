package mapper

import (
	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/model"

	"gorm.io/datatypes"
)

type ListingMapper struct{}

func NewListingMapper() *ListingMapper {
	return &ListingMapper{}
}

func (m *ListingMapper) ToEntity(l *model.Listing) *entity.Listing {
	if l == nil {
		return nil
	}

	return &entity.Listing{
		Id:          l.Id,
		Status:      entity.ListingStatus(l.Status),
		Category:    l.Category,
		SubCategory: l.SubCategory,
		Title:       l.Title,
		Data:        map[string]interface{}(l.Data),
		OwnerId:     l.OwnerId,
		Contact:     l.Contact,
		Views:       l.Views,
		Contacts:    l.Contacts,
		CreatedAt:   l.CreatedAt,
		ExpiresAt:   l.ExpiresAt,
	}
}

func (m *ListingMapper) ToModel(l *entity.Listing) *model.Listing {
	if l == nil {
		return nil
	}

	return &model.Listing{
		Id:          l.Id,
		Status:      string(l.Status),
		Category:    l.Category,
		SubCategory: l.SubCategory,
		Title:       l.Title,
		Data:        datatypes.JSONMap(l.Data),
		OwnerId:     l.OwnerId,
		Contact:     l.Contact,
		Views:       l.Views,
		Contacts:    l.Contacts,
		CreatedAt:   l.CreatedAt,
		ExpiresAt:   l.ExpiresAt,
	}
}

func (m *ListingMapper) ToEntities(listings []*model.Listing) []*entity.Listing {
	entities := make([]*entity.Listing, len(listings))
	for i, l := range listings {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
