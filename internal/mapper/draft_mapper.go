package mapper

import (
	"time"

	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/internal/model"

	"gorm.io/datatypes"
)

type DraftMapper struct{}

func NewDraftMapper() *DraftMapper {
	return &DraftMapper{}
}

func (m *DraftMapper) ToEntity(d *model.Draft) *entity.Draft {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Draft{
		Id:           d.Id,
		OwnerId:      d.OwnerId,
		Status:       entity.DraftStatus(d.Status),
		Category:     d.Category,
		Intent:       d.Intent,
		Data:         map[string]interface{}(d.Data),
		FilledFields: []string(d.FilledFields),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *DraftMapper) ToModel(d *entity.Draft) *model.Draft {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Draft{
		Id:           d.Id,
		OwnerId:      d.OwnerId,
		Status:       string(d.Status),
		Category:     d.Category,
		Intent:       d.Intent,
		Data:         datatypes.JSONMap(d.Data),
		FilledFields: datatypes.JSONSlice[string](d.FilledFields),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *DraftMapper) ToEntities(drafts []*model.Draft) []*entity.Draft {
	entities := make([]*entity.Draft, len(drafts))
	for i, d := range drafts {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
