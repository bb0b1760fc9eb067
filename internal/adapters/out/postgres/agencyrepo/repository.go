// Package agencyrepo reads agencies. Agencies are managed by the back office;
// the engine only looks them up.
package agencyrepo

import (
	"context"
	"errors"

	"colis/internal/core/domain/model/agency"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgencyDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"size:3;not null;uniqueIndex"`
	Name string    `gorm:"size:255;not null"`
}

func (AgencyDTO) TableName() string {
	return "agencies"
}

type GormAgencyRepository struct {
	db *gorm.DB
}

func NewGormAgencyRepository(db *gorm.DB) *GormAgencyRepository {
	return &GormAgencyRepository{db: db}
}

func (r *GormAgencyRepository) Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgencyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agency", id.String())
		}
		return nil, err
	}

	return agency.NewAgency(id, dto.Code, dto.Name)
}
