// Package tariffrepo stores the singleton tariff row.
package tariffrepo

import (
	"context"
	"errors"
	"time"

	"colis/internal/core/domain/model/tariff"
	"colis/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// currentID is the primary key of the only tariff row.
const currentID = 1

type TariffDTO struct {
	ID         int             `gorm:"primaryKey;autoIncrement:false"`
	WeightRate decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	VolumeRate decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	BaseRate   decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	FixedRate  decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	UpdatedAt  time.Time
}

func (TariffDTO) TableName() string {
	return "tariffs"
}

type GormTariffRepository struct {
	db *gorm.DB
}

func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

func (r *GormTariffRepository) Get(ctx context.Context) (tariff.Tariff, error) {
	var dto TariffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", currentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tariff.Tariff{}, errs.NewObjectNotFoundError("tariff", "current")
		}
		return tariff.Tariff{}, err
	}
	return tariff.NewTariff(dto.WeightRate, dto.VolumeRate, dto.BaseRate, dto.FixedRate)
}

// Save replaces the current tariff.
func (r *GormTariffRepository) Save(ctx context.Context, t tariff.Tariff) error {
	if err := t.Validate(); err != nil {
		return err
	}
	dto := TariffDTO{
		ID:         currentID,
		WeightRate: t.WeightRate(),
		VolumeRate: t.VolumeRate(),
		BaseRate:   t.BaseRate(),
		FixedRate:  t.FixedRate(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

// SeedIfEmpty stores t unless a tariff already exists.
func (r *GormTariffRepository) SeedIfEmpty(ctx context.Context, t tariff.Tariff) error {
	if err := t.Validate(); err != nil {
		return err
	}
	dto := TariffDTO{
		ID:         currentID,
		WeightRate: t.WeightRate(),
		VolumeRate: t.VolumeRate(),
		BaseRate:   t.BaseRate(),
		FixedRate:  t.FixedRate(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}
