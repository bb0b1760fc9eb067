package queries

import (
	"context"

	"colis/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetTariffQueryHandler struct {
	db *gorm.DB
}

func NewGetTariffQueryHandler(db *gorm.DB) GetTariffQueryHandler {
	return GetTariffQueryHandler{db: db}
}

func (h GetTariffQueryHandler) Handle(ctx context.Context, query GetTariffQuery) (GetTariffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTariffQueryResponse{}, err
	}

	var response GetTariffQueryResponse
	result := h.db.WithContext(ctx).Raw(`
		SELECT weight_rate, volume_rate, base_rate, fixed_rate
		FROM tariffs
		ORDER BY id
		LIMIT 1
	`).Scan(&response)
	if result.Error != nil {
		return GetTariffQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetTariffQueryResponse{}, errs.NewObjectNotFoundError("tariff", "current")
	}

	return response, nil
}
