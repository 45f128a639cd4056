package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/shared"
	"github.com/jetcongo/backend/internal/infrastructure/persistence/models"
)

// GormAircraftRepository implements AircraftRepository using GORM
type GormAircraftRepository struct {
	db *gorm.DB
}

// NewGormAircraftRepository creates a new GormAircraftRepository
func NewGormAircraftRepository(db *gorm.DB) *GormAircraftRepository {
	return &GormAircraftRepository{db: db}
}

// FindByID finds an aircraft by its ID
func (r *GormAircraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Aircraft, error) {
	var model models.AircraftModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all aircraft matching the filter
func (r *GormAircraftRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Aircraft, error) {
	var aircraftModels []models.AircraftModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.AircraftModel{}), filter)

	if err := query.Find(&aircraftModels).Error; err != nil {
		return nil, err
	}

	aircraft := make([]fleet.Aircraft, len(aircraftModels))
	for i, model := range aircraftModels {
		aircraft[i] = *model.ToDomain()
	}
	return aircraft, nil
}

// Save creates or updates an aircraft
func (r *GormAircraftRepository) Save(ctx context.Context, aircraft *fleet.Aircraft) error {
	model := models.AircraftModelFromDomain(aircraft)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an aircraft
func (r *GormAircraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AircraftModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts aircraft matching the filter
func (r *GormAircraftRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.AircraftModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormAircraftRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAircraftRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("model ILIKE ? OR airline ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "airline":
			query = query.Where("airline = ?", value)
		}
	}

	return query
}

// Ensure GormAircraftRepository implements AircraftRepository
var _ fleet.AircraftRepository = (*GormAircraftRepository)(nil)
