package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/shared"
	"github.com/jetcongo/backend/internal/infrastructure/persistence/models"
)

// GormFlightRepository implements FlightRepository using GORM
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GormFlightRepository
func NewGormFlightRepository(db *gorm.DB) *GormFlightRepository {
	return &GormFlightRepository{db: db}
}

// FindByID finds a flight by its ID
func (r *GormFlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Flight, error) {
	var model models.FlightModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByID finds a flight by ID, restricted to ACTIVE status
func (r *GormFlightRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*fleet.Flight, error) {
	var model models.FlightModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, fleet.FlightStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a flight by ID holding a FOR UPDATE row lock for
// the remainder of the surrounding transaction. Seat capacity checks against
// the flight serialize behind this lock.
func (r *GormFlightRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*fleet.Flight, error) {
	var model models.FlightModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all flights matching the filter
func (r *GormFlightRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Flight, error) {
	var flightModels []models.FlightModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.FlightModel{}), filter)

	if err := query.Find(&flightModels).Error; err != nil {
		return nil, err
	}

	flights := make([]fleet.Flight, len(flightModels))
	for i, model := range flightModels {
		flights[i] = *model.ToDomain()
	}
	return flights, nil
}

// Search runs the public flight search over ACTIVE flights. It fetches one
// row beyond the page size to report whether a further page may exist.
func (r *GormFlightRepository) Search(ctx context.Context, criteria fleet.SearchCriteria) ([]fleet.Flight, bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.FlightModel{}).
		Where("status = ?", fleet.FlightStatusActive)

	if criteria.Origin != "" {
		query = query.Where("origin ILIKE ?", criteria.Origin)
	}
	if criteria.Destination != "" {
		query = query.Where("destination ILIKE ?", criteria.Destination)
	}
	if criteria.DepartureDate != nil {
		d := *criteria.DepartureDate
		dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		query = query.Where("departure_at >= ? AND departure_at < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	switch criteria.Sort {
	case fleet.FlightSortPriceAsc:
		query = query.Order("fare ASC")
	case fleet.FlightSortPriceDesc:
		query = query.Order("fare DESC")
	default:
		query = query.Order("departure_at ASC")
	}

	offset := (criteria.Page - 1) * criteria.Limit
	query = query.Offset(offset).Limit(criteria.Limit + 1)

	var flightModels []models.FlightModel
	if err := query.Find(&flightModels).Error; err != nil {
		return nil, false, err
	}

	hasMore := len(flightModels) > criteria.Limit
	if hasMore {
		flightModels = flightModels[:criteria.Limit]
	}

	flights := make([]fleet.Flight, len(flightModels))
	for i, model := range flightModels {
		flights[i] = *model.ToDomain()
	}
	return flights, hasMore, nil
}

// FindActiveByAircraft finds the ACTIVE flights operated by an aircraft
func (r *GormFlightRepository) FindActiveByAircraft(ctx context.Context, aircraftID uuid.UUID) ([]fleet.Flight, error) {
	var flightModels []models.FlightModel
	if err := r.db.WithContext(ctx).
		Where("aircraft_id = ? AND status = ?", aircraftID, fleet.FlightStatusActive).
		Find(&flightModels).Error; err != nil {
		return nil, err
	}

	flights := make([]fleet.Flight, len(flightModels))
	for i, model := range flightModels {
		flights[i] = *model.ToDomain()
	}
	return flights, nil
}

// CountByAircraft counts flights referencing an aircraft
func (r *GormFlightRepository) CountByAircraft(ctx context.Context, aircraftID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FlightModel{}).
		Where("aircraft_id = ?", aircraftID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountCancelled counts flights in any historical cancelled spelling. Rows
// written by the legacy system carry French statuses, so matching is done
// case-insensitively against the known synonyms.
func (r *GormFlightRepository) CountCancelled(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FlightModel{}).
		Where("LOWER(status) IN ?", fleet.CancelledFlightSynonyms).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByDepartureDay finds flights departing within a calendar day
func (r *GormFlightRepository) FindByDepartureDay(ctx context.Context, day time.Time) ([]fleet.Flight, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var flightModels []models.FlightModel
	if err := r.db.WithContext(ctx).
		Where("departure_at >= ? AND departure_at < ?", dayStart, dayStart.Add(24*time.Hour)).
		Order("departure_at ASC").
		Find(&flightModels).Error; err != nil {
		return nil, err
	}

	flights := make([]fleet.Flight, len(flightModels))
	for i, model := range flightModels {
		flights[i] = *model.ToDomain()
	}
	return flights, nil
}

// Save creates or updates a flight
func (r *GormFlightRepository) Save(ctx context.Context, flight *fleet.Flight) error {
	model := models.FlightModelFromDomain(flight)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a flight
func (r *GormFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FlightModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts flights matching the filter
func (r *GormFlightRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.FlightModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormFlightRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("departure_at ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFlightRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("origin ILIKE ? OR destination ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "aircraft_id":
			query = query.Where("aircraft_id = ?", value)
		case "origin":
			query = query.Where("origin = ?", value)
		case "destination":
			query = query.Where("destination = ?", value)
		}
	}

	return query
}

// Ensure GormFlightRepository implements FlightRepository
var _ fleet.FlightRepository = (*GormFlightRepository)(nil)
