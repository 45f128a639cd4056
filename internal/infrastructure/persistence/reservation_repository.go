package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/shared"
	"github.com/jetcongo/backend/internal/infrastructure/persistence/models"
)

// GormReservationRepository implements ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// OccupiedSeats sums seat counts over non-cancelled reservations on a flight.
// Must run inside the same transaction as the mutation it gates, with the
// flight row already locked.
func (r *GormReservationRepository) OccupiedSeats(ctx context.Context, flightID uuid.UUID, excludeReservationID *uuid.UUID) (int, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("flight_id = ? AND status <> ?", flightID, booking.ReservationStatusCancelled)

	if excludeReservationID != nil {
		query = query.Where("id <> ?", *excludeReservationID)
	}

	var occupied int64
	if err := query.
		Select("COALESCE(SUM(seat_count), 0)").
		Scan(&occupied).Error; err != nil {
		return 0, err
	}
	return int(occupied), nil
}

// FindByID finds a reservation by its ID
func (r *GormReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a reservation by ID holding a FOR UPDATE row lock
// for the remainder of the surrounding transaction
func (r *GormReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	var model models.ReservationModel
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

// FindByUser finds all reservations owned by a user
func (r *GormReservationRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]booking.Reservation, error) {
	var reservationModels []models.ReservationModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ReservationModel{}).Where("user_id = ?", userID),
		filter,
	)

	if err := query.Find(&reservationModels).Error; err != nil {
		return nil, err
	}
	return toDomainReservations(reservationModels), nil
}

// FindAll finds all reservations matching the filter
func (r *GormReservationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Reservation, error) {
	var reservationModels []models.ReservationModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ReservationModel{}), filter)

	if err := query.Find(&reservationModels).Error; err != nil {
		return nil, err
	}
	return toDomainReservations(reservationModels), nil
}

// FindRecent finds the most recently created reservations
func (r *GormReservationRepository) FindRecent(ctx context.Context, limit int) ([]booking.Reservation, error) {
	var reservationModels []models.ReservationModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reservationModels).Error; err != nil {
		return nil, err
	}
	return toDomainReservations(reservationModels), nil
}

// CountByFlight counts reservations referencing a flight
func (r *GormReservationRepository) CountByFlight(ctx context.Context, flightID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("flight_id = ?", flightID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByUser counts reservations owned by a user
func (r *GormReservationRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts reservations in a given status
func (r *GormReservationRepository) CountByStatus(ctx context.Context, status booking.ReservationStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalSeats sums seat counts across all reservations
func (r *GormReservationRepository) TotalSeats(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Select("COALESCE(SUM(seat_count), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountCreatedBetween counts reservations created in [from, to)
func (r *GormReservationRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a reservation
func (r *GormReservationRepository) Save(ctx context.Context, reservation *booking.Reservation) error {
	model := models.ReservationModelFromDomain(reservation)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a reservation
func (r *GormReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ReservationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts reservations matching the filter
func (r *GormReservationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ReservationModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainReservations(reservationModels []models.ReservationModel) []booking.Reservation {
	reservations := make([]booking.Reservation, len(reservationModels))
	for i, model := range reservationModels {
		reservations[i] = *model.ToDomain()
	}
	return reservations
}

// applyFilter applies filter options to the query
func (r *GormReservationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
func (r *GormReservationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "flight_id":
			query = query.Where("flight_id = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		}
	}

	return query
}

// Ensure GormReservationRepository implements ReservationRepository
var _ booking.ReservationRepository = (*GormReservationRepository)(nil)
