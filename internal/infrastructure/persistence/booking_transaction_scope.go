package persistence

import (
	"context"

	"gorm.io/gorm"

	appbooking "github.com/jetcongo/backend/internal/application/booking"
	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/payment"
)

// GormTransactionScope implements the booking-side TransactionScope using
// GORM transactions. Reservation and settlement flows run their lock-check-
// mutate sequences through it so the capacity invariant holds under
// concurrency.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appbooking.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// FlightRepo returns the flight repository scoped to the current transaction.
func (r *gormTransactionalRepositories) FlightRepo() fleet.FlightRepository {
	return NewGormFlightRepository(r.tx)
}

// AircraftRepo returns the aircraft repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AircraftRepo() fleet.AircraftRepository {
	return NewGormAircraftRepository(r.tx)
}

// ReservationRepo returns the reservation repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ReservationRepo() booking.ReservationRepository {
	return NewGormReservationRepository(r.tx)
}

// PaymentRepo returns the payment repository scoped to the current transaction.
func (r *gormTransactionalRepositories) PaymentRepo() payment.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// PaymentMethodRepo returns the payment method repository scoped to the current transaction.
func (r *gormTransactionalRepositories) PaymentMethodRepo() payment.PaymentMethodRepository {
	return NewGormPaymentMethodRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appbooking.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appbooking.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
