package booking

import (
	"context"

	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/payment"
)

// TransactionScope provides atomic execution of multiple repository operations.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the booking-side repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
//
// Capacity discipline: callers gating a seat mutation must lock the flight
// row (FlightRepo().FindByIDForUpdate) before consulting the capacity ledger,
// so concurrent check-then-act sequences on one flight serialize.
type TransactionalRepositories interface {
	// FlightRepo returns the flight repository scoped to the current transaction
	FlightRepo() fleet.FlightRepository
	// AircraftRepo returns the aircraft repository scoped to the current transaction
	AircraftRepo() fleet.AircraftRepository
	// ReservationRepo returns the reservation repository scoped to the current transaction
	ReservationRepo() booking.ReservationRepository
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() payment.PaymentRepository
	// PaymentMethodRepo returns the payment method repository scoped to the current transaction
	PaymentMethodRepo() payment.PaymentMethodRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	Flights        fleet.FlightRepository
	Aircraft       fleet.AircraftRepository
	Reservations   booking.ReservationRepository
	Payments       payment.PaymentRepository
	PaymentMethods payment.PaymentMethodRepository
}

// Execute runs the function directly against the configured repositories
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// FlightRepo returns the configured flight repository
func (s *NoOpTransactionScope) FlightRepo() fleet.FlightRepository { return s.Flights }

// AircraftRepo returns the configured aircraft repository
func (s *NoOpTransactionScope) AircraftRepo() fleet.AircraftRepository { return s.Aircraft }

// ReservationRepo returns the configured reservation repository
func (s *NoOpTransactionScope) ReservationRepo() booking.ReservationRepository {
	return s.Reservations
}

// PaymentRepo returns the configured payment repository
func (s *NoOpTransactionScope) PaymentRepo() payment.PaymentRepository { return s.Payments }

// PaymentMethodRepo returns the configured payment method repository
func (s *NoOpTransactionScope) PaymentMethodRepo() payment.PaymentMethodRepository {
	return s.PaymentMethods
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
