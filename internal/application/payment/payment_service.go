package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appbooking "github.com/jetcongo/backend/internal/application/booking"
	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/identity"
	"github.com/jetcongo/backend/internal/domain/payment"
	"github.com/jetcongo/backend/internal/domain/shared"
)

// PaymentService settles reservations.
// The duplicate check and the payment insert run in one transaction with the
// reservation row locked, so two concurrent attempts can never both settle.
type PaymentService struct {
	txScope  appbooking.TransactionScope
	userRepo identity.UserRepository
	notifier ReceiptNotifier
	logger   *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(txScope appbooking.TransactionScope, userRepo identity.UserRepository, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		txScope:  txScope,
		userRepo: userRepo,
		logger:   logger,
	}
}

// SetReceiptNotifier sets the best-effort receipt collaborator
func (s *PaymentService) SetReceiptNotifier(notifier ReceiptNotifier) {
	s.notifier = notifier
}

// Pay applies exactly one payment to a reservation.
// payerID nil means the back-office flow: no ownership check. After commit
// the receipt is dispatched best-effort; its failure is logged, never
// returned.
func (s *PaymentService) Pay(ctx context.Context, payerID *uuid.UUID, req PayRequest) (*PaymentResponse, error) {
	if !payment.ValidPhoneNumber(req.PhoneNumber) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Phone number must be 9 digits")
	}

	var (
		settled     *payment.Payment
		reservation *booking.Reservation
		receipt     Receipt
	)
	err := s.txScope.Execute(ctx, func(repos appbooking.TransactionalRepositories) error {
		var err error
		reservation, err = repos.ReservationRepo().FindByIDForUpdate(ctx, req.ReservationID)
		if err != nil {
			return err
		}
		if payerID != nil && reservation.UserID != *payerID {
			return shared.ErrForbidden
		}

		exists, err := repos.PaymentRepo().ExistsForReservation(ctx, reservation.ID)
		if err != nil {
			return err
		}
		if exists {
			return shared.ErrDuplicatePayment
		}

		method, err := s.resolveMethod(ctx, repos)
		if err != nil {
			return err
		}

		settled, err = payment.NewPayment(reservation.ID, method.ID, reservation.Total, req.PhoneNumber)
		if err != nil {
			return err
		}
		if err := repos.PaymentRepo().Save(ctx, settled); err != nil {
			return err
		}

		if err := reservation.MarkPaid(); err != nil {
			return err
		}
		if err := repos.ReservationRepo().Save(ctx, reservation); err != nil {
			return err
		}

		receipt, err = s.buildReceipt(ctx, repos, reservation, settled)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.dispatchReceipt(ctx, receipt)

	response := ToPaymentResponse(settled, payment.MobileMoneyMethodLabel)
	return &response, nil
}

// resolveMethod finds the mobile money method, creating it lazily on first use
func (s *PaymentService) resolveMethod(ctx context.Context, repos appbooking.TransactionalRepositories) (*payment.PaymentMethod, error) {
	method, err := repos.PaymentMethodRepo().FindByLabel(ctx, payment.MobileMoneyMethodLabel)
	if err == nil {
		return method, nil
	}
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != shared.ErrNotFound.Code {
		return nil, err
	}

	method, err = payment.NewPaymentMethod(payment.MobileMoneyMethodLabel)
	if err != nil {
		return nil, err
	}
	if err := repos.PaymentMethodRepo().Save(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// buildReceipt assembles the receipt payload from in-transaction reads so the
// dispatched receipt reflects exactly what was committed
func (s *PaymentService) buildReceipt(ctx context.Context, repos appbooking.TransactionalRepositories, reservation *booking.Reservation, settled *payment.Payment) (Receipt, error) {
	flight, err := repos.FlightRepo().FindByID(ctx, reservation.FlightID)
	if err != nil {
		return Receipt{}, err
	}

	clientName := ""
	if user, err := s.userRepo.FindByID(ctx, reservation.UserID); err == nil {
		clientName = user.FullName
	}

	subtotal := booking.ComputeSubtotal(flight.Fare, reservation.SeatCount)
	taxes := settled.Amount.Sub(subtotal)

	return Receipt{
		Reference:   ReceiptReference(flight.Origin, flight.Destination, reservation.ID.String()),
		PaidAt:      time.Now(),
		ClientName:  clientName,
		Route:       flight.Route(),
		Seats:       reservation.SeatCount,
		DepartureAt: flight.DepartureAt,
		Subtotal:    subtotal.StringFixed(2),
		Taxes:       taxes.StringFixed(2),
		ServiceFee:  booking.FixedServiceFee.StringFixed(2),
		Total:       settled.Amount.StringFixed(2),
	}, nil
}

// dispatchReceipt sends the receipt after commit. Failure never reaches the
// caller.
func (s *PaymentService) dispatchReceipt(ctx context.Context, receipt Receipt) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.PublishReceipt(ctx, receipt); err != nil {
		s.logger.Error("Receipt dispatch failed",
			zap.String("reference", receipt.Reference),
			zap.Error(err))
	}
}

// GetByReservation returns the payment settling a reservation, if any
func (s *PaymentService) GetByReservation(ctx context.Context, reservationID uuid.UUID) (*PaymentResponse, error) {
	var resp *PaymentResponse
	err := s.txScope.Execute(ctx, func(repos appbooking.TransactionalRepositories) error {
		settled, err := repos.PaymentRepo().FindByReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		r := ToPaymentResponse(settled, payment.MobileMoneyMethodLabel)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
