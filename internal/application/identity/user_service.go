package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/identity"
	"github.com/jetcongo/backend/internal/domain/shared"
)

// ReservationCounter reports how many reservations a user holds.
// Satisfied by the booking reservation repository.
type ReservationCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// UserService handles back-office user administration
type UserService struct {
	userRepo        identity.UserRepository
	reservationRepo ReservationCounter
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, reservationRepo ReservationCounter) *UserService {
	return &UserService{
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
	}
}

// Create registers a user with an explicit role (back-office)
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.FullName, req.Email, req.Password, identity.UserRole(req.Role))
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Update applies partial changes to a user account
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if err := user.SetFullName(*req.FullName); err != nil {
			return nil, err
		}
	}
	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
		}
		if err := user.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Role != nil {
		if err := user.SetRole(identity.UserRole(*req.Role)); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := user.SetStatus(identity.UserStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Delete removes a user account. Accounts holding reservations cannot be
// deleted; disable them instead.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}

	reservationCount, err := s.reservationRepo.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if reservationCount > 0 {
		return shared.NewDomainError("CONFLICT", "User holds existing reservations")
	}

	return s.userRepo.Delete(ctx, id)
}

// Get retrieves a user by ID
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with filtering and pagination
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}
