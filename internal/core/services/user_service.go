package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/core/policy"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/SscSPs/tour_orders_app/internal/utils"
	"github.com/google/uuid"
)

// systemUserID audits records created outside of a request, such as the bootstrap account.
const systemUserID = "system"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the staff account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	if err := policy.Authorize(actor, policy.OpManageUsers, policy.Target{}); err != nil {
		return nil, err
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	user, err := s.newUser(req.Email, req.Name, req.Password, role, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, user.Email)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return user, nil
}

// EnsureSupervisor creates the bootstrap supervisor when no account uses email yet.
func (s *userService) EnsureSupervisor(ctx context.Context, email, password string) error {
	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up bootstrap supervisor: %w", err)
	}

	user, err := s.newUser(email, "Supervisor", password, domain.RoleSupervisor, systemUserID)
	if err != nil {
		return err
	}
	if err := s.userRepo.SaveUser(ctx, *user); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return fmt.Errorf("failed to create bootstrap supervisor: %w", err)
	}
	s.LogInfo(ctx, "Bootstrap supervisor created", slog.String("user_id", user.UserID))
	return nil
}

func (s *userService) newUser(email, name, password string, role domain.Role, creatorID string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidation)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	if creatorID == systemUserID {
		creatorID = userID
	}
	return &domain.User{
		UserID:       userID,
		Email:        email,
		Name:         strings.TrimSpace(name),
		Role:         role,
		PasswordHash: hash,
		AuditFields:  domain.NewAuditFields(creatorID, s.Now()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, actor domain.Actor, userID string) (*domain.User, error) {
	if actor.UserID != userID {
		if err := policy.Authorize(actor, policy.OpManageUsers, policy.Target{}); err != nil {
			return nil, err
		}
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.User, error) {
	if err := policy.Authorize(actor, policy.OpManageUsers, policy.Target{}); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// AuthenticateUser checks credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.DeletedAt != nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Rejected login attempt", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}
